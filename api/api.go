// Package api defines the selectable generator kinds and the uniform
// generator interface implemented by every backend.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is the error returned when a bounded request has
	// its lower bound above its upper bound.
	ErrInvalidRange = errors.New("generator: invalid range")

	// ErrRangeOverflow is the error returned when a requested range is
	// too wide for the backend's raw draw width.
	ErrRangeOverflow = errors.New("generator: range overflow")

	// ErrUnknownKind is the error returned when a generator kind is
	// outside the closed set of supported kinds.
	ErrUnknownKind = errors.New("generator: unknown kind")
)

// Kind is the kind of a generator backend.
type Kind uint8

const (
	// PlatformDefault is the platform math library generator.
	PlatformDefault Kind = 0

	// RejectionSampling is the seeded generator drawing through the
	// rejection sampler.
	RejectionSampling Kind = 1

	// CryptographicallySecure is the system entropy backed generator.
	CryptographicallySecure Kind = 2
)

const (
	kindPlatformDefault         = "PlatformDefault"
	kindRejectionSampling       = "RejectionSampling"
	kindCryptographicallySecure = "CryptographicallySecure"
)

// String returns a string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case PlatformDefault:
		return kindPlatformDefault
	case RejectionSampling:
		return kindRejectionSampling
	case CryptographicallySecure:
		return kindCryptographicallySecure
	default:
		return fmt.Sprintf("[unknown kind: %d]", k)
	}
}

// FromString deserializes a string into a Kind.
//
// The stable names are part of the public contract, so matching is
// exact and no case folding is performed.
func (k *Kind) FromString(s string) error {
	switch s {
	case kindPlatformDefault:
		*k = PlatformDefault
	case kindRejectionSampling:
		*k = RejectionSampling
	case kindCryptographicallySecure:
		*k = CryptographicallySecure
	default:
		return fmt.Errorf("malformed kind '%s': %w", s, ErrUnknownKind)
	}

	return nil
}

// MarshalText serializes the Kind into text form.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case PlatformDefault, RejectionSampling, CryptographicallySecure:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("malformed kind %d: %w", k, ErrUnknownKind)
	}
}

// UnmarshalText deserializes the Kind from text form.
func (k *Kind) UnmarshalText(text []byte) error {
	return k.FromString(string(text))
}

// Generator is a uniform random value generator.
//
// Implementations are safe for concurrent use.
type Generator interface {
	// Kind returns the kind of the generator.
	Kind() Kind

	// Int64 returns a uniformly distributed integer on the inclusive
	// interval [lo, hi].
	Int64(lo, hi int64) (int64, error)

	// Float64 returns a uniformly distributed float on the interval
	// [0.0, 1.0).
	Float64() (float64, error)
}
