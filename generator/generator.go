// Package generator implements the selectable uniform generator
// backends and the registry that constructs them on demand.
package generator

import (
	"fmt"
	"sync"

	"github.com/calder-labs/randcore/api"
	"github.com/calder-labs/randcore/logging"
	"github.com/calder-labs/randcore/source"
)

// rejectionSeedDomain is the seed derivation domain for registry
// constructed rejection sampling backends.
const rejectionSeedDomain = "generator/rejection"

// Registry constructs and caches one live generator per kind.
//
// A generator is constructed on first request and shared by every
// subsequent caller until Reset discards it. All registry operations
// are safe for concurrent use.
type Registry struct {
	logger *logging.Logger

	mu         sync.Mutex
	generators map[api.Kind]api.Generator

	rejectionSeed *[source.SeedSize]byte
}

// Option is a registry construction option.
type Option func(*Registry)

// WithRejectionSeed pins the seed material of the rejection sampling
// backend, making its draw sequence reproducible across
// constructions. The default is a fresh seed from system entropy on
// every construction.
func WithRejectionSeed(material []byte) Option {
	return func(r *Registry) {
		seed := source.DeriveSeed(rejectionSeedDomain, material)
		r.rejectionSeed = &seed
	}
}

// NewRegistry constructs a new generator registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:     logging.GetLogger("generator/registry"),
		generators: make(map[api.Kind]api.Generator),
	}
	for _, opt := range opts {
		opt(r)
	}

	initMetrics()

	return r
}

// Get returns the generator of the requested kind, constructing and
// caching it first if this is the first request for the kind.
//
// The construction happens under the registry lock, so concurrent
// first requests construct the backend exactly once and every caller
// observes the same instance.
func (r *Registry) Get(kind api.Kind) (api.Generator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.generators[kind]; ok {
		return g, nil
	}

	g, err := r.construct(kind)
	if err != nil {
		return nil, err
	}
	r.generators[kind] = g

	return g, nil
}

// Reset discards the cached generator of the requested kind, so that
// the next Get constructs a fresh instance. Resetting a kind that was
// never constructed, or an unknown kind, is a no-op.
func (r *Registry) Reset(kind api.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.generators, kind)
}

func (r *Registry) construct(kind api.Kind) (api.Generator, error) {
	var g api.Generator
	switch kind {
	case api.PlatformDefault:
		g = NewPlatformDefault()
	case api.RejectionSampling:
		if r.rejectionSeed != nil {
			g = NewRejectionSamplingWithSeed(*r.rejectionSeed)
		} else {
			g = NewRejectionSampling()
		}
	case api.CryptographicallySecure:
		g = NewCryptographicallySecure()
	default:
		return nil, fmt.Errorf("generator: unsupported kind: %d: %w", kind, api.ErrUnknownKind)
	}

	generatorConstructions.WithLabelValues(kind.String()).Inc()
	r.logger.Debug("constructed generator",
		"kind", kind,
	)

	return g, nil
}
