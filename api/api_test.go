package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	require := require.New(t)

	// The ordinals are part of the public contract.
	require.EqualValues(0, PlatformDefault)
	require.EqualValues(1, RejectionSampling)
	require.EqualValues(2, CryptographicallySecure)

	// Test valid kinds.
	for _, k := range []Kind{
		PlatformDefault,
		RejectionSampling,
		CryptographicallySecure,
	} {
		enc, err := k.MarshalText()
		require.NoError(err, "MarshalText")

		var dec Kind
		err = dec.UnmarshalText(enc)
		require.NoError(err, "UnmarshalText")
		require.Equal(k, dec, "kind should round-trip")
		require.EqualValues([]byte(k.String()), enc, "marshalled kind should match")
	}

	// Test malformed kind.
	k := Kind(42)
	_, err := k.MarshalText()
	require.Error(err, "MarshalText on malformed kind")
	require.ErrorIs(err, ErrUnknownKind, "MarshalText error should match")
	require.Contains(k.String(), "unknown kind", "String() on malformed kind")
}

func TestKindFromString(t *testing.T) {
	require := require.New(t)

	for s, expected := range map[string]Kind{
		"PlatformDefault":         PlatformDefault,
		"RejectionSampling":       RejectionSampling,
		"CryptographicallySecure": CryptographicallySecure,
	} {
		var k Kind
		err := k.FromString(s)
		require.NoError(err, "FromString(%s)", s)
		require.Equal(expected, k, "FromString(%s)", s)
	}

	// Matching is exact, no case folding.
	for _, s := range []string{
		"platformdefault",
		"PLATFORMDEFAULT",
		"rejectionSampling",
		"Cryptographically Secure",
		"Fortuna",
		"",
	} {
		var k Kind
		err := k.FromString(s)
		require.ErrorIs(err, ErrUnknownKind, "FromString('%s')", s)
	}
}
