package source

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

// SeedSize is the size of a deterministic source seed in bytes.
const SeedSize = 32

// seedContext is the hash domain separation prefix for seed derivation.
var seedContext = []byte("RcS-Seed")

// NewSeed generates a fresh seed from the system entropy pool.
//
// Seeding entropy is assumed to always be available; this routine
// panics if the read fails.
func NewSeed() [SeedSize]byte {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("source: failed to read seeding entropy: " + err.Error())
	}

	return seed
}

// DeriveSeed deterministically derives a seed from the domain
// separation tag and the provided material using BLAKE2b-256.
//
// Equal inputs yield equal seeds; distinct domains yield unrelated
// seeds for the same material.
func DeriveSeed(domain string, material []byte) [SeedSize]byte {
	h := blake2b.New256()
	_, _ = h.Write(seedContext)
	_ = binary.Write(h, binary.BigEndian, uint64(len(domain)))
	_, _ = h.Write([]byte(domain))
	_, _ = h.Write(material)

	var seed [SeedSize]byte
	copy(seed[:], h.Sum(nil))

	return seed
}
