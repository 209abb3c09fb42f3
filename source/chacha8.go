package source

import (
	"encoding/binary"

	cc "github.com/nixberg/chacha-rng-go"
)

var _ Source = (*chacha8Source)(nil)

// chacha8Source is a deterministic source drawing from a seeded ChaCha8
// stream.
type chacha8Source struct {
	rng *cc.ChaCha
}

// NewChaCha8 creates a deterministic source drawing from a ChaCha8
// stream seeded with the provided seed. Equal seeds yield equal draw
// sequences.
//
// The returned source is not safe for concurrent use.
func NewChaCha8(seed [SeedSize]byte) Source {
	var words [8]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(seed[i*4:])
	}

	return &chacha8Source{
		rng: cc.Seeded8(words, 0),
	}
}

func (s *chacha8Source) Uint64() (uint64, error) {
	return s.rng.Uint64(), nil
}
