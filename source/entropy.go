package source

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/xerrors"
)

var _ Source = entropySource{}

// entropySource draws from the system entropy pool.
type entropySource struct{}

// NewEntropy creates a source drawing from the system entropy pool.
//
// The returned source is safe for concurrent use. Draws fail iff the
// entropy read fails; the failure is propagated to the caller and
// never substituted with a weaker source.
func NewEntropy() Source {
	return entropySource{}
}

func (entropySource) Uint64() (uint64, error) {
	var v uint64
	if err := binary.Read(rand.Reader, binary.BigEndian, &v); err != nil {
		return 0, xerrors.Errorf("source: failed to read system entropy: %w", err)
	}

	return v, nil
}
