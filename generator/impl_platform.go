package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/calder-labs/randcore/api"
)

var _ api.Generator = (*platformGenerator)(nil)

// platformGenerator is the platform math library backed generator.
//
// The platform source is seeded sequential state, so every access is
// serialized by a mutex.
type platformGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPlatformDefault constructs a new platform default generator, with
// the platform source seeded from the wall clock.
func NewPlatformDefault() api.Generator {
	return &platformGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *platformGenerator) Kind() api.Kind {
	return api.PlatformDefault
}

// Int64 returns a uniformly distributed integer on the inclusive
// interval [lo, hi].
//
// The platform bounded draw takes a signed width, so the widest
// interval this backend serves spans 2^63-1 values.
func (g *platformGenerator) Int64(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, fmt.Errorf("generator: invalid bounds [%d, %d]: %w", lo, hi, api.ErrInvalidRange)
	}

	span := uint64(hi) - uint64(lo) + 1
	switch {
	case span == 0 || span > math.MaxInt64:
		return 0, fmt.Errorf("generator: bounds [%d, %d] exceed the platform draw width: %w", lo, hi, api.ErrRangeOverflow)
	case span == 1:
		return lo, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return lo + g.rng.Int63n(int64(span)), nil
}

func (g *platformGenerator) Float64() (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Float64(), nil
}
