// Package sampler implements unbiased bounded sampling over a raw
// 64-bit source via rejection.
package sampler

import (
	"math/bits"

	"golang.org/x/xerrors"

	"github.com/calder-labs/randcore/api"
	"github.com/calder-labs/randcore/source"
)

// Sampler draws uniformly distributed bounded values from a raw source,
// rejecting raw draws that would bias the modular reduction.
//
// A Sampler holds no mutable state of its own and adds no locking: it
// is exactly as safe for concurrent use as the source backing it.
type Sampler struct {
	src source.Source
}

// New creates a new Sampler drawing from the provided source.
func New(src source.Source) *Sampler {
	initMetrics()

	return &Sampler{
		src: src,
	}
}

// Int64 returns a uniformly distributed integer on the inclusive
// interval [lo, hi].
//
// Raw draws are taken until one falls under the largest multiple of
// the interval width representable in 64 bits, so the reduction is
// exactly uniform. Fewer than 2 draws are expected for every interval.
func (s *Sampler) Int64(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, xerrors.Errorf("sampler: invalid bounds [%d, %d]: %w", lo, hi, api.ErrInvalidRange)
	}

	// Interval width in two's complement arithmetic. The add wraps to
	// 0 exactly when the interval covers all 2^64 values, which the
	// limit arithmetic below cannot represent.
	span := uint64(hi) - uint64(lo) + 1
	switch span {
	case 0:
		return 0, xerrors.Errorf("sampler: bounds [%d, %d] cover the full draw width: %w", lo, hi, api.ErrRangeOverflow)
	case 1:
		// Single admissible value, no draw required.
		return lo, nil
	}

	// limit = floor(2^64 / span) * span. A limit of 0 means span
	// divides 2^64 and every draw is accepted.
	q, _ := bits.Div64(1, 0, span)
	limit := q * span

	for {
		draw, err := s.src.Uint64()
		if err != nil {
			return 0, err
		}
		samplerDraws.Inc()

		if limit == 0 || draw < limit {
			return int64(uint64(lo) + draw%span), nil
		}
		samplerRejections.Inc()
	}
}

// Float64 returns a uniformly distributed float on the interval
// [0.0, 1.0).
//
// The result carries 53 bits of precision: the top 53 bits of a single
// raw draw divided by 2^53, the largest power of two whose reciprocal
// steps a float64 resolves exactly. Dividing a full 64-bit draw by
// 2^64 could round up to 1.0 and escape the half-open interval.
func (s *Sampler) Float64() (float64, error) {
	draw, err := s.src.Uint64()
	if err != nil {
		return 0, err
	}
	samplerDraws.Inc()

	return float64(draw>>11) / (1 << 53), nil
}
