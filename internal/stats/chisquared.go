// Package stats provides the statistical helpers backing the
// randomness test suites.
package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// PearsonChiSquared returns the chi-squared statistic of the observed
// bucket counts against the uniform expectation.
func PearsonChiSquared(observed []uint64) float64 {
	var total uint64
	for _, n := range observed {
		total += n
	}
	expected := float64(total) / float64(len(observed))

	var stat float64
	for _, n := range observed {
		diff := float64(n) - expected
		stat += diff * diff / expected
	}

	return stat
}

// CriticalValue returns the chi-squared critical value for the given
// degrees of freedom at the given confidence level. A statistic above
// the critical value rejects the uniformity hypothesis at the
// corresponding significance.
func CriticalValue(dof int, confidence float64) float64 {
	dist := distuv.ChiSquared{K: float64(dof)}

	return dist.Quantile(confidence)
}
