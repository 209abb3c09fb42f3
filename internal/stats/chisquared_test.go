package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCriticalValue(t *testing.T) {
	require := require.New(t)

	// Reference points from the NIST/SEMATECH e-Handbook chi-squared
	// table (section 1.3.6.7.4).
	for _, tc := range []struct {
		dof        int
		confidence float64
		expected   float64
	}{
		{1, 0.90, 2.706},
		{2, 0.95, 5.991},
		{5, 0.99, 15.086},
		{9, 0.99, 21.666},
		{10, 0.90, 15.987},
		{100, 0.999, 149.449},
	} {
		crit := CriticalValue(tc.dof, tc.confidence)
		require.InDelta(tc.expected, crit, 0.001,
			"critical value at dof %d, confidence %v", tc.dof, tc.confidence)
	}

	// The quantile must keep growing with the degrees of freedom well
	// past the end of the printed tables.
	require.Greater(CriticalValue(254, 0.9999), CriticalValue(100, 0.9999))
}

func TestPearsonChiSquared(t *testing.T) {
	require := require.New(t)

	// Perfectly uniform counts carry no deviation at all.
	require.Zero(PearsonChiSquared([]uint64{100, 100, 100, 100}))

	// Textbook example: a fair die thrown 60 times.
	observed := []uint64{5, 8, 9, 8, 10, 20}
	require.InDelta(13.4, PearsonChiSquared(observed), 1e-9)

	// A grossly skewed sample must land far above the rejection
	// threshold for any reasonable confidence.
	skewed := []uint64{1000, 0, 0, 0}
	require.Greater(PearsonChiSquared(skewed), CriticalValue(3, 0.9999))
}
