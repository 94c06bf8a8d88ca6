// Package fingerprint — compactness criterion and the countable schedule.
package fingerprint

import (
	"math"

	"github.com/metriclab/gromov/metric"
)

// TotallyBounded returns the counting witness behind the Gromov
// compactness criterion: under a uniform diameter bound diamBound and a
// uniform covering bound maxNet at resolution eps, at most
//
//	maxNet · (M+1)^(maxNet²),  M = ⌈diamBound/eps⌉
//
// distinct fingerprints exist, so the family of all such spaces is
// covered by finitely many GH balls of radius 5·eps/2. A finite return
// value is the total-boundedness witness at this resolution; the value
// overflows to +Inf for large parameters, which still upper-bounds the
// count but carries no information.
func TotallyBounded(eps, diamBound float64, maxNet int) (float64, error) {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, ErrBadResolution
	}
	if diamBound <= 0 || math.IsNaN(diamBound) || math.IsInf(diamBound, 0) {
		return 0, ErrBadBound
	}
	if maxNet <= 0 {
		return 0, ErrBadDepth
	}

	m := math.Ceil(metric.Round9(diamBound / eps))
	k := float64(maxNet)

	return k * math.Pow(m+1, k*k), nil
}

// Schedule returns the countable resolution schedule ε_k = 2^{-k} for
// k = 0..depth-1. Running fingerprints along this schedule separates
// points of GH space arbitrarily finely, which is the second-countability
// witness: countably many resolutions, finitely many fingerprints each
// (under uniform bounds), and every space within Bound(ε_k) of the space
// reconstructed from its fingerprint.
func Schedule(depth int) ([]float64, error) {
	if depth <= 0 {
		return nil, ErrBadDepth
	}

	out := make([]float64, depth)
	var k int
	for k = 0; k < depth; k++ {
		out[k] = math.Pow(2, -float64(k))
	}

	return out, nil
}
