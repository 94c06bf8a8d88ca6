// Package ghspace — exact isometry decision between finite spaces.
//
// The search assigns a bijection π point by point, pruning any partial
// assignment that already distorts a distance beyond the structural
// tolerance. A sorted-row prefilter rejects candidate images whose
// distance profile cannot match, which keeps the factorial worst case
// confined to highly symmetric inputs.
package ghspace

import (
	"sort"

	"github.com/metriclab/gromov/metric"
)

// isometric reports whether x and y admit a distance-preserving
// bijection. Both spaces must have equal size (checked by the caller).
func isometric(x, y *metric.Space) bool {
	n := x.N()
	if n != y.N() {
		return false
	}

	// Row profiles: sorted distance rows must match pointwise for π(i)=j
	// to be possible at all.
	profX := rowProfiles(x)
	profY := rowProfiles(y)

	// allowed[i] = candidate images of i by profile.
	allowed := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if profilesMatch(profX[i], profY[j]) {
				allowed[i] = append(allowed[i], j)
			}
		}
		if len(allowed[i]) == 0 {
			return false
		}
	}

	pi := make([]int, n)
	used := make([]bool, n)

	var assign func(depth int) bool
	assign = func(depth int) bool {
		if depth == n {
			return true
		}
		var (
			cand int
			k    int
			diff float64
		)
		for _, cand = range allowed[depth] {
			if used[cand] {
				continue
			}
			ok := true
			for k = 0; k < depth; k++ {
				diff = x.Dist(depth, k) - y.Dist(cand, pi[k])
				if diff < 0 {
					diff = -diff
				}
				if diff > metric.StructTol {
					ok = false

					break
				}
			}
			if !ok {
				continue
			}
			pi[depth] = cand
			used[cand] = true
			if assign(depth + 1) {
				return true
			}
			used[cand] = false
		}

		return false
	}

	return assign(0)
}

// rowProfiles returns, for each point, its sorted stabilized distance row.
func rowProfiles(s *metric.Space) [][]float64 {
	n := s.N()
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		row := make([]float64, 0, n-1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			row = append(row, metric.Round9(s.Dist(i, j)))
		}
		sort.Float64s(row)
		out[i] = row
	}

	return out
}

// profilesMatch compares two sorted rows within the structural tolerance.
func profilesMatch(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	var (
		i    int
		diff float64
	)
	for i = range a {
		diff = a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > metric.StructTol {
			return false
		}
	}

	return true
}
