// Package linf — Kuratowski embedding of a finite metric space.
package linf

import (
	"fmt"

	"github.com/metriclab/gromov/metric"
)

// Embed maps the space isometrically into ℝⁿ under the sup metric via the
// Kuratowski embedding: point i becomes row i of the distance matrix,
// x_i ↦ (d(i,0), …, d(i,n-1)).
//
// On a finite carrier the embedding is exact: for any coordinate k,
// |d(i,k) − d(j,k)| ≤ d(i,j) by the triangle inequality, with equality at
// k = j. The constructor still verifies the isometry row by row and
// refuses to return a representative that fails it.
//
// Complexity: O(n²) build + O(n²) verification.
func Embed(s *metric.Space) (*CompactSet, error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	n := s.N()
	pts := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		pts[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			pts[i][j] = s.Dist(i, j)
		}
	}

	c, err := NewCompactSet(pts)
	if err != nil {
		return nil, err
	}

	// Verify the isometry contract before handing the set out.
	var got, want, diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			got, err = SupDist(c.pts[i], c.pts[j])
			if err != nil {
				return nil, err
			}
			want = s.Dist(i, j)
			diff = got - want
			if diff < 0 {
				diff = -diff
			}
			if diff > metric.StructTol+1e-9 {
				return nil, fmt.Errorf("%w: points (%d,%d): sup=%g, d=%g", ErrNotIsometric, i, j, got, want)
			}
		}
	}

	return c, nil
}

// EmbedSubset embeds only the given index subset of the space, still using
// the full space's coordinates, so two subsets of one space land in the
// same target and their Hausdorff distance is meaningful.
//
// Complexity: O(|subset|·n).
func EmbedSubset(s *metric.Space, subset []int) (*CompactSet, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if len(subset) == 0 {
		return nil, ErrEmptySet
	}

	n := s.N()
	pts := make([][]float64, len(subset))
	var i, j, p int
	for i, p = range subset {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: index %d", ErrDimensionMismatch, p)
		}
		pts[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			pts[i][j] = s.Dist(p, j)
		}
	}

	return NewCompactSet(pts)
}
