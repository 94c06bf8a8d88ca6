// Package linf — CompactSet value type and sup-metric kernels.
package linf

import (
	"errors"
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/metriclab/gromov/metric"
)

// Sentinel errors returned by the linf package.
var (
	// ErrNilSpace indicates a nil *metric.Space passed to Embed.
	ErrNilSpace = errors.New("linf: space is nil")

	// ErrEmptySet indicates an empty vector set; compact representatives
	// are nonempty by invariant.
	ErrEmptySet = errors.New("linf: compact set must be nonempty")

	// ErrDimensionMismatch indicates ragged vectors inside one set, or two
	// sets living in targets of different dimension.
	ErrDimensionMismatch = errors.New("linf: dimension mismatch")

	// ErrNaNInf indicates a non-finite coordinate.
	ErrNaNInf = errors.New("linf: NaN or Inf coordinate encountered")

	// ErrNotIsometric indicates that an embedding failed distance
	// verification against its source space.
	ErrNotIsometric = errors.New("linf: embedding is not distance-preserving")
)

// CompactSet is a nonempty finite set of points of ℝᵈ under the sup
// metric — the canonical compact representative of an isometry class in
// the embedding target. Immutable once built.
type CompactSet struct {
	dim int         // target dimension d
	pts [][]float64 // points, each of length dim; len ≥ 1
}

// NewCompactSet validates and wraps a set of vectors.
//
// Contract: pts non-empty; all vectors share one positive dimension; all
// coordinates finite. Vectors are copied; the caller's slices stay free.
//
// Complexity: O(m·d) for m points in dimension d.
func NewCompactSet(pts [][]float64) (*CompactSet, error) {
	if len(pts) == 0 {
		return nil, ErrEmptySet
	}
	dim := len(pts[0])
	if dim == 0 {
		return nil, ErrDimensionMismatch
	}

	cp := make([][]float64, len(pts))
	var (
		i, j int
		p    []float64
	)
	for i, p = range pts {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: vector %d has length %d, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
		for j = 0; j < dim; j++ {
			if math.IsNaN(p[j]) || math.IsInf(p[j], 0) {
				return nil, fmt.Errorf("%w: vector %d coordinate %d", ErrNaNInf, i, j)
			}
		}
		cp[i] = make([]float64, dim)
		copy(cp[i], p)
	}

	return &CompactSet{dim: dim, pts: cp}, nil
}

// Len returns the number of points in the set.
func (c *CompactSet) Len() int { return len(c.pts) }

// Dim returns the dimension of the embedding target.
func (c *CompactSet) Dim() int { return c.dim }

// Point returns a copy of point i. Out-of-range indices panic
// (programmer error, same policy as metric.Space.Dist).
func (c *CompactSet) Point(i int) []float64 {
	out := make([]float64, c.dim)
	copy(out, c.pts[i])

	return out
}

// SupDist returns the Chebyshev (ℓ∞) distance between two vectors of the
// same dimension, stabilized to 1e-9.
//
// Complexity: O(d), vectorized.
func SupDist(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	diff := vek.Sub(a, b)
	vek.Abs_Inplace(diff)

	return metric.Round9(vek.Max(diff)), nil
}

// Hausdorff returns the Hausdorff distance between two compact sets in a
// common target dimension.
//
// Complexity: O(m₁·m₂·d).
func (c *CompactSet) Hausdorff(other *CompactSet) (float64, error) {
	if other == nil || other.Len() == 0 || c.Len() == 0 {
		return 0, ErrEmptySet
	}
	if c.dim != other.dim {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, c.dim, other.dim)
	}

	diff := make([]float64, c.dim) // shared scratch, no per-pair allocation

	// supInto computes the Chebyshev distance into the scratch buffer.
	supInto := func(a, b []float64) float64 {
		vek.Sub_Into(diff, a, b)
		vek.Abs_Inplace(diff)

		return vek.Max(diff)
	}

	var (
		h    float64
		best float64
		d    float64
		i, j int
	)

	// Directed c → other.
	for i = 0; i < len(c.pts); i++ {
		best = supInto(c.pts[i], other.pts[0])
		for j = 1; j < len(other.pts); j++ {
			d = supInto(c.pts[i], other.pts[j])
			if d < best {
				best = d
			}
		}
		if best > h {
			h = best
		}
	}

	// Directed other → c.
	for j = 0; j < len(other.pts); j++ {
		best = supInto(other.pts[j], c.pts[0])
		for i = 1; i < len(c.pts); i++ {
			d = supInto(other.pts[j], c.pts[i])
			if d < best {
				best = d
			}
		}
		if best > h {
			h = best
		}
	}

	return metric.Round9(h), nil
}

// Space recovers the metric space induced on the set's points by the sup
// metric. Points at sup-distance ≤ the structural tolerance are collapsed
// to one representative, so the result is a genuine metric space.
//
// Complexity: O(m²·d).
func (c *CompactSet) Space() (*metric.Space, error) {
	// Collapse near-duplicates (first occurrence wins, deterministic).
	keep := make([]int, 0, len(c.pts))
	var (
		i, k int
		d    float64
		err  error
		dup  bool
	)
	for i = 0; i < len(c.pts); i++ {
		dup = false
		for _, k = range keep {
			d, err = SupDist(c.pts[i], c.pts[k])
			if err != nil {
				return nil, err
			}
			if d <= metric.StructTol {
				dup = true

				break
			}
		}
		if !dup {
			keep = append(keep, i)
		}
	}

	m := len(keep)
	dist := make([][]float64, m)
	var j int
	for i = 0; i < m; i++ {
		dist[i] = make([]float64, m)
		for j = 0; j < m; j++ {
			if i == j {
				continue
			}
			d, err = SupDist(c.pts[keep[i]], c.pts[keep[j]])
			if err != nil {
				return nil, err
			}
			dist[i][j] = d
		}
	}

	return metric.New(dist)
}
