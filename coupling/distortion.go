// Package coupling — correspondence validation and distortion.
package coupling

import (
	"fmt"

	"github.com/metriclab/gromov/metric"
)

// Validate checks the correspondence against the two factors: F and G
// must be total with values in the opposite factor.
func (c Correspondence) Validate(x, y *metric.Space) error {
	if x == nil || y == nil {
		return ErrNilSpace
	}
	if len(c.F) != x.N() || len(c.G) != y.N() {
		return fmt.Errorf("%w: |F|=%d want %d, |G|=%d want %d", ErrBadCorrespondence, len(c.F), x.N(), len(c.G), y.N())
	}
	var v int
	for _, v = range c.F {
		if v < 0 || v >= y.N() {
			return fmt.Errorf("%w: F value %d", ErrBadCorrespondence, v)
		}
	}
	for _, v = range c.G {
		if v < 0 || v >= x.N() {
			return fmt.Errorf("%w: G value %d", ErrBadCorrespondence, v)
		}
	}

	return nil
}

// pairs materializes the relation graph(F) ∪ graph(G)ᵀ as parallel index
// slices (p in X, q in Y), in deterministic order: F-pairs then G-pairs.
func (c Correspondence) pairs() (ps, qs []int) {
	n := len(c.F) + len(c.G)
	ps = make([]int, 0, n)
	qs = make([]int, 0, n)
	var i, j int
	for i = 0; i < len(c.F); i++ {
		ps = append(ps, i)
		qs = append(qs, c.F[i])
	}
	for j = 0; j < len(c.G); j++ {
		ps = append(ps, c.G[j])
		qs = append(qs, j)
	}

	return ps, qs
}

// Distortion returns the distortion of the correspondence's relation:
//
//	max over pairs (p,q),(p',q') of |d_X(p,p') − d_Y(q,q')|
//
// The Gromov–Hausdorff distance is half the minimal distortion over all
// correspondences.
//
// Complexity: O((|X|+|Y|)²).
func (c Correspondence) Distortion(x, y *metric.Space) (float64, error) {
	if err := c.Validate(x, y); err != nil {
		return 0, err
	}

	ps, qs := c.pairs()
	var (
		dis, diff float64
		i, j      int
	)
	for i = 0; i < len(ps); i++ {
		for j = i + 1; j < len(ps); j++ {
			diff = x.Dist(ps[i], ps[j]) - y.Dist(qs[i], qs[j])
			if diff < 0 {
				diff = -diff
			}
			if diff > dis {
				dis = diff
			}
		}
	}

	return metric.Round9(dis), nil
}
