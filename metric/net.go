// Package metric — geometric queries: ε-nets, covering numbers, Hausdorff
// distance between index subsets, and subspace restriction.
//
// Design:
//   - Deterministic, side-effect free functions over the immutable Space.
//   - The greedy farthest-point net starts at the basepoint so repeated
//     runs on the same space yield the same net (determinism is relied on
//     by fingerprinting).
//   - Hausdorff works on index subsets of ONE space; cross-space Hausdorff
//     distances go through gluing/coupling, which produce a common space
//     first.
package metric

import (
	"fmt"
	"sort"
)

// EpsNet returns a deterministic ε-net: a subset s of points such that
// every point of the space lies within eps of some member of s.
//
// Algorithm: greedy farthest-point traversal seeded at the basepoint —
// repeatedly add the point farthest from the current net while that
// distance exceeds eps (ties broken by smallest index).
//
// Contract: eps > 0 (ErrBadEpsilon otherwise). The result is non-empty
// and sorted ascending.
//
// Complexity: O(k·n) time for a net of size k, O(n) space.
func (s *Space) EpsNet(eps float64) ([]int, error) {
	if eps <= 0 {
		return nil, ErrBadEpsilon
	}

	// nearest[i] = distance from i to the current net.
	nearest := make([]float64, s.n)
	var i int
	for i = 0; i < s.n; i++ {
		nearest[i] = s.w[s.base*s.n+i]
	}

	net := make([]int, 0, 8)
	net = append(net, s.base)

	var far int
	var d float64
	for {
		// Locate the point farthest from the net (smallest-index tiebreak).
		far = 0
		for i = 1; i < s.n; i++ {
			if nearest[i] > nearest[far] {
				far = i
			}
		}
		if nearest[far] <= eps {
			break // every point is ε-covered
		}
		net = append(net, far)
		// Relax nearest distances against the new member.
		for i = 0; i < s.n; i++ {
			d = s.w[far*s.n+i]
			if d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	sort.Ints(net)

	return net, nil
}

// CoveringNumber returns the size of the deterministic greedy ε-net.
// This is an upper bound (within the greedy factor) on the minimal
// covering number; it is the quantity the compactness criterion consumes.
//
// Complexity: O(k·n).
func (s *Space) CoveringNumber(eps float64) (int, error) {
	net, err := s.EpsNet(eps)
	if err != nil {
		return 0, err
	}

	return len(net), nil
}

// Hausdorff returns the Hausdorff distance between two nonempty index
// subsets a and b of the space:
//
//	max( max_{i∈a} min_{j∈b} d(i,j), max_{j∈b} min_{i∈a} d(i,j) )
//
// Contract: both subsets non-empty with indices in [0..n-1]
// (ErrBadSubset otherwise). Duplicates are harmless.
//
// Complexity: O(|a|·|b|) time, O(1) space.
func (s *Space) Hausdorff(a, b []int) (float64, error) {
	if err := s.checkSubset(a); err != nil {
		return 0, err
	}
	if err := s.checkSubset(b); err != nil {
		return 0, err
	}

	var (
		h    float64 // running Hausdorff value
		best float64 // min over the opposite subset
		d    float64
		i, j int
	)

	// Directed a → b.
	for _, i = range a {
		best = s.w[i*s.n+b[0]]
		for _, j = range b[1:] {
			d = s.w[i*s.n+j]
			if d < best {
				best = d
			}
		}
		if best > h {
			h = best
		}
	}

	// Directed b → a.
	for _, j = range b {
		best = s.w[a[0]*s.n+j]
		for _, i = range a[1:] {
			d = s.w[i*s.n+j]
			if d < best {
				best = d
			}
		}
		if best > h {
			h = best
		}
	}

	return Round9(h), nil
}

// checkSubset validates a Hausdorff operand: non-empty, all indices in
// range. Duplicates are allowed (they do not change the distance).
func (s *Space) checkSubset(idx []int) error {
	if len(idx) == 0 {
		return ErrBadSubset
	}
	var i int
	for _, i = range idx {
		if i < 0 || i >= s.n {
			return fmt.Errorf("%w: index %d", ErrBadSubset, i)
		}
	}

	return nil
}

// Restrict returns the subspace induced on the given nonempty index
// subset, preserving IDs when present. The subset order defines the new
// point order; duplicates are rejected.
//
// The submatrix of a metric is again a metric, but Restrict still routes
// through New so the invariant is asserted rather than assumed.
//
// Complexity: O(k³) time for |subset| = k (re-validation dominates).
func (s *Space) Restrict(subset []int) (*Space, error) {
	if len(subset) == 0 {
		return nil, ErrBadSubset
	}
	seen := make(map[int]struct{}, len(subset))
	var idx int
	for _, idx = range subset {
		if idx < 0 || idx >= s.n {
			return nil, fmt.Errorf("%w: index %d", ErrBadSubset, idx)
		}
		if _, ok := seen[idx]; ok {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrBadSubset, idx)
		}
		seen[idx] = struct{}{}
	}

	k := len(subset)
	sub := make([][]float64, k)
	var i, j int
	for i = 0; i < k; i++ {
		sub[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			sub[i][j] = s.w[subset[i]*s.n+subset[j]]
		}
	}

	opts := make([]Option, 0, 2)
	if s.ids != nil {
		ids := make([]string, k)
		for i = 0; i < k; i++ {
			ids[i] = s.ids[subset[i]]
		}
		opts = append(opts, WithIDs(ids))
	}

	return New(sub, opts...)
}
