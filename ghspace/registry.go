// Package ghspace — arena registry with union-find canonicalization.
//
// Registry is for workloads that compare many spaces repeatedly: classes
// live in an append-only arena indexed by stable handles, duplicates are
// detected at Add time (digest gate + isometry search), and externally
// discovered identifications can be recorded through Union. Not safe for
// concurrent use; synchronize externally if shared.
package ghspace

import (
	"github.com/metriclab/gromov/metric"
)

// Registry is an append-only arena of isometry classes.
type Registry struct {
	classes  []*Class         // arena, indexed by handle
	parent   []int            // union-find forest over handles
	byDigest map[uint64][]int // digest → handles carrying it
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byDigest: make(map[uint64][]int),
	}
}

// Add registers the isometry class of s and returns its canonical
// handle. A space isometric to an already registered one maps to the
// existing handle; otherwise a fresh handle is allocated.
//
// Complexity: amortized one digest + isometry searches against same-digest
// classes only.
func (r *Registry) Add(s *metric.Space) (int, error) {
	if s == nil {
		return 0, ErrNilSpace
	}

	c, err := ToClass(s)
	if err != nil {
		return 0, err
	}

	var h int
	for _, h = range r.byDigest[c.digest] {
		same, errEq := Equal(c, r.classes[h])
		if errEq != nil {
			return 0, errEq
		}
		if same {
			return r.Find(h), nil
		}
	}

	h = len(r.classes)
	r.classes = append(r.classes, c)
	r.parent = append(r.parent, h)
	r.byDigest[c.digest] = append(r.byDigest[c.digest], h)

	return h, nil
}

// Class returns the class stored at the canonical root of handle h.
func (r *Registry) Class(h int) (*Class, error) {
	if h < 0 || h >= len(r.classes) {
		return nil, ErrBadHandle
	}

	return r.classes[r.Find(h)], nil
}

// Find returns the canonical root of handle h (path-halving union-find).
// Out-of-range handles panic (programmer error).
func (r *Registry) Find(h int) int {
	if h < 0 || h >= len(r.parent) {
		panic(ErrBadHandle.Error())
	}
	for r.parent[h] != h {
		r.parent[h] = r.parent[r.parent[h]]
		h = r.parent[h]
	}

	return h
}

// Union records that two handles denote the same point of GH space —
// typically after a coupling run returned distance zero. The smaller
// root wins, keeping canonical handles stable.
func (r *Registry) Union(a, b int) {
	ra, rb := r.Find(a), r.Find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	r.parent[rb] = ra
}

// Len returns the number of registered classes before identification.
func (r *Registry) Len() int { return len(r.classes) }

// Distinct returns the number of canonical roots — the number of
// distinct points of GH space currently registered.
func (r *Registry) Distinct() int {
	var (
		count int
		h     int
	)
	for h = 0; h < len(r.parent); h++ {
		if r.Find(h) == h {
			count++
		}
	}

	return count
}
