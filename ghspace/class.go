// Package ghspace — Class construction, digesting, and the GH metric.
package ghspace

import (
	"encoding/binary"
	"errors"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/metriclab/gromov/coupling"
	"github.com/metriclab/gromov/linf"
	"github.com/metriclab/gromov/metric"
)

// Sentinel errors returned by the ghspace package.
var (
	// ErrNilSpace indicates a nil *metric.Space input.
	ErrNilSpace = errors.New("ghspace: space is nil")

	// ErrNilClass indicates a nil *Class operand.
	ErrNilClass = errors.New("ghspace: class is nil")

	// ErrBadHandle indicates a registry handle out of range.
	ErrBadHandle = errors.New("ghspace: handle out of range")
)

// Class is one point of Gromov–Hausdorff space: an isometry class of
// nonempty compact metric spaces, held by a canonical representative.
// Immutable once built.
type Class struct {
	rep    *metric.Space // canonical representative
	digest uint64        // isometry-invariant xxhash digest
}

// ToClass maps a finite metric space to its isometry class. The
// representative is canonicalized through the sup-metric embedding
// target, so classes built from isometric inputs are Equal regardless of
// point order or labels.
//
// Complexity: O(n²) embedding + O(n² log n) digesting.
func ToClass(s *metric.Space) (*Class, error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	// Canonical representative: push through the embedding target and
	// recover the induced space. On a genuine metric this is a lossless
	// round trip; it pins the representative to the embedding contract.
	set, err := linf.Embed(s)
	if err != nil {
		return nil, err
	}
	rep, err := set.Space()
	if err != nil {
		return nil, err
	}

	return &Class{rep: rep, digest: digestOf(rep)}, nil
}

// digestOf hashes the isometry invariants of a space: the point count
// followed by the sorted multiset of stabilized pairwise distances.
// Isometric spaces always collide; distinct digests prove non-isometry.
func digestOf(s *metric.Space) uint64 {
	n := s.N()
	dists := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dists = append(dists, metric.Round9(s.Dist(i, j)))
		}
	}
	sort.Float64s(dists)

	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])
	var d float64
	for _, d = range dists {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(d))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// Rep returns the canonical representative. The returned space is
// immutable; which representative was chosen is not part of the class's
// observable identity.
func (c *Class) Rep() *metric.Space { return c.rep }

// N returns the representative's point count (an isometry invariant).
func (c *Class) N() int { return c.rep.N() }

// Diameter returns the class diameter (an isometry invariant).
func (c *Class) Diameter() float64 { return c.rep.Diameter() }

// Digest returns the isometry-invariant hash of the class.
func (c *Class) Digest() uint64 { return c.digest }

// Dist returns the exact Gromov–Hausdorff distance between two classes.
// Total for well-formed classes; options are forwarded to the coupling
// search (budget, tolerance, parallelism).
func Dist(p, q *Class, opts ...coupling.Option) (float64, error) {
	if p == nil || q == nil {
		return 0, ErrNilClass
	}

	return coupling.Dist(p.rep, q.rep, opts...)
}

// Couple returns the realized optimal coupling between representatives
// of the two classes.
func Couple(p, q *Class, opts ...coupling.Option) (*coupling.Coupling, error) {
	if p == nil || q == nil {
		return nil, ErrNilClass
	}

	return coupling.Optimal(p.rep, q.rep, opts...)
}

// Equal reports whether the two classes are the same point of GH space,
// i.e. whether their representatives are isometric. Digests and sizes
// settle the negative cases; the positive case is certified by an exact
// isometry search.
func Equal(p, q *Class) (bool, error) {
	if p == nil || q == nil {
		return false, ErrNilClass
	}
	if p == q {
		return true, nil
	}
	if p.rep.N() != q.rep.N() || p.digest != q.digest {
		return false, nil
	}

	return isometric(p.rep, q.rep), nil
}
