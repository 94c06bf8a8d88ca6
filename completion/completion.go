// Package completion — the arena builder and limit extraction.
package completion

import (
	"fmt"
	"math"

	"github.com/metriclab/gromov/coupling"
	"github.com/metriclab/gromov/ghspace"
	"github.com/metriclab/gromov/glue"
	"github.com/metriclab/gromov/metric"
)

// Builder incrementally glues a contractive sequence onto an append-only
// arena. Zero value is not usable; construct with NewBuilder. Not safe
// for concurrent use.
type Builder struct {
	seq     Sequence
	opts    []coupling.Option // forwarded to every coupling search
	state   State
	classes []*ghspace.Class // fetched terms, classes[n] = u_n
	arena   *metric.Space    // current glued space, nil until seeded
	images  [][]int          // images[n] = carrier indices of the u_n copy
}

// NewBuilder returns a builder over the sequence. Coupling options are
// forwarded to every optimal-coupling search the construction runs.
func NewBuilder(seq Sequence, opts ...coupling.Option) (*Builder, error) {
	if seq == nil {
		return nil, ErrNilSequence
	}

	return &Builder{seq: seq, opts: opts, state: StateSeed}, nil
}

// State returns the builder's current construction state.
func (b *Builder) State() State { return b.state }

// Depth returns the number of glued stages, i.e. the largest n whose
// copy the arena holds. Zero both before seeding and right after it.
func (b *Builder) Depth() int {
	if len(b.images) == 0 {
		return 0
	}

	return len(b.images) - 1
}

// Arena returns the current glued space, or nil before seeding. The
// returned space is immutable; extensions replace it rather than mutate.
func (b *Builder) Arena() *metric.Space { return b.arena }

// fetch returns the cached n-th term, pulling it from the sequence on
// first use.
func (b *Builder) fetch(n int) (*ghspace.Class, error) {
	for len(b.classes) <= n {
		c, err := b.seq(len(b.classes))
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilClass, len(b.classes))
		}
		b.classes = append(b.classes, c)
	}

	return b.classes[n], nil
}

// seed installs rep(u_0) as the arena.
func (b *Builder) seed() error {
	u0, err := b.fetch(0)
	if err != nil {
		return err
	}

	b.arena = u0.Rep()
	img := make([]int, u0.N())
	for i := range img {
		img[i] = i
	}
	b.images = [][]int{img}
	b.state = StateGlued

	return nil
}

// Extend advances the arena by one stage: it couples rep(u_n) with
// rep(u_{n+1}) for the current depth n, verifies the contraction bound
// Dist(u_n, u_{n+1}) < 2^{-n}, and glues the coupling's ambient space
// onto the arena along the u_n copy with an exact seam. Existing carrier
// indices are preserved, so previously returned images stay valid.
func (b *Builder) Extend() error {
	if b.state == StateSeed {
		if err := b.seed(); err != nil {
			return err
		}
	}

	n := b.Depth()
	un := b.classes[n]
	un1, err := b.fetch(n + 1)
	if err != nil {
		return err
	}

	c, err := coupling.Optimal(un.Rep(), un1.Rep(), b.opts...)
	if err != nil {
		return err
	}
	if bound := math.Pow(2, -float64(n)); c.Dist >= bound {
		return fmt.Errorf("%w: Dist(u_%d, u_%d) = %g >= %g", ErrNotContractive, n, n+1, c.Dist, bound)
	}

	// The u_n copy lives in both the arena and the coupling's ambient
	// space; both are exact isometric images, so the seam is isometric.
	k := un.N()
	seam := make([]glue.Seam, k)
	for i := 0; i < k; i++ {
		seam[i] = glue.Seam{X: b.images[n][i], Y: c.IntoX[i]}
	}

	g, err := glue.Exact(b.arena, c.Z, seam)
	if err != nil {
		return err
	}

	img := make([]int, un1.N())
	for j := range img {
		img[j] = g.IntoY[c.IntoY[j]]
	}

	b.arena = g.Z
	b.images = append(b.images, img)
	b.state = StateGlued

	return nil
}

// Limit extends the arena until the certified radius 2^{1-N} drops to
// the requested precision, then extracts the limit witness: the deepest
// copy restricted out of the arena and mapped to its isometry class.
//
// Calling Limit again at finer precision extends the existing arena; at
// coarser precision it reuses the current depth and reports the tighter
// certificate actually available.
func (b *Builder) Limit(precision float64) (*Result, error) {
	if precision <= 0 || math.IsNaN(precision) || math.IsInf(precision, 0) {
		return nil, ErrBadPrecision
	}

	want := depthFor(precision)
	if b.state == StateSeed {
		if err := b.seed(); err != nil {
			return nil, err
		}
	}
	for b.Depth() < want {
		if err := b.Extend(); err != nil {
			return nil, err
		}
	}
	b.state = StateInductiveLimit

	depth := b.Depth()
	sub, err := b.arena.Restrict(b.images[depth])
	if err != nil {
		return nil, err
	}
	limit, err := ghspace.ToClass(sub)
	if err != nil {
		return nil, err
	}

	certs := make([]float64, depth+1)
	for n := 0; n <= depth; n++ {
		certs[n], err = b.arena.Hausdorff(b.images[n], b.images[depth])
		if err != nil {
			return nil, err
		}
	}
	b.state = StateUniformCompletion

	return &Result{
		Limit:        limit,
		Precision:    math.Pow(2, float64(1-depth)),
		Depth:        depth,
		Certificates: certs,
	}, nil
}

// Run is the one-shot form: build a fresh arena over seq and extract the
// limit at the requested precision.
func Run(seq Sequence, precision float64, opts ...coupling.Option) (*Result, error) {
	b, err := NewBuilder(seq, opts...)
	if err != nil {
		return nil, err
	}

	return b.Limit(precision)
}

// depthFor returns the smallest N with 2^{1-N} ≤ precision.
func depthFor(precision float64) int {
	n := int(math.Ceil(1 - math.Log2(precision)))
	if n < 0 {
		n = 0
	}

	return n
}
