// Package fingerprint — construction, keys and the soundness bound.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/metriclab/gromov/ghspace"
	"github.com/metriclab/gromov/metric"
)

// Fingerprint is the quantized ε-net distance matrix of a space plus the
// metadata needed to interpret it. Immutable once built; fields are
// exported for the wire codec and must not be mutated by callers.
type Fingerprint struct {
	Eps   float64 `msgpack:"eps"`   // resolution ε
	N     int     `msgpack:"n"`     // net cardinality
	Cap   int     `msgpack:"cap"`   // quantization cap M
	Diam  float64 `msgpack:"diam"`  // diameter bound of the source space
	Cells []int32 `msgpack:"cells"` // row-major N×N, cell = min(⌊d/ε⌋, M)
}

// New builds the fingerprint of s at resolution eps.
//
// The net is the deterministic greedy farthest-point net seeded at the
// basepoint, so repeated calls on the same space yield identical
// fingerprints. Nets exceeding the configured cardinality cap fail with
// ErrNetTooLarge; an explicit quantization cap whose range Cap·eps does
// not cover the diameter fails with ErrCapTooSmall.
//
// Complexity: O(k·n) for the net plus O(k²) quantization, k = net size.
func New(s *metric.Space, eps float64, opts ...Option) (*Fingerprint, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadResolution
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	net, err := s.EpsNet(eps)
	if err != nil {
		return nil, err
	}
	if len(net) > o.MaxNet {
		return nil, fmt.Errorf("%w: net size %d exceeds cap %d", ErrNetTooLarge, len(net), o.MaxNet)
	}

	diam := s.Diameter()
	capM := o.Cap
	if capM == 0 {
		capM = int(math.Ceil(metric.Round9(diam / eps)))
		if capM == 0 {
			capM = 1 // single-point space
		}
	} else if float64(capM)*eps < diam-metric.StructTol {
		// A cap whose range falls short of the diameter would saturate
		// cells and void the soundness bound.
		return nil, fmt.Errorf("%w: cap %d at resolution %g covers %g, diameter %g", ErrCapTooSmall, capM, eps, float64(capM)*eps, diam)
	}

	k := len(net)
	cells := make([]int32, k*k)
	var (
		i, j, q int
		ratio   float64
	)
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			// Stabilize the ratio before flooring so cells do not flip
			// across platforms when d/ε lands on a quantization boundary.
			ratio = metric.Round9(s.Dist(net[i], net[j]) / eps)
			q = int(math.Floor(ratio))
			if q > capM {
				q = capM
			}
			cells[i*k+j] = int32(q)
		}
	}

	return &Fingerprint{
		Eps:   eps,
		N:     k,
		Cap:   capM,
		Diam:  metric.Round9(diam),
		Cells: cells,
	}, nil
}

// OfClass fingerprints the canonical representative of an isometry class.
func OfClass(c *ghspace.Class, eps float64, opts ...Option) (*Fingerprint, error) {
	if c == nil {
		return nil, ErrNilClass
	}

	return New(c.Rep(), eps, opts...)
}

// At returns the quantized cell (i, j). Out-of-range indices panic
// (programmer error, matching metric.Space.Dist).
func (f *Fingerprint) At(i, j int) int {
	if i < 0 || i >= f.N || j < 0 || j >= f.N {
		panic("fingerprint: cell index out of range")
	}

	return int(f.Cells[i*f.N+j])
}

// Key returns a stable xxhash digest of the fingerprint, suitable as a
// map or store key. The digest covers exactly the fields Equal compares
// (resolution, net size, cap, cells), so equal fingerprints always share
// a key; the Diam metadata stays out, as two distinct spaces may
// legitimately produce one fingerprint.
func (f *Fingerprint) Key() uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f.Eps))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(f.N))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(f.Cap))
	_, _ = h.Write(buf[:])

	var c int32
	for _, c = range f.Cells {
		binary.LittleEndian.PutUint32(buf[:4], uint32(c))
		_, _ = h.Write(buf[:4])
	}

	return h.Sum64()
}

// Equal reports bit-identity of two fingerprints: same resolution, same
// net size, same cap and identical cell matrices. This is the premise of
// the soundness bound.
func (f *Fingerprint) Equal(g *Fingerprint) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.Eps != g.Eps || f.N != g.N || f.Cap != g.Cap || len(f.Cells) != len(g.Cells) {
		return false
	}
	var i int
	for i = range f.Cells {
		if f.Cells[i] != g.Cells[i] {
			return false
		}
	}

	return true
}

// Bound returns the soundness radius at this resolution: two spaces with
// equal fingerprints are within Bound() of each other in GH distance.
//
// Derivation of the constant: matching the two nets cell by cell distorts
// each pairwise distance by at most 2ε (quantization slack on both
// entries), extending the match from the nets to the full spaces adds at
// most 2ε (net density on both sides) plus ε for cross-matched pairs, so
// the correspondence distortion is at most 5ε and the GH distance at most
// 5ε/2.
func (f *Fingerprint) Bound() float64 {
	return metric.Round9(5 * f.Eps / 2)
}
