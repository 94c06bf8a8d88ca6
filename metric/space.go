// Package metric — Space value type and staged construction validation.
//
// Design:
//   - Row-major flat buffer: w[i*n+j] = d(i,j). One allocation, cache
//     friendly, no per-query allocation.
//   - Validation is staged and fails fast with strict sentinels: shape →
//     finiteness → diagonal → negativity → symmetry → positivity →
//     triangle inequality. Later stages assume earlier ones passed.
//   - A *Space is immutable after New; derivations allocate new spaces.
package metric

import (
	"fmt"
	"math"
)

// Space is an immutable finite metric space on points 0..n-1.
type Space struct {
	n    int       // number of points, n ≥ 1
	w    []float64 // row-major distances, len == n*n
	ids  []string  // optional identifiers, nil or len == n
	base int       // basepoint index, 0 ≤ base < n
	diam float64   // cached diameter, Round9-stabilized
}

// New validates dist as a finite metric (or pseudometric, with
// WithPseudo) and returns the immutable Space.
//
// Contract:
//   - dist must be non-nil, square, with n ≥ 1 rows.
//   - All entries finite; diagonal ≈ 0; symmetric within StructTol;
//     non-negative; strictly positive off-diagonal unless WithPseudo;
//     triangle inequality within StructTol.
//   - WithIDs(ids): len(ids) == n, unique, non-empty.
//   - WithBasepoint(i): 0 ≤ i < n.
//
// Complexity: O(n³) time (triangle scan), O(n²) space.
func New(dist [][]float64, opts ...Option) (*Space, error) {
	// Stage 0: apply functional options over defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 1: shape.
	n := len(dist)
	if n == 0 {
		return nil, ErrEmptySpace
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: flatten while checking finiteness, negativity, diagonal.
	w := make([]float64, n*n)
	var x float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = dist[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d)", ErrNaNInf, i, j)
			}
			if x < 0 {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%g", ErrNegativeDistance, i, j, x)
			}
			w[i*n+j] = x
		}
	}
	for i = 0; i < n; i++ {
		if w[i*n+i] > StructTol {
			return nil, fmt.Errorf("%w: entry (%d,%d)=%g", ErrNonZeroDiagonal, i, i, w[i*n+i])
		}
		w[i*n+i] = 0 // normalize exact zeros on the diagonal
	}

	// Stage 3: symmetry within StructTol; normalize to the upper value so
	// downstream comparisons see exactly symmetric data.
	var a, b, diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a = w[i*n+j]
			b = w[j*n+i]
			diff = a - b
			if diff < 0 {
				diff = -diff
			}
			if diff > StructTol {
				return nil, fmt.Errorf("%w: entries (%d,%d)", ErrAsymmetry, i, j)
			}
			w[j*n+i] = a
		}
	}

	// Stage 4: strict positivity off the diagonal (unless pseudometric).
	if !cfg.Pseudo {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if w[i*n+j] <= StructTol {
					return nil, fmt.Errorf("%w: entries (%d,%d)", ErrZeroDistance, i, j)
				}
			}
		}
	}

	// Stage 5: triangle inequality, full O(n³) scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				if w[i*n+k] > w[i*n+j]+w[j*n+k]+StructTol {
					return nil, fmt.Errorf("%w: points (%d,%d,%d)", ErrTriangleViolation, i, j, k)
				}
			}
		}
	}

	// Stage 6: optional IDs.
	if cfg.IDs != nil {
		if len(cfg.IDs) != n {
			return nil, ErrBadIDs
		}
		seen := make(map[string]struct{}, n)
		var id string
		var ok bool
		for i = 0; i < n; i++ {
			id = cfg.IDs[i]
			if id == "" {
				return nil, ErrBadIDs
			}
			if _, ok = seen[id]; ok {
				return nil, ErrBadIDs
			}
			seen[id] = struct{}{}
		}
	}

	// Stage 7: basepoint range.
	if cfg.Basepoint < 0 || cfg.Basepoint >= n {
		return nil, ErrBadBasepoint
	}

	// Stage 8: cache the diameter.
	var diam float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w[i*n+j] > diam {
				diam = w[i*n+j]
			}
		}
	}

	s := &Space{
		n:    n,
		w:    w,
		base: cfg.Basepoint,
		diam: Round9(diam),
	}
	if cfg.IDs != nil {
		s.ids = make([]string, n)
		copy(s.ids, cfg.IDs)
	}

	return s, nil
}

// N returns the number of points.
func (s *Space) N() int { return s.n }

// Dist returns d(i,j). Indices must be in [0..n-1]; out-of-range indices
// are a programmer error and panic. Use At for a checked accessor.
func (s *Space) Dist(i, j int) float64 {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		panic(ErrOutOfRange.Error())
	}

	return s.w[i*s.n+j]
}

// At returns d(i,j) with bounds checking, ErrOutOfRange on bad indices.
func (s *Space) At(i, j int) (float64, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, i, j)
	}

	return s.w[i*s.n+j], nil
}

// Diameter returns max d(i,j), stabilized to 1e-9. O(1): cached at New.
func (s *Space) Diameter() float64 { return s.diam }

// Basepoint returns the distinguished point index.
func (s *Space) Basepoint() int { return s.base }

// IDOf returns the identifier of point i, or "" when the space carries no
// IDs. Out-of-range indices panic (programmer error).
func (s *Space) IDOf(i int) string {
	if i < 0 || i >= s.n {
		panic(ErrOutOfRange.Error())
	}
	if s.ids == nil {
		return ""
	}

	return s.ids[i]
}

// Matrix returns a fresh [][]float64 copy of the distance matrix. The
// Space itself stays immutable; mutating the copy is safe.
//
// Complexity: O(n²).
func (s *Space) Matrix() [][]float64 {
	out := make([][]float64, s.n)
	var i int
	for i = 0; i < s.n; i++ {
		out[i] = make([]float64, s.n)
		copy(out[i], s.w[i*s.n:(i+1)*s.n])
	}

	return out
}
