// Package glue — exact-seam and slack-seam amalgam constructors.
package glue

import (
	"fmt"

	"github.com/metriclab/gromov/metric"
)

// Exact glues x and y along an isometric seam.
//
// Contract:
//   - x, y non-nil; seam non-empty.
//   - Seam indices in range, injective on each side.
//   - The seam is a partial isometry: for all pairs of seam entries,
//     d_X(s.X, t.X) == d_Y(s.Y, t.Y) within metric.StructTol.
//
// The carrier keeps all points of x and the non-seam points of y; seam
// points of y are identified with their x partners. Cross distances are
// minimized over all seam routes.
//
// Complexity: O(m²·k + m³) for m carrier points, k seam pairs.
func Exact(x, y *metric.Space, seam []Seam) (*Glued, error) {
	if x == nil || y == nil {
		return nil, ErrNilSpace
	}
	if len(seam) == 0 {
		return nil, ErrEmptySeam
	}

	nx, ny := x.N(), y.N()
	if err := checkSeamRange(seam, nx, ny); err != nil {
		return nil, err
	}

	// Injectivity on both sides.
	var (
		seenX = make(map[int]struct{}, len(seam))
		seenY = make(map[int]struct{}, len(seam))
		s     Seam
		ok    bool
	)
	for _, s = range seam {
		if _, ok = seenX[s.X]; ok {
			return nil, fmt.Errorf("%w: X index %d repeated", ErrSeamNotInjective, s.X)
		}
		if _, ok = seenY[s.Y]; ok {
			return nil, fmt.Errorf("%w: Y index %d repeated", ErrSeamNotInjective, s.Y)
		}
		seenX[s.X] = struct{}{}
		seenY[s.Y] = struct{}{}
	}

	// Partial-isometry check over all seam pairs.
	var (
		i, j int
		diff float64
	)
	for i = 0; i < len(seam); i++ {
		for j = i + 1; j < len(seam); j++ {
			diff = x.Dist(seam[i].X, seam[j].X) - y.Dist(seam[i].Y, seam[j].Y)
			if diff < 0 {
				diff = -diff
			}
			if diff > metric.StructTol {
				return nil, fmt.Errorf("%w: pairs %d,%d differ by %g", ErrSeamNotIsometric, i, j, diff)
			}
		}
	}

	// Carrier layout: x-points keep their indices; non-seam y-points are
	// appended; seam y-points collapse onto their x partners.
	intoY := make([]int, ny)
	for i = 0; i < ny; i++ {
		intoY[i] = -1
	}
	for _, s = range seam {
		intoY[s.Y] = s.X
	}
	m := nx
	yOnly := make([]int, 0, ny-len(seam)) // y indices that get fresh carrier slots
	for i = 0; i < ny; i++ {
		if intoY[i] == -1 {
			intoY[i] = m
			yOnly = append(yOnly, i)
			m++
		}
	}

	intoX := make([]int, nx)
	for i = 0; i < nx; i++ {
		intoX[i] = i
	}

	// Assemble the glued matrix.
	dist := makeSquare(m)
	for i = 0; i < nx; i++ {
		for j = 0; j < nx; j++ {
			dist[i][j] = x.Dist(i, j)
		}
	}
	var a, b, yi, yj int
	for a, yi = range yOnly {
		for b, yj = range yOnly {
			dist[nx+a][nx+b] = y.Dist(yi, yj)
		}
	}
	var best, cand float64
	for i = 0; i < nx; i++ {
		for a, yi = range yOnly {
			best = x.Dist(i, seam[0].X) + y.Dist(seam[0].Y, yi)
			for _, s = range seam[1:] {
				cand = x.Dist(i, s.X) + y.Dist(s.Y, yi)
				if cand < best {
					best = cand
				}
			}
			dist[i][nx+a] = best
			dist[nx+a][i] = best
		}
	}

	z, err := metric.New(dist, metric.WithBasepoint(x.Basepoint()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGlueInvariant, err)
	}

	return &Glued{Z: z, IntoX: intoX, IntoY: intoY}, nil
}

// Approx glues x and y along an almost-matching seam with a strictly
// positive slack eps.
//
// Contract:
//   - x, y non-nil; seam non-empty; eps > 0.
//   - Seam distortion within budget: for all pairs of seam entries,
//     |d_X(s.X, t.X) − d_Y(s.Y, t.Y)| ≤ 2·eps (within metric.StructTol).
//
// The carrier is the full disjoint union; cross distances gain the eps
// slack, which preserves strict positivity and, under the distortion
// budget, the triangle inequality.
//
// Complexity: O(m²·k + m³) for m = |x|+|y|, k seam pairs.
func Approx(x, y *metric.Space, seam []Seam, eps float64) (*Glued, error) {
	if x == nil || y == nil {
		return nil, ErrNilSpace
	}
	if len(seam) == 0 {
		return nil, ErrEmptySeam
	}
	if eps <= 0 {
		return nil, ErrNonPositiveSlack
	}

	nx, ny := x.N(), y.N()
	if err := checkSeamRange(seam, nx, ny); err != nil {
		return nil, err
	}

	// Distortion budget check.
	var (
		i, j int
		diff float64
	)
	for i = 0; i < len(seam); i++ {
		for j = i + 1; j < len(seam); j++ {
			diff = x.Dist(seam[i].X, seam[j].X) - y.Dist(seam[i].Y, seam[j].Y)
			if diff < 0 {
				diff = -diff
			}
			if diff > 2*eps+metric.StructTol {
				return nil, fmt.Errorf("%w: pairs %d,%d distort by %g > 2·eps=%g", ErrSeamDistortion, i, j, diff, 2*eps)
			}
		}
	}

	m := nx + ny
	intoX := make([]int, nx)
	for i = 0; i < nx; i++ {
		intoX[i] = i
	}
	intoY := make([]int, ny)
	for j = 0; j < ny; j++ {
		intoY[j] = nx + j
	}

	dist := makeSquare(m)
	for i = 0; i < nx; i++ {
		for j = 0; j < nx; j++ {
			dist[i][j] = x.Dist(i, j)
		}
	}
	for i = 0; i < ny; i++ {
		for j = 0; j < ny; j++ {
			dist[nx+i][nx+j] = y.Dist(i, j)
		}
	}
	var (
		s          Seam
		best, cand float64
	)
	for i = 0; i < nx; i++ {
		for j = 0; j < ny; j++ {
			best = x.Dist(i, seam[0].X) + eps + y.Dist(seam[0].Y, j)
			for _, s = range seam[1:] {
				cand = x.Dist(i, s.X) + eps + y.Dist(s.Y, j)
				if cand < best {
					best = cand
				}
			}
			dist[i][nx+j] = best
			dist[nx+j][i] = best
		}
	}

	z, err := metric.New(dist, metric.WithBasepoint(x.Basepoint()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGlueInvariant, err)
	}

	return &Glued{Z: z, IntoX: intoX, IntoY: intoY}, nil
}

// checkSeamRange verifies every seam index against its factor size.
func checkSeamRange(seam []Seam, nx, ny int) error {
	var s Seam
	for _, s = range seam {
		if s.X < 0 || s.X >= nx || s.Y < 0 || s.Y >= ny {
			return fmt.Errorf("%w: pair (%d,%d)", ErrSeamRange, s.X, s.Y)
		}
	}

	return nil
}

// makeSquare allocates an m×m zero matrix.
func makeSquare(m int) [][]float64 {
	out := make([][]float64, m)
	var i int
	for i = 0; i < m; i++ {
		out[i] = make([]float64, m)
	}

	return out
}
