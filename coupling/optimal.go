// Package coupling — exact optimal-coupling search (branch-and-bound).
//
// Rationale (succinct):
//  1. The incumbent upper bound comes from a deterministic greedy descent
//     (each variable takes the value of least incremental distortion,
//     smallest-index tiebreak), so pruning has a finite cap from node one;
//     a trivial correspondence always exists, bounding the optimum by
//     max(diam X, diam Y) — well under the 2·diam X + 1 + 2·diam Y
//     baseline that guarantees totality.
//  2. The running maximal distortion of the assigned pairs is an
//     admissible per-branch lower bound: adding pairs never decreases it.
//  3. Branching order: candidate values sorted by incremental distortion
//     (index tiebreak), so improving assignments are found early and the
//     sorted scan can stop at the first non-improving value.
//  4. The node budget is checked on every node; exhaustion marks the
//     search truncated and the result degrades to certified bounds.
package coupling

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/metriclab/gromov/glue"
	"github.com/metriclab/gromov/metric"
)

// searchEngine holds the mutable state of one depth-first run. A dedicated
// engine struct keeps hot-path state predictable and branch runs isolated.
type searchEngine struct {
	x, y *metric.Space
	nx   int
	ny   int
	nv   int // total variables: nx map values of F, then ny of G

	ps []int // X-side of assigned pairs, len == current depth
	qs []int // Y-side of assigned pairs

	bestF   []int
	bestG   []int
	bestDis float64

	nodes     int
	maxNodes  int // 0 ⇒ unlimited
	truncated bool
}

// newEngine prepares an engine seeded with the given incumbent.
func newEngine(x, y *metric.Space, maxNodes int, seedF, seedG []int, seedDis float64) *searchEngine {
	e := &searchEngine{
		x:        x,
		y:        y,
		nx:       x.N(),
		ny:       y.N(),
		nv:       x.N() + y.N(),
		ps:       make([]int, 0, x.N()+y.N()),
		qs:       make([]int, 0, x.N()+y.N()),
		bestF:    append([]int(nil), seedF...),
		bestG:    append([]int(nil), seedG...),
		bestDis:  seedDis,
		maxNodes: maxNodes,
	}

	return e
}

// incDist returns the branch distortion after adding pair (p,q) to the
// currently assigned pairs: max(cur, max_k |d_X(p,ps[k]) − d_Y(q,qs[k])|).
//
// Complexity: O(depth).
func (e *searchEngine) incDist(cur float64, p, q int) float64 {
	var (
		k    int
		diff float64
	)
	for k = 0; k < len(e.ps); k++ {
		diff = e.x.Dist(p, e.ps[k]) - e.y.Dist(q, e.qs[k])
		if diff < 0 {
			diff = -diff
		}
		if diff > cur {
			cur = diff
		}
	}

	return cur
}

// candidate is one branch value with its incremental distortion.
type candidate struct {
	val int
	dis float64
}

// dfs explores assignments from the given depth with the given branch
// distortion. Assigned pairs live in e.ps/e.qs.
func (e *searchEngine) dfs(depth int, dis float64) {
	if e.truncated {
		return
	}
	e.nodes++
	if e.maxNodes > 0 && e.nodes > e.maxNodes {
		e.truncated = true

		return
	}

	// Prune: branch distortion only grows; equality cannot improve.
	if dis >= e.bestDis {
		return
	}

	if depth == e.nv {
		// Complete assignment strictly better than the incumbent.
		e.bestDis = dis
		e.snapshot()

		return
	}

	// Variable at this depth: F[depth] while depth < nx, else G[depth-nx].
	var domain int
	if depth < e.nx {
		domain = e.ny
	} else {
		domain = e.nx
	}

	cands := make([]candidate, 0, domain)
	var (
		v    int
		p, q int
	)
	for v = 0; v < domain; v++ {
		if depth < e.nx {
			p, q = depth, v
		} else {
			p, q = v, depth-e.nx
		}
		cands = append(cands, candidate{val: v, dis: e.incDist(dis, p, q)})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dis != cands[j].dis {
			return cands[i].dis < cands[j].dis
		}

		return cands[i].val < cands[j].val
	})

	var c candidate
	for _, c = range cands {
		if c.dis >= e.bestDis {
			break // sorted: all remaining values prune too
		}
		if depth < e.nx {
			p, q = depth, c.val
		} else {
			p, q = c.val, depth-e.nx
		}
		e.ps = append(e.ps, p)
		e.qs = append(e.qs, q)
		e.dfs(depth+1, c.dis)
		e.ps = e.ps[:len(e.ps)-1]
		e.qs = e.qs[:len(e.qs)-1]
		if e.truncated {
			return
		}
	}
}

// snapshot stores the current complete assignment as the incumbent maps.
// Pair k < nx is (k, F[k]); pair nx+j is (G[j], j).
func (e *searchEngine) snapshot() {
	var k int
	for k = 0; k < e.nx; k++ {
		e.bestF[k] = e.qs[k]
	}
	for k = e.nx; k < e.nv; k++ {
		e.bestG[k-e.nx] = e.ps[k]
	}
}

// greedyWarmStart runs the deterministic first descent (least incremental
// distortion, smallest-index tiebreak) and returns its maps and distortion.
func greedyWarmStart(x, y *metric.Space) (f, g []int, dis float64) {
	nx, ny := x.N(), y.N()
	e := &searchEngine{
		x:  x,
		y:  y,
		nx: nx,
		ny: ny,
		nv: nx + ny,
		ps: make([]int, 0, nx+ny),
		qs: make([]int, 0, nx+ny),
	}

	f = make([]int, nx)
	g = make([]int, ny)
	var (
		depth, v, domain int
		p, q             int
		bestVal          int
		bestInc, inc     float64
	)
	for depth = 0; depth < e.nv; depth++ {
		if depth < nx {
			domain = ny
		} else {
			domain = nx
		}
		bestVal = 0
		bestInc = -1
		for v = 0; v < domain; v++ {
			if depth < nx {
				p, q = depth, v
			} else {
				p, q = v, depth-nx
			}
			inc = e.incDist(dis, p, q)
			if bestInc < 0 || inc < bestInc {
				bestVal, bestInc = v, inc
			}
		}
		if depth < nx {
			p, q = depth, bestVal
			f[depth] = bestVal
		} else {
			p, q = bestVal, depth-nx
			g[depth-nx] = bestVal
		}
		e.ps = append(e.ps, p)
		e.qs = append(e.qs, q)
		dis = bestInc
	}

	return f, g, dis
}

// Optimal computes the exact Gromov–Hausdorff distance between x and y
// and realizes it as a coupling: an ambient space containing isometric
// copies of both factors whose Hausdorff distance equals the GH distance.
//
// Contract: x, y non-nil (their constructors already guarantee
// nonemptiness and the metric axioms).
//
// Returns ErrToleranceNotMet when a node budget truncates the search and
// the certified gap exceeds Options.Tolerance; the returned Coupling then
// carries the best incumbent and honest Lower/Upper bounds.
func Optimal(x, y *metric.Space, opts ...Option) (*Coupling, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if x == nil || y == nil {
		return nil, ErrNilSpace
	}

	nx, ny := x.N(), y.N()

	// Base cases: a single-point factor forces the whole opposite factor
	// onto one point; the distortion is exactly the opposite diameter.
	if nx == 1 || ny == 1 {
		corr := Correspondence{F: make([]int, nx), G: make([]int, ny)}
		var dis float64
		switch {
		case nx == 1 && ny == 1:
			dis = 0
		case nx == 1:
			dis = y.Diameter()
		default:
			dis = x.Diameter()
		}

		return realize(x, y, corr, dis, dis)
	}

	// Root lower bound on the distortion.
	rootLB := x.Diameter() - y.Diameter()
	if rootLB < 0 {
		rootLB = -rootLB
	}

	// Incumbent from the deterministic greedy descent.
	warmF, warmG, warmDis := greedyWarmStart(x, y)

	var (
		bestF     = warmF
		bestG     = warmG
		bestDis   = warmDis
		truncated bool
	)

	if bestDis > rootLB+metric.StructTol {
		if cfg.Parallel {
			bestF, bestG, bestDis, truncated = searchParallel(x, y, cfg, warmF, warmG, warmDis)
		} else {
			e := newEngine(x, y, cfg.MaxNodes, warmF, warmG, warmDis)
			e.dfs(0, 0)
			bestF, bestG, bestDis, truncated = e.bestF, e.bestG, e.bestDis, e.truncated
		}
	}

	lowerDis := bestDis
	if truncated {
		lowerDis = rootLB
	}

	res, err := realize(x, y, Correspondence{F: bestF, G: bestG}, bestDis, lowerDis)
	if err != nil {
		return nil, err
	}
	if truncated && res.Upper-res.Lower > cfg.Tolerance+metric.StructTol {
		return res, fmt.Errorf("%w: certified gap %g > tolerance %g", ErrToleranceNotMet, res.Upper-res.Lower, cfg.Tolerance)
	}

	return res, nil
}

// searchParallel splits the root variable F[0] across an errgroup. Every
// branch runs an isolated engine seeded with the shared warm start; the
// merge picks the smallest distortion with smallest-branch tiebreak, so
// the outcome matches the sequential search exactly.
func searchParallel(x, y *metric.Space, cfg Options, warmF, warmG []int, warmDis float64) (f, g []int, dis float64, truncated bool) {
	ny := y.N()

	perBranch := 0
	if cfg.MaxNodes > 0 {
		perBranch = cfg.MaxNodes / ny
		if perBranch == 0 {
			perBranch = 1
		}
	}

	engines := make([]*searchEngine, ny)
	var eg errgroup.Group
	var v int
	for v = 0; v < ny; v++ {
		branch := v
		e := newEngine(x, y, perBranch, warmF, warmG, warmDis)
		engines[branch] = e
		eg.Go(func() error {
			// Pre-assign F[0] = branch; a single pair has zero distortion.
			e.ps = append(e.ps, 0)
			e.qs = append(e.qs, branch)
			e.dfs(1, 0)

			return nil
		})
	}
	_ = eg.Wait() // branches never fail; errgroup provides the join

	f, g, dis = warmF, warmG, warmDis
	var e *searchEngine
	for _, e = range engines {
		truncated = truncated || e.truncated
		if e.bestDis < dis {
			f, g, dis = e.bestF, e.bestG, e.bestDis
		}
	}

	return f, g, dis, truncated
}

// realize turns the minimizing correspondence into an explicit coupling:
// a slack-seam glue at eps = dis/2, or an exact-seam glue when the
// distortion vanishes. The Hausdorff distance between the copies is
// verified to equal eps before the coupling is returned.
func realize(x, y *metric.Space, corr Correspondence, dis, lowerDis float64) (*Coupling, error) {
	if err := corr.Validate(x, y); err != nil {
		return nil, err
	}

	ps, qs := corr.pairs()

	// Deduplicate relation pairs into a seam (deterministic order).
	type pk struct{ p, q int }
	seen := make(map[pk]struct{}, len(ps))
	seam := make([]glue.Seam, 0, len(ps))
	var k int
	for k = 0; k < len(ps); k++ {
		key := pk{p: ps[k], q: qs[k]}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		seam = append(seam, glue.Seam{X: ps[k], Y: qs[k]})
	}

	var (
		glued *glue.Glued
		err   error
		eps   float64
	)
	if dis <= metric.StructTol {
		// Zero distortion: the factors are isometric and F is a bijection;
		// glue them exactly along it so the copies coincide.
		glued, err = glue.Exact(x, y, seam)
		eps = 0
	} else {
		eps = dis / 2
		glued, err = glue.Approx(x, y, seam, eps)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouplingInvariant, err)
	}

	h, err := glued.Hausdorff()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouplingInvariant, err)
	}
	diff := h - eps
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-9 {
		return nil, fmt.Errorf("%w: hausdorff %g, want %g", ErrCouplingInvariant, h, eps)
	}

	return &Coupling{
		Z:     glued.Z,
		IntoX: glued.IntoX,
		IntoY: glued.IntoY,
		Dist:  metric.Round9(eps),
		Corr:  corr,
		Lower: metric.Round9(lowerDis / 2),
		Upper: metric.Round9(dis / 2),
	}, nil
}

// Dist returns only the Gromov–Hausdorff distance between x and y.
func Dist(x, y *metric.Space, opts ...Option) (float64, error) {
	c, err := Optimal(x, y, opts...)
	if err != nil {
		return 0, err
	}

	return c.Dist, nil
}
