// Package coupling: sentinel errors, options and result types.
package coupling

import (
	"errors"

	"github.com/metriclab/gromov/metric"
)

// Sentinel errors returned by the coupling package.
var (
	// ErrNilSpace indicates a nil input space.
	ErrNilSpace = errors.New("coupling: input space is nil")

	// ErrToleranceNotMet indicates that the node budget ran out before the
	// certified gap dropped below Options.Tolerance. The accompanying
	// result still carries the best incumbent and its certified bounds.
	ErrToleranceNotMet = errors.New("coupling: tolerance not met within node budget")

	// ErrCouplingInvariant indicates that the realized coupling failed its
	// Hausdorff verification. This is a construction bug, never a
	// user-input error.
	ErrCouplingInvariant = errors.New("coupling: realized coupling failed verification")

	// ErrBadCorrespondence indicates maps of wrong length or with values
	// outside the opposite factor.
	ErrBadCorrespondence = errors.New("coupling: invalid correspondence")

	// ErrBadMaxNodes and ErrBadTolerance guard the option constructors.
	ErrBadMaxNodes  = errors.New("coupling: MaxNodes must be non-negative")
	ErrBadTolerance = errors.New("coupling: Tolerance must be non-negative")
)

// Correspondence is a pair of total maps f: X→Y and g: Y→X. Its relation
// graph(f) ∪ graph(g)ᵀ covers both factors, hence is a correspondence in
// the Gromov–Hausdorff sense.
type Correspondence struct {
	F []int // F[i] ∈ [0..|Y|-1], image of X-point i
	G []int // G[j] ∈ [0..|X|-1], image of Y-point j
}

// Coupling is a realized optimal coupling: an ambient space containing
// isometric copies of both factors whose Hausdorff distance equals the
// Gromov–Hausdorff distance.
type Coupling struct {
	// Z is the ambient space (a glued realization of the optimal
	// correspondence).
	Z *metric.Space

	// IntoX and IntoY are the isometric index maps of the factors into Z.
	IntoX []int
	IntoY []int

	// Dist is the Hausdorff distance between the two copies in Z — the
	// exact Gromov–Hausdorff distance when Lower == Upper.
	Dist float64

	// Corr is the correspondence realizing Dist (distortion == 2·Dist).
	Corr Correspondence

	// Lower and Upper are certified bounds on the GH distance. After a
	// complete search they coincide with Dist; after a budget-truncated
	// search Lower may lag behind.
	Lower float64
	Upper float64
}

// Options configures the optimal-coupling search.
//
// MaxNodes  – node budget for the branch-and-bound; 0 means unlimited.
// Tolerance – acceptable certified gap (in GH-distance units) below
//             which a truncated search still counts as success.
// Parallel  – split the root assignments across goroutines (deterministic
//             merge; the budget is divided evenly among root branches).
type Options struct {
	MaxNodes  int     // 0 ⇒ unlimited
	Tolerance float64 // ≥ 0; 0 ⇒ exact
	Parallel  bool    // deterministic root-split parallelism
}

// Option is a functional option for configuring the search.
type Option func(*Options)

// WithMaxNodes caps the number of search nodes. Zero means unlimited.
// Negative values panic (programmer error).
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// WithTolerance sets the acceptable certified gap, in GH-distance units.
// Negative values panic (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithParallel enables the deterministic parallel root split.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// DefaultOptions returns the defaults: unlimited budget, exact search,
// sequential execution.
func DefaultOptions() Options {
	return Options{
		MaxNodes:  0,
		Tolerance: 0,
		Parallel:  false,
	}
}
