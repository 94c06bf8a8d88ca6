// Package completion: sentinel errors, sequence and result types.
package completion

import (
	"errors"

	"github.com/metriclab/gromov/ghspace"
)

// Sentinel errors returned by the completion package.
var (
	// ErrNilSequence indicates a nil Sequence input.
	ErrNilSequence = errors.New("completion: sequence is nil")

	// ErrNilClass indicates that the sequence produced a nil class.
	ErrNilClass = errors.New("completion: sequence produced a nil class")

	// ErrNotContractive indicates a violated Cauchy precondition:
	// Dist(u_n, u_{n+1}) ≥ 2^{-n} for some glued index n.
	ErrNotContractive = errors.New("completion: sequence is not contractive")

	// ErrBadPrecision indicates a non-positive or non-finite requested
	// precision.
	ErrBadPrecision = errors.New("completion: precision must be positive")
)

// Sequence yields the n-th term of a Cauchy sequence in GH space,
// n = 0, 1, 2, …. Terms are fetched lazily and at most once per index.
type Sequence func(n int) (*ghspace.Class, error)

// State names the builder's position in the completion construction.
type State uint8

const (
	// StateSeed: no term fetched yet.
	StateSeed State = iota

	// StateGlued: the arena holds compatible copies of u_0 … u_n.
	StateGlued

	// StateInductiveLimit: the arena is finalized at the requested depth.
	StateInductiveLimit

	// StateUniformCompletion: the limit witness has been extracted.
	StateUniformCompletion
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateSeed:
		return "Seed"
	case StateGlued:
		return "Glued"
	case StateInductiveLimit:
		return "InductiveLimit"
	case StateUniformCompletion:
		return "UniformCompletion"
	default:
		return "Unknown"
	}
}

// Result is a certified limit witness.
type Result struct {
	// Limit is the isometry class of the deepest arena copy; it is within
	// Precision of the true limit of the sequence.
	Limit *ghspace.Class

	// Precision is the certified radius 2^{1-Depth}.
	Precision float64

	// Depth is the arena depth N at which the witness was extracted.
	Depth int

	// Certificates[n] is the Hausdorff distance between the copies of u_n
	// and u_N inside the arena; Dist(u_n, Limit) ≤ Certificates[n] and
	// Certificates[n] < 2^{1-n}.
	Certificates []float64
}
