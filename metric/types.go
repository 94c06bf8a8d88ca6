// Package metric: sentinel errors, numeric policy and construction options.
//
// This file defines ONLY the package-level sentinels, the shared numeric
// policy constants, and the functional options consumed by New. All
// algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors (invalid
// functional-option arguments).
package metric

import (
	"errors"
	"math"
)

// StructTol is the structural tolerance used for symmetry, diagonal and
// triangle-inequality checks. It governs what counts as "equal" during
// validation and is independent from any algorithmic tolerance upstream.
const StructTol = 1e-12

// roundScale controls distance stabilization precision (1e-9). All
// distances returned by queries are rounded through Round9 so results do
// not drift across platforms or optimization levels.
const roundScale = 1e9

// Sentinel errors returned by constructors and queries.
var (
	// ErrEmptySpace indicates a nil or zero-point input. Every space in
	// this module is nonempty; emptiness is rejected at the boundary.
	ErrEmptySpace = errors.New("metric: space must be nonempty")

	// ErrNonSquare indicates a ragged or non-square distance matrix.
	ErrNonSquare = errors.New("metric: distance matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("metric: NaN or Inf distance encountered")

	// ErrNonZeroDiagonal indicates d(i,i) ≠ 0 beyond StructTol.
	ErrNonZeroDiagonal = errors.New("metric: diagonal not zero within tolerance")

	// ErrAsymmetry indicates d(i,j) ≠ d(j,i) beyond StructTol.
	ErrAsymmetry = errors.New("metric: distance matrix is not symmetric within tolerance")

	// ErrNegativeDistance indicates a negative entry.
	ErrNegativeDistance = errors.New("metric: negative distance encountered")

	// ErrZeroDistance indicates d(i,j)=0 for distinct points while the
	// space was not declared a pseudometric via WithPseudo.
	ErrZeroDistance = errors.New("metric: zero distance between distinct points")

	// ErrTriangleViolation indicates d(i,k) > d(i,j)+d(j,k) beyond StructTol.
	ErrTriangleViolation = errors.New("metric: triangle inequality violated")

	// ErrBadIDs indicates an ID slice of wrong length, or containing empty
	// or duplicate identifiers.
	ErrBadIDs = errors.New("metric: invalid point IDs")

	// ErrBadBasepoint indicates a basepoint index outside [0..n-1].
	ErrBadBasepoint = errors.New("metric: basepoint out of range")

	// ErrBadEpsilon indicates a non-positive ε passed to a net query.
	ErrBadEpsilon = errors.New("metric: epsilon must be positive")

	// ErrBadSubset indicates an empty, duplicated or out-of-range index
	// subset passed to Hausdorff or Restrict.
	ErrBadSubset = errors.New("metric: invalid index subset")

	// ErrOutOfRange indicates a point index outside [0..n-1] passed to a
	// checked accessor.
	ErrOutOfRange = errors.New("metric: point index out of range")
)

// Options configures Space construction.
//
// IDs       – optional point identifiers; if set, len(IDs) must equal n
//             with unique, non-empty strings.
// Basepoint – distinguished point index used by pointed constructions
//             (couplings, nets). Defaults to 0.
// Pseudo    – allow zero distances between distinct points. Off by
//             default; gluing and quotients are the intended users.
type Options struct {
	IDs       []string // optional stable identifiers, ids[i] names point i
	Basepoint int      // distinguished point, 0 ≤ Basepoint < n
	Pseudo    bool     // tolerate d(i,j)=0 for i≠j
}

// Option is a functional option for configuring Space construction.
type Option func(*Options)

// WithIDs attaches stable string identifiers to the points.
// Validation (length, uniqueness, non-emptiness) happens in New.
func WithIDs(ids []string) Option {
	return func(o *Options) {
		o.IDs = ids
	}
}

// WithBasepoint selects the distinguished point. Negative values panic
// immediately (programmer error); range is validated in New once n is known.
func WithBasepoint(i int) Option {
	return func(o *Options) {
		if i < 0 {
			panic(ErrBadBasepoint.Error())
		}
		o.Basepoint = i
	}
}

// WithPseudo permits zero distances between distinct points, turning the
// validated object into a pseudometric space. Gluing internals use this;
// most callers should not.
func WithPseudo() Option {
	return func(o *Options) {
		o.Pseudo = true
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: no IDs, basepoint 0, genuine metric required.
func DefaultOptions() Options {
	return Options{
		IDs:       nil,
		Basepoint: 0,
		Pseudo:    false,
	}
}

// Round9 returns x rounded to 1e-9 absolute precision. Shared by every
// package of the module to keep reported distances stable across platforms
// without affecting algorithmic correctness.
func Round9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
