// Package glue: sentinel errors and result types.
package glue

import (
	"errors"

	"github.com/metriclab/gromov/metric"
)

// Sentinel errors returned by the glue constructors.
var (
	// ErrNilSpace indicates a nil factor space.
	ErrNilSpace = errors.New("glue: factor space is nil")

	// ErrEmptySeam indicates that no seam pairs were supplied.
	ErrEmptySeam = errors.New("glue: seam must be nonempty")

	// ErrSeamRange indicates a seam index outside its factor space.
	ErrSeamRange = errors.New("glue: seam index out of range")

	// ErrSeamNotInjective indicates that, in exact mode, one carrier point
	// appears in more than one seam pair.
	ErrSeamNotInjective = errors.New("glue: seam is not injective")

	// ErrSeamNotIsometric indicates that, in exact mode, the seam pairs do
	// not preserve distances within tolerance.
	ErrSeamNotIsometric = errors.New("glue: seam is not an isometry")

	// ErrSeamDistortion indicates that, in slack mode, the seam distortion
	// exceeds the 2·eps budget.
	ErrSeamDistortion = errors.New("glue: seam distortion exceeds slack budget")

	// ErrNonPositiveSlack indicates eps ≤ 0 in slack mode.
	ErrNonPositiveSlack = errors.New("glue: slack must be positive")

	// ErrGlueInvariant indicates that the assembled matrix failed metric
	// re-validation. This is a construction bug, never a user-input error.
	ErrGlueInvariant = errors.New("glue: glued matrix failed metric validation")
)

// Seam is one identified (or almost identified) pair of points:
// point X of the first factor with point Y of the second.
type Seam struct {
	X int // index into the first factor
	Y int // index into the second factor
}

// Glued is the amalgamated space together with the isometric index maps
// of both factors into it.
//
// IntoX[i] is the carrier index of the i-th point of the first factor;
// IntoY[j] likewise for the second. In exact mode seam points of Y map
// onto their X-side partners, so IntoY is total but not injective on the
// seam.
type Glued struct {
	Z     *metric.Space // the amalgam; basepoint inherited from X
	IntoX []int         // len == X.N()
	IntoY []int         // len == Y.N()
}

// Hausdorff returns the Hausdorff distance between the two factor copies
// inside the amalgam.
func (g *Glued) Hausdorff() (float64, error) {
	return g.Z.Hausdorff(g.IntoX, g.IntoY)
}
