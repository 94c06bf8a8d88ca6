package ghspace_test

import (
	"testing"

	"github.com/metriclab/gromov/ghspace"
	"github.com/metriclab/gromov/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func space(t *testing.T, dist [][]float64) *metric.Space {
	t.Helper()
	s, err := metric.New(dist)
	require.NoError(t, err)

	return s
}

func pair(t *testing.T) *metric.Space {
	return space(t, [][]float64{
		{0, 1},
		{1, 0},
	})
}

func equilateral(t *testing.T) *metric.Space {
	return space(t, [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
}

// chain3 and its relabeling are isometric presentations of the same
// geometry (points in a different order).
func chain3(t *testing.T) *metric.Space {
	return space(t, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
}

func chain3Relabeled(t *testing.T) *metric.Space {
	return space(t, [][]float64{
		{0, 2, 3},
		{2, 0, 1},
		{3, 1, 0},
	})
}

func TestToClass_NilSpace(t *testing.T) {
	_, err := ghspace.ToClass(nil)
	assert.ErrorIs(t, err, ghspace.ErrNilSpace)
}

func TestToClass_Idempotent(t *testing.T) {
	s := equilateral(t)

	p, err := ghspace.ToClass(s)
	require.NoError(t, err)
	q, err := ghspace.ToClass(s)
	require.NoError(t, err)

	same, err := ghspace.Equal(p, q)
	require.NoError(t, err)
	assert.True(t, same, "ToClass must be a function of the isometry type")
	assert.Equal(t, p.Digest(), q.Digest())
}

func TestEqual_IsometricPresentations(t *testing.T) {
	p, err := ghspace.ToClass(chain3(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(chain3Relabeled(t))
	require.NoError(t, err)

	assert.Equal(t, p.Digest(), q.Digest(), "digests are isometry invariants")

	same, err := ghspace.Equal(p, q)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestEqual_DistinctGeometries(t *testing.T) {
	p, err := ghspace.ToClass(pair(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(equilateral(t))
	require.NoError(t, err)

	same, err := ghspace.Equal(p, q)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestDist_MetricAxioms(t *testing.T) {
	p, err := ghspace.ToClass(pair(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(equilateral(t))
	require.NoError(t, err)
	r, err := ghspace.ToClass(chain3(t))
	require.NoError(t, err)

	// Identity.
	dpp, err := ghspace.Dist(p, p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dpp)

	// Symmetry.
	dpq, err := ghspace.Dist(p, q)
	require.NoError(t, err)
	dqp, err := ghspace.Dist(q, p)
	require.NoError(t, err)
	assert.InDelta(t, dpq, dqp, 1e-9)

	// Triangle inequality.
	dqr, err := ghspace.Dist(q, r)
	require.NoError(t, err)
	dpr, err := ghspace.Dist(p, r)
	require.NoError(t, err)
	assert.LessOrEqual(t, dpr, dpq+dqr+1e-9)
}

func TestDist_ZeroImpliesEqual(t *testing.T) {
	p, err := ghspace.ToClass(chain3(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(chain3Relabeled(t))
	require.NoError(t, err)

	d, err := ghspace.Dist(p, q)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	same, err := ghspace.Equal(p, q)
	require.NoError(t, err)
	assert.True(t, same, "distance zero must coincide with class equality")
}

func TestDist_KnownValue(t *testing.T) {
	p, err := ghspace.ToClass(pair(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(equilateral(t))
	require.NoError(t, err)

	d, err := ghspace.Dist(p, q)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-9)
}

func TestCouple_AttainsDist(t *testing.T) {
	p, err := ghspace.ToClass(pair(t))
	require.NoError(t, err)
	q, err := ghspace.ToClass(equilateral(t))
	require.NoError(t, err)

	c, err := ghspace.Couple(p, q)
	require.NoError(t, err)

	h, err := c.Z.Hausdorff(c.IntoX, c.IntoY)
	require.NoError(t, err)
	assert.InDelta(t, c.Dist, h, 1e-9, "the coupling must attain the distance")
}

func TestRegistry_DedupAndHandles(t *testing.T) {
	r := ghspace.NewRegistry()

	h1, err := r.Add(chain3(t))
	require.NoError(t, err)
	h2, err := r.Add(chain3Relabeled(t))
	require.NoError(t, err)
	h3, err := r.Add(equilateral(t))
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "isometric spaces share one handle")
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, r.Distinct())

	c, err := r.Class(h1)
	require.NoError(t, err)
	assert.Equal(t, 3, c.N())

	_, err = r.Class(99)
	assert.ErrorIs(t, err, ghspace.ErrBadHandle)
}

func TestRegistry_Union(t *testing.T) {
	r := ghspace.NewRegistry()

	h1, err := r.Add(pair(t))
	require.NoError(t, err)
	h2, err := r.Add(equilateral(t))
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	r.Union(h1, h2)
	assert.Equal(t, r.Find(h1), r.Find(h2))
	assert.Equal(t, 1, r.Distinct())
	assert.Equal(t, 2, r.Len())
}
