package fingerprint_test

import (
	"testing"

	"github.com/metriclab/gromov/fingerprint"
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

func TestNew_BadInputs(t *testing.T) {
	_, err := fingerprint.New(nil, 0.5)
	assert.ErrorIs(t, err, fingerprint.ErrNilSpace)

	_, err = fingerprint.New(pair(t), 0)
	assert.ErrorIs(t, err, fingerprint.ErrBadResolution)

	_, err = fingerprint.New(pair(t), -1)
	assert.ErrorIs(t, err, fingerprint.ErrBadResolution)

	_, err = fingerprint.OfClass(nil, 0.5)
	assert.ErrorIs(t, err, fingerprint.ErrNilClass)
}

func TestNew_KnownCells(t *testing.T) {
	// d(0,1)=1 at ε=0.4: both points enter the net, 1/0.4 quantizes to 2,
	// derived cap is ⌈1/0.4⌉ = 3.
	f, err := fingerprint.New(pair(t), 0.4)
	require.NoError(t, err)

	assert.Equal(t, 2, f.N)
	assert.Equal(t, 3, f.Cap)
	assert.Equal(t, 0, f.At(0, 0))
	assert.Equal(t, 2, f.At(0, 1))
	assert.Equal(t, 2, f.At(1, 0))
	assert.InDelta(t, 1.0, f.Diam, 1e-9)
	assert.InDelta(t, 1.0, f.Bound(), 1e-9)
}

func TestNew_Deterministic(t *testing.T) {
	s := equilateral(t)

	f, err := fingerprint.New(s, 0.3)
	require.NoError(t, err)
	g, err := fingerprint.New(s, 0.3)
	require.NoError(t, err)

	assert.True(t, f.Equal(g))
	assert.Equal(t, f.Key(), g.Key())
}

func TestNew_SinglePoint(t *testing.T) {
	f, err := fingerprint.New(space(t, [][]float64{{0}}), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, f.N)
	assert.Equal(t, 0, f.At(0, 0))
}

func TestNew_NetTooLarge(t *testing.T) {
	// At ε=0.4 every point of the equilateral triangle enters the net.
	_, err := fingerprint.New(equilateral(t), 0.4, fingerprint.WithMaxNet(2))
	assert.ErrorIs(t, err, fingerprint.ErrNetTooLarge)
}

func TestNew_ExplicitCap(t *testing.T) {
	// Cap range 5·0.4 = 2 covers the unit diameter; cells stay exact.
	f, err := fingerprint.New(pair(t), 0.4, fingerprint.WithCap(5))
	require.NoError(t, err)

	assert.Equal(t, 5, f.Cap)
	assert.Equal(t, 2, f.At(0, 1))
}

func TestNew_CapTooSmall(t *testing.T) {
	// Cap range 1·0.4 = 0.4 falls short of both diameters. Without the
	// rejection, both matrices would saturate to the same cells and
	// "identical fingerprints" would pair spaces at GH distance 2 under
	// a bound of 1.
	near := pair(t)
	far := space(t, [][]float64{
		{0, 5},
		{5, 0},
	})

	_, err := fingerprint.New(near, 0.4, fingerprint.WithCap(1))
	assert.ErrorIs(t, err, fingerprint.ErrCapTooSmall)
	_, err = fingerprint.New(far, 0.4, fingerprint.WithCap(1))
	assert.ErrorIs(t, err, fingerprint.ErrCapTooSmall)

	// A shared cap wide enough for the whole family keeps the spaces
	// comparable and distinguishable.
	fn, err := fingerprint.New(near, 0.4, fingerprint.WithCap(13))
	require.NoError(t, err)
	ff, err := fingerprint.New(far, 0.4, fingerprint.WithCap(13))
	require.NoError(t, err)
	assert.False(t, fn.Equal(ff))
	assert.Equal(t, 2, fn.At(0, 1))
	assert.Equal(t, 12, ff.At(0, 1))
}

// At a resolution above the diameter, both nets collapse to the basepoint
// and the fingerprints coincide even though the spaces do not.
func TestSoundness_EqualFingerprintsBoundDistance(t *testing.T) {
	x := pair(t)
	y := equilateral(t)

	fx, err := fingerprint.New(x, 2)
	require.NoError(t, err)
	fy, err := fingerprint.New(y, 2)
	require.NoError(t, err)
	require.True(t, fx.Equal(fy))
	assert.Equal(t, fx.Key(), fy.Key())

	p, err := ghspace.ToClass(x)
	require.NoError(t, err)
	q, err := ghspace.ToClass(y)
	require.NoError(t, err)

	d, err := ghspace.Dist(p, q)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, fx.Bound())
}

// Two-point spaces at d=1 and d=1.1 keep both points in their ε=0.4
// nets and quantize into the same bucket (⌊2.5⌋ = ⌊2.75⌋ = 2), so their
// fingerprints coincide without degenerating to a single-point net; the
// soundness radius must then dominate their true distance.
func TestSoundness_SharedBucketNondegenerate(t *testing.T) {
	x := pair(t)
	y := space(t, [][]float64{
		{0, 1.1},
		{1.1, 0},
	})

	fx, err := fingerprint.New(x, 0.4)
	require.NoError(t, err)
	fy, err := fingerprint.New(y, 0.4)
	require.NoError(t, err)

	require.Equal(t, 2, fx.N, "net must not collapse")
	require.True(t, fx.Equal(fy))
	assert.Equal(t, fx.Key(), fy.Key())

	p, err := ghspace.ToClass(x)
	require.NoError(t, err)
	q, err := ghspace.ToClass(y)
	require.NoError(t, err)
	d, err := ghspace.Dist(p, q)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, d, 1e-9)
	assert.LessOrEqual(t, d, fx.Bound())

	// Past the bucket boundary the fingerprints separate again.
	z := space(t, [][]float64{
		{0, 1.3},
		{1.3, 0},
	})
	fz, err := fingerprint.New(z, 0.4)
	require.NoError(t, err)
	assert.False(t, fx.Equal(fz))
}

func TestEqual_DistinguishesResolutions(t *testing.T) {
	s := pair(t)

	f, err := fingerprint.New(s, 0.4)
	require.NoError(t, err)
	g, err := fingerprint.New(s, 0.5)
	require.NoError(t, err)

	assert.False(t, f.Equal(g))
	assert.NotEqual(t, f.Key(), g.Key())
}

func TestCodec_RoundTrip(t *testing.T) {
	f, err := fingerprint.New(equilateral(t), 0.3)
	require.NoError(t, err)

	payload, err := f.Encode()
	require.NoError(t, err)

	g, err := fingerprint.Decode(payload)
	require.NoError(t, err)

	assert.True(t, f.Equal(g))
	assert.Equal(t, f.Key(), g.Key())
	assert.Equal(t, f.Diam, g.Diam)
}

func TestCodec_RejectsGarbage(t *testing.T) {
	_, err := fingerprint.Decode([]byte("not msgpack"))
	assert.ErrorIs(t, err, fingerprint.ErrCorruptPayload)
}

func TestCodec_RejectsMalformed(t *testing.T) {
	cases := map[string]*fingerprint.Fingerprint{
		"zero resolution": {Eps: 0, N: 1, Cap: 1, Cells: []int32{0}},
		"cell count":      {Eps: 0.5, N: 2, Cap: 1, Cells: []int32{0, 1, 1}},
		"nonzero diag":    {Eps: 0.5, N: 1, Cap: 1, Cells: []int32{1}},
		"asymmetry":       {Eps: 0.5, N: 2, Cap: 3, Cells: []int32{0, 1, 2, 0}},
		"cap overflow":    {Eps: 0.5, N: 2, Cap: 1, Cells: []int32{0, 2, 2, 0}},
		"saturating cap":  {Eps: 0.5, N: 1, Cap: 1, Diam: 5, Cells: []int32{0}},
	}

	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			payload, err := f.Encode()
			require.NoError(t, err)

			_, err = fingerprint.Decode(payload)
			assert.ErrorIs(t, err, fingerprint.ErrCorruptPayload)
		})
	}
}

func TestTotallyBounded(t *testing.T) {
	// M = ⌈1/0.5⌉ = 2, K = 2: bound = 2·(2+1)^4 = 162.
	bound, err := fingerprint.TotallyBounded(0.5, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 162.0, bound)

	_, err = fingerprint.TotallyBounded(0, 1, 2)
	assert.ErrorIs(t, err, fingerprint.ErrBadResolution)
	_, err = fingerprint.TotallyBounded(0.5, 0, 2)
	assert.ErrorIs(t, err, fingerprint.ErrBadBound)
	_, err = fingerprint.TotallyBounded(0.5, 1, 0)
	assert.ErrorIs(t, err, fingerprint.ErrBadDepth)
}

func TestSchedule(t *testing.T) {
	sched, err := fingerprint.Schedule(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0.25, 0.125}, sched)

	_, err = fingerprint.Schedule(0)
	assert.ErrorIs(t, err, fingerprint.ErrBadDepth)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { fingerprint.WithMaxNet(0) })
	assert.Panics(t, func() { fingerprint.WithCap(-1) })
}
