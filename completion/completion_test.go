package completion_test

import (
	"errors"
	"math"
	"testing"

	"github.com/metriclab/gromov/completion"
	"github.com/metriclab/gromov/ghspace"
	"github.com/metriclab/gromov/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairClass returns the class of a two-point space at distance d.
func pairClass(t *testing.T, d float64) *ghspace.Class {
	t.Helper()
	s, err := metric.New([][]float64{
		{0, d},
		{d, 0},
	})
	require.NoError(t, err)
	c, err := ghspace.ToClass(s)
	require.NoError(t, err)

	return c
}

// geomPairs is a contractive sequence of two-point spaces with
// d_n = 1 + 2^{-(n+1)}, converging to the unit pair.
func geomPairs(t *testing.T) completion.Sequence {
	return func(n int) (*ghspace.Class, error) {
		return pairClass(t, 1+math.Pow(2, -float64(n+1))), nil
	}
}

func TestNewBuilder_NilSequence(t *testing.T) {
	_, err := completion.NewBuilder(nil)
	assert.ErrorIs(t, err, completion.ErrNilSequence)
}

func TestLimit_BadPrecision(t *testing.T) {
	b, err := completion.NewBuilder(geomPairs(t))
	require.NoError(t, err)

	_, err = b.Limit(0)
	assert.ErrorIs(t, err, completion.ErrBadPrecision)
	_, err = b.Limit(-1)
	assert.ErrorIs(t, err, completion.ErrBadPrecision)
	_, err = b.Limit(math.NaN())
	assert.ErrorIs(t, err, completion.ErrBadPrecision)
}

func TestRun_SequenceErrors(t *testing.T) {
	boom := errors.New("generator failed")
	_, err := completion.Run(func(int) (*ghspace.Class, error) {
		return nil, boom
	}, 0.5)
	assert.ErrorIs(t, err, boom)

	_, err = completion.Run(func(int) (*ghspace.Class, error) {
		return nil, nil
	}, 0.5)
	assert.ErrorIs(t, err, completion.ErrNilClass)
}

func TestRun_NotContractive(t *testing.T) {
	// Dist(u_0, u_1) = 1, violating the 2^{-0} bound.
	seq := func(n int) (*ghspace.Class, error) {
		if n%2 == 0 {
			return pairClass(t, 1), nil
		}

		return pairClass(t, 3), nil
	}

	_, err := completion.Run(seq, 0.5)
	assert.ErrorIs(t, err, completion.ErrNotContractive)
}

func TestRun_ConstantSequence(t *testing.T) {
	u := pairClass(t, 1)
	seq := func(int) (*ghspace.Class, error) { return u, nil }

	res, err := completion.Run(seq, 0.25)
	require.NoError(t, err)

	same, err := ghspace.Equal(u, res.Limit)
	require.NoError(t, err)
	assert.True(t, same, "a constant sequence converges to its value")
	for n, cert := range res.Certificates {
		assert.InDelta(t, 0, cert, 1e-9, "stage %d", n)
	}
}

func TestRun_ConvergesWithinCertificates(t *testing.T) {
	res, err := completion.Run(geomPairs(t), 0.5)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Depth)
	assert.InDelta(t, 0.5, res.Precision, 1e-12)
	require.Len(t, res.Certificates, res.Depth+1)

	// The limit witness is the deepest term's geometry.
	assert.InDelta(t, 1.125, res.Limit.Diameter(), 1e-9)

	for n := 0; n <= res.Depth; n++ {
		d, errDist := ghspace.Dist(pairClass(t, 1+math.Pow(2, -float64(n+1))), res.Limit)
		require.NoError(t, errDist)
		assert.LessOrEqual(t, d, res.Certificates[n]+1e-9, "stage %d", n)
		assert.Less(t, res.Certificates[n], math.Pow(2, float64(1-n)), "stage %d", n)
	}
}

func TestBuilder_StateMachine(t *testing.T) {
	b, err := completion.NewBuilder(geomPairs(t))
	require.NoError(t, err)

	assert.Equal(t, completion.StateSeed, b.State())
	assert.Nil(t, b.Arena())
	assert.Equal(t, 0, b.Depth())

	require.NoError(t, b.Extend())
	assert.Equal(t, completion.StateGlued, b.State())
	assert.NotNil(t, b.Arena())
	assert.Equal(t, 1, b.Depth())

	res, err := b.Limit(0.5)
	require.NoError(t, err)
	assert.Equal(t, completion.StateUniformCompletion, b.State())
	assert.Equal(t, 2, res.Depth)
}

func TestBuilder_RefineReusesArena(t *testing.T) {
	b, err := completion.NewBuilder(geomPairs(t))
	require.NoError(t, err)

	coarse, err := b.Limit(1)
	require.NoError(t, err)
	fine, err := b.Limit(0.25)
	require.NoError(t, err)
	require.Greater(t, fine.Depth, coarse.Depth)

	// Coarser request after a deep build keeps the deeper certificate.
	again, err := b.Limit(1)
	require.NoError(t, err)
	assert.Equal(t, fine.Depth, again.Depth)
	assert.Equal(t, fine.Precision, again.Precision)

	// Successive witnesses approach each other at the certified rate.
	d, err := ghspace.Dist(coarse.Limit, fine.Limit)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, coarse.Precision+1e-9)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Seed", completion.StateSeed.String())
	assert.Equal(t, "Glued", completion.StateGlued.String())
	assert.Equal(t, "InductiveLimit", completion.StateInductiveLimit.String())
	assert.Equal(t, "UniformCompletion", completion.StateUniformCompletion.String())
	assert.Equal(t, "Unknown", completion.State(200).String())
}
