package metric_test

import (
	"math"
	"testing"

	"github.com/metriclab/gromov/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square4 is the unit-square path metric used across tests:
// points 0-1-2-3 around a square with side 1, diagonal 2 (path metric).
func square4() [][]float64 {
	return [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
}

func TestNew_ValidSpace(t *testing.T) {
	s, err := metric.New(square4())
	require.NoError(t, err)
	require.Equal(t, 4, s.N())
	assert.Equal(t, 2.0, s.Diameter())
	assert.Equal(t, 1.0, s.Dist(0, 1))
	assert.Equal(t, 0.0, s.Dist(2, 2))
	assert.Equal(t, 0, s.Basepoint())
}

func TestNew_SinglePoint(t *testing.T) {
	s, err := metric.New([][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, 1, s.N())
	assert.Equal(t, 0.0, s.Diameter())
}

func TestNew_EmptySpace(t *testing.T) {
	_, err := metric.New(nil)
	assert.ErrorIs(t, err, metric.ErrEmptySpace)

	_, err = metric.New([][]float64{})
	assert.ErrorIs(t, err, metric.ErrEmptySpace)
}

func TestNew_NonSquare(t *testing.T) {
	_, err := metric.New([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, metric.ErrNonSquare)
}

func TestNew_NaNInf(t *testing.T) {
	d := square4()
	d[1][2] = math.NaN()
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrNaNInf)

	d = square4()
	d[0][3] = math.Inf(1)
	_, err = metric.New(d)
	assert.ErrorIs(t, err, metric.ErrNaNInf)
}

func TestNew_NonZeroDiagonal(t *testing.T) {
	d := square4()
	d[2][2] = 0.5
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrNonZeroDiagonal)
}

func TestNew_Asymmetry(t *testing.T) {
	d := square4()
	d[0][1] = 1.5
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrAsymmetry)
}

func TestNew_NegativeDistance(t *testing.T) {
	d := square4()
	d[0][1] = -1
	d[1][0] = -1
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrNegativeDistance)
}

func TestNew_ZeroOffDiagonal(t *testing.T) {
	d := [][]float64{
		{0, 0},
		{0, 0},
	}
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrZeroDistance)

	// The same matrix is a legitimate pseudometric.
	s, err := metric.New(d, metric.WithPseudo())
	require.NoError(t, err)
	assert.Equal(t, 2, s.N())
}

func TestNew_TriangleViolation(t *testing.T) {
	d := [][]float64{
		{0, 1, 5},
		{1, 0, 1},
		{5, 1, 0},
	}
	_, err := metric.New(d)
	assert.ErrorIs(t, err, metric.ErrTriangleViolation)
}

func TestNew_IDsValidation(t *testing.T) {
	d := square4()

	_, err := metric.New(d, metric.WithIDs([]string{"a", "b"}))
	assert.ErrorIs(t, err, metric.ErrBadIDs, "length mismatch")

	_, err = metric.New(d, metric.WithIDs([]string{"a", "b", "c", "a"}))
	assert.ErrorIs(t, err, metric.ErrBadIDs, "duplicate")

	_, err = metric.New(d, metric.WithIDs([]string{"a", "b", "c", ""}))
	assert.ErrorIs(t, err, metric.ErrBadIDs, "empty")

	s, err := metric.New(d, metric.WithIDs([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)
	assert.Equal(t, "c", s.IDOf(2))
}

func TestNew_Basepoint(t *testing.T) {
	d := square4()
	_, err := metric.New(d, metric.WithBasepoint(7))
	assert.ErrorIs(t, err, metric.ErrBadBasepoint)

	s, err := metric.New(d, metric.WithBasepoint(3))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Basepoint())
}

func TestAt_OutOfRange(t *testing.T) {
	s, err := metric.New(square4())
	require.NoError(t, err)

	_, err = s.At(0, 4)
	assert.ErrorIs(t, err, metric.ErrOutOfRange)
	_, err = s.At(-1, 0)
	assert.ErrorIs(t, err, metric.ErrOutOfRange)
}

func TestMatrix_IsACopy(t *testing.T) {
	s, err := metric.New(square4())
	require.NoError(t, err)

	m := s.Matrix()
	m[0][1] = 42
	assert.Equal(t, 1.0, s.Dist(0, 1), "mutating the copy must not touch the space")
}
