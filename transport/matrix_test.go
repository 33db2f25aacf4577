package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/transport"
)

func squareMatrix(n int, fill func(i, j int) float64) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = fill(i, j)
		}
	}

	return out
}

func TestNewMatrix_RejectsShapeMismatch(t *testing.T) {
	_, err := transport.NewMatrix(
		[][]float64{squareMatrix(2, func(i, j int) float64 { return 1 })},
		nil,
		nil,
	)
	assert.ErrorIs(t, err, transport.ErrProfileMatrixMismatch)
}

func TestNewMatrix_RejectsNonSquare(t *testing.T) {
	_, err := transport.NewMatrix(
		[][]float64{{1, 2, 3}},
		[][]float64{{1, 2, 3}},
		nil,
	)
	assert.ErrorIs(t, err, transport.ErrNonSquareMatrix)
}

func TestMatrix_DistanceDuration(t *testing.T) {
	dur := squareMatrix(3, func(i, j int) float64 { return float64(i + j) })
	dist := squareMatrix(3, func(i, j int) float64 { return float64(2 * (i + j)) })

	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dist}, nil)
	require.NoError(t, err)

	profile := core.Profile{Index: 0}
	assert.Equal(t, 3, m.Size(profile))
	assert.Equal(t, 3.0, m.Duration(profile, 1, 2, 0))
	assert.Equal(t, 6.0, m.Distance(profile, 1, 2, 0))
	assert.Equal(t, 6.0, m.DistanceApprox(profile, 1, 2))
}

func TestMatrix_ErrorCodeBecomesUnreachable(t *testing.T) {
	dur := squareMatrix(2, func(i, j int) float64 { return 1 })
	dist := squareMatrix(2, func(i, j int) float64 { return 1 })
	codes := [][]int{{0, 1, 0, 0}}

	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dist}, codes)
	require.NoError(t, err)

	profile := core.Profile{Index: 0}
	assert.Equal(t, transport.Unreachable, m.Duration(profile, 0, 1, 0))
	assert.Equal(t, transport.Unreachable, m.Distance(profile, 0, 1, 0))
}

func TestMatrix_ScaleAppliesToResolvedProfile(t *testing.T) {
	dur := squareMatrix(2, func(i, j int) float64 { return 10 })
	dist := squareMatrix(2, func(i, j int) float64 { return 10 })

	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dist}, nil)
	require.NoError(t, err)

	profile := core.Profile{Index: 0, Scale: 1.5}
	assert.Equal(t, 15.0, m.Duration(profile, 0, 1, 0))
}

func TestMatrix_OutOfRangeLocationIsUnreachable(t *testing.T) {
	dur := squareMatrix(1, func(i, j int) float64 { return 1 })
	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dur}, nil)
	require.NoError(t, err)

	profile := core.Profile{Index: 0}
	assert.Equal(t, transport.Unreachable, m.Duration(profile, 0, 5, 0))
}
