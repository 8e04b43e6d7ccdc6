package linalg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jet-ml/jet/internal/linalg"
)

func TestSolve2x2(t *testing.T) {
	// 2x + y = 5, x - y = 1  →  x = 2, y = 1
	a := [][]float64{{2, 1}, {1, -1}}
	b := []float64{5, 1}

	x, err := linalg.Solve(a, b)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 2.0, x[0], 1e-12)
	assert.InDelta(t, 1.0, x[1], 1e-12)
}

func TestSolve1x1(t *testing.T) {
	x, err := linalg.Solve([][]float64{{4}}, []float64{8})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-12)
}

// TestSolveSingular checks a rank-deficient system fails with ErrSingular,
// never a silently wrong solution.
func TestSolveSingular(t *testing.T) {
	a := [][]float64{{1, 1}, {2, 2}}
	b := []float64{1, 2}

	x, err := linalg.Solve(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, linalg.ErrSingular), "error = %v, want ErrSingular", err)
	assert.Nil(t, x)
}

func TestSolveShapeMismatch(t *testing.T) {
	_, err := linalg.Solve([][]float64{{1, 2}}, []float64{1, 2})
	require.Error(t, err)
	assert.False(t, errors.Is(err, linalg.ErrSingular), "shape errors are not singularity")

	_, err = linalg.Solve([][]float64{{1, 2, 3}, {1, 2, 3}}, []float64{1, 2})
	require.Error(t, err)
}
