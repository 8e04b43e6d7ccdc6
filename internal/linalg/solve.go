// Package linalg wraps the dense linear-solve capability the Newton solver
// depends on. The solve itself is delegated to gonum; this package pins the
// contract: solve J·x = b for x, or fail distinguishably when J has no
// unique solution.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular reports that the coefficient matrix is singular or too
// ill-conditioned for a unique solution. Callers test with errors.Is.
var ErrSingular = errors.New("linalg: matrix is singular or ill-conditioned")

// Solve solves the square dense system a·x = b for x.
//
// Returns ErrSingular (wrapping gonum's diagnosis) when the system has no
// unique solution. Shape mismatches between a and b are reported as plain
// errors; they indicate a malformed system, not a numeric failure.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("linalg: matrix has %d rows, vector has %d entries", len(a), n)
	}

	dense := mat.NewDense(n, n, nil)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("linalg: row %d has %d columns, want %d", i, len(row), n)
		}
		dense.SetRow(i, row)
	}

	var x mat.VecDense
	if err := x.SolveVec(dense, mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
