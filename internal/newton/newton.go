// Package newton implements Newton-Raphson root finding for square vector
// systems, driven by forward-mode Jacobians.
//
// Each iteration evaluates the target function once at seeded dual inputs —
// that single evaluation yields both the residual f(x) and the full Jacobian
// J — then solves J·δ = f(x) and updates x := x − δ.
//
// The solver is float64-only because the linear-solve collaborator is.
package newton

import (
	"fmt"

	"github.com/jet-ml/jet/internal/dual"
	"github.com/jet-ml/jet/internal/grad"
	"github.com/jet-ml/jet/internal/linalg"
)

// DefaultMaxSteps is the iteration budget when Config leaves MaxSteps unset.
const DefaultMaxSteps = 10

// ErrSingular reports a Newton step whose Jacobian had no unique solution.
// The run aborts immediately; there is no retry.
var ErrSingular = linalg.ErrSingular

// Func is the vector function whose root is sought. It receives one seeded
// multivariate dual per input variable and must return one output component
// per equation; a root needs as many equations as unknowns.
type Func = grad.VectorFunc[float64]

// Config holds solver configuration.
type Config struct {
	// MaxSteps is the iteration budget (default: DefaultMaxSteps).
	MaxSteps int

	// Tol, when positive, enables early stopping once the residual max-norm
	// ‖f(x)‖∞ drops to Tol or below. Zero keeps the fixed-count behavior:
	// exactly MaxSteps iterations, no convergence test, no divergence
	// detection.
	Tol float64
}

// Step performs a single Newton iteration from x and returns the updated
// point. The input slice is not modified.
//
// Fails with ErrSingular when the Jacobian at x has no unique solution, and
// with a plain error when f is not square (len(f(x)) != len(x)).
func Step(f Func, x []float64) ([]float64, error) {
	vals, jac := grad.ValueAndJacobian(f, x)
	return step(x, vals, jac)
}

func step(x, vals []float64, jac [][]float64) ([]float64, error) {
	if len(vals) != len(x) {
		return nil, fmt.Errorf("newton: system has %d equations for %d unknowns", len(vals), len(x))
	}

	delta, err := linalg.Solve(jac, vals)
	if err != nil {
		return nil, err
	}

	next := make([]float64, len(x))
	for i := range x {
		next[i] = x[i] - delta[i]
	}
	return next, nil
}

// Solve iterates Newton steps from x0 and returns the final point.
//
// With cfg.Tol == 0 it runs exactly the configured number of steps and
// returns whatever point it lands on — no residual check, matching classic
// fixed-budget Newton iteration. With cfg.Tol > 0 it stops as soon as the
// residual max-norm is within tolerance.
//
// Any step failure (singular Jacobian, non-square system) aborts the run and
// is returned wrapped with the step number.
func Solve(f Func, x0 []float64, cfg Config) ([]float64, error) {
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}

	x := make([]float64, len(x0))
	copy(x, x0)

	for s := 0; s < cfg.MaxSteps; s++ {
		vals, jac := grad.ValueAndJacobian(f, x)
		if cfg.Tol > 0 && maxAbs(vals) <= cfg.Tol {
			return x, nil
		}

		next, err := step(x, vals, jac)
		if err != nil {
			return nil, fmt.Errorf("newton: step %d: %w", s+1, err)
		}
		x = next
	}
	return x, nil
}

// Residual evaluates f at x (constant seeds, no derivative tracking needed
// beyond the shared representation) and returns the residual max-norm.
func Residual(f Func, x []float64) float64 {
	outs := f(constInputs(x))
	vals := make([]float64, len(outs))
	for i, o := range outs {
		vals[i] = o.Value()
	}
	return maxAbs(vals)
}

func constInputs(x []float64) []dual.Multi[float64] {
	in := make([]dual.Multi[float64], len(x))
	for i, v := range x {
		in[i] = dual.ConstMulti(v, len(x))
	}
	return in
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}
