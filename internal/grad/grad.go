// Package grad extracts derivatives, gradients, and Jacobians by seeding
// dual-number inputs and evaluating the target function once.
package grad

import (
	"github.com/jet-ml/jet/internal/dual"
	"github.com/jet-ml/jet/internal/parallel"
)

// Func is a scalar function of one dual variable.
type Func[T dual.Float] func(dual.Number[T]) dual.Number[T]

// MultiFunc is a scalar function of seeded multivariate inputs.
type MultiFunc[T dual.Float] func([]dual.Multi[T]) dual.Multi[T]

// VectorFunc is a vector function of seeded multivariate inputs. Each output
// component contributes one Jacobian row.
type VectorFunc[T dual.Float] func([]dual.Multi[T]) []dual.Multi[T]

var cfg = parallel.DefaultConfig()

// Derivative evaluates f at the seed Var(x) and reads off df/dx. The
// function must be expressible purely in dual-number operations; anything
// else simply does not type-check against Func.
func Derivative[T dual.Float](f Func[T], x T) T {
	return f(dual.Var(x)).Derivative()
}

// Seeds builds the one-hot seed set for the inputs xs: seed i has
// partials[i] = 1 and all other partials 0.
func Seeds[T dual.Float](xs []T) []dual.Multi[T] {
	n := len(xs)
	seeds := make([]dual.Multi[T], n)
	parallel.For(n, func(i int) {
		seeds[i] = dual.Seed(xs[i], i, n)
	}, cfg)
	return seeds
}

// Gradient computes all partial derivatives of f at xs in a single
// evaluation: the partials vector of f's output at the one-hot seeds is the
// gradient. Cost is independent of len(xs), the defining advantage over
// finite differences.
func Gradient[T dual.Float](f MultiFunc[T], xs []T) []T {
	return f(Seeds(xs)).Partials()
}

// Jacobian computes the full M×N Jacobian of F at xs from a single
// evaluation. Row i is output component i's partials vector.
func Jacobian[T dual.Float](f VectorFunc[T], xs []T) [][]T {
	_, jac := ValueAndJacobian(f, xs)
	return jac
}

// ValueAndJacobian returns both F(xs) and its Jacobian from one evaluation.
// Iterative consumers (Newton steps) need the residual and the Jacobian at
// the same point; evaluating once supplies both.
func ValueAndJacobian[T dual.Float](f VectorFunc[T], xs []T) ([]T, [][]T) {
	outs := f(Seeds(xs))
	vals := make([]T, len(outs))
	rows := make([][]T, len(outs))
	parallel.For(len(outs), func(i int) {
		vals[i] = outs[i].Value()
		rows[i] = outs[i].Partials()
	}, cfg)
	return vals, rows
}
