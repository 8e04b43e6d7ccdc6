// Copyright 2026 Jet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad extracts derivatives, gradients, and Jacobians from
// dual-expressible functions.
//
// # Overview
//
// Every extractor works the same way: seed the inputs with identity
// derivatives, evaluate the target function once, read the derivative
// information off the result. One evaluation yields the full gradient or
// Jacobian regardless of the number of inputs — the cost advantage of
// forward-mode seeding over finite differences.
//
// # Usage
//
//	// d/dx (x² + 1) at x = 3
//	df := grad.Derivative(func(x dual.Number[float64]) dual.Number[float64] {
//	    return x.Mul(x).AddScalar(1)
//	}, 3.0)
//
//	// ∇f for f(x, y) = x²y at (3, 2)
//	g := grad.Gradient(func(in []dual.Multi[float64]) dual.Multi[float64] {
//	    x, y := in[0], in[1]
//	    return x.Mul(x).Mul(y)
//	}, []float64{3, 2})
//
// A function that uses an operation with no dual-number lifting simply does
// not type-check against these signatures; unsupported operations are a
// compile-time property, not a runtime failure.
package grad

import (
	"github.com/jet-ml/jet/dual"
	"github.com/jet-ml/jet/internal/grad"
)

// Func is a scalar function of one dual variable.
type Func[T dual.Float] = grad.Func[T]

// MultiFunc is a scalar function of seeded multivariate inputs.
type MultiFunc[T dual.Float] = grad.MultiFunc[T]

// VectorFunc is a vector function of seeded multivariate inputs.
type VectorFunc[T dual.Float] = grad.VectorFunc[T]

// Derivative returns df/dx at x.
func Derivative[T dual.Float](f Func[T], x T) T {
	return grad.Derivative(f, x)
}

// Seeds builds the one-hot seed set for the inputs xs.
func Seeds[T dual.Float](xs []T) []dual.Multi[T] {
	return grad.Seeds(xs)
}

// Gradient returns all partial derivatives of f at xs from one evaluation.
func Gradient[T dual.Float](f MultiFunc[T], xs []T) []T {
	return grad.Gradient(f, xs)
}

// Jacobian returns the M×N Jacobian of f at xs from one evaluation; row i
// holds output component i's partial derivatives.
func Jacobian[T dual.Float](f VectorFunc[T], xs []T) [][]T {
	return grad.Jacobian(f, xs)
}

// ValueAndJacobian returns both f(xs) and the Jacobian from one evaluation.
func ValueAndJacobian[T dual.Float](f VectorFunc[T], xs []T) ([]T, [][]T) {
	return grad.ValueAndJacobian(f, xs)
}
