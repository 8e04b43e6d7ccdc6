// Copyright 2026 Jet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic
// differentiation.
//
// A dual number pairs a value with its exact first derivative and propagates
// both through arithmetic. Evaluate any dual-expressible function at a
// seeded input and the derivative falls out of the result:
//
//	x := dual.Var(3.0)                  // d/dx seed
//	y := x.Mul(x).AddScalar(1)          // y = x² + 1
//	fmt.Println(y.Derivative())         // 6
//
// Multi generalizes this to N partial derivatives tracked simultaneously;
// see the grad package for gradient and Jacobian extraction built on top.
package dual

import "github.com/jet-ml/jet/internal/dual"

// Float is the constraint for scalar types dual numbers can carry.
type Float = dual.Float

// Number is a scalar dual number: value plus first derivative.
type Number[T Float] = dual.Number[T]

// Multi is a multivariate dual number: value plus a fixed-length vector of
// partial derivatives. Binary operations on mismatched dimensions panic
// with ErrDimensionMismatch.
type Multi[T Float] = dual.Multi[T]

// Sentinel panic values for dimension misuse.
var (
	ErrDimensionMismatch = dual.ErrDimensionMismatch
	ErrAxisRange         = dual.ErrAxisRange
)

// New creates a dual number with the given value and derivative.
func New[T Float](value, derivative T) Number[T] {
	return dual.New(value, derivative)
}

// Const creates a constant: derivative zero.
func Const[T Float](value T) Number[T] {
	return dual.Const(value)
}

// Var creates the differentiation-variable seed: derivative one.
func Var[T Float](value T) Number[T] {
	return dual.Var(value)
}

// NewMulti creates a multivariate dual number; the partials slice is copied.
func NewMulti[T Float](value T, partials []T) Multi[T] {
	return dual.NewMulti(value, partials)
}

// ConstMulti creates an n-dimensional constant: all partials zero.
func ConstMulti[T Float](value T, n int) Multi[T] {
	return dual.ConstMulti(value, n)
}

// Seed creates the one-hot seed for input variable axis of an n-variable
// function.
func Seed[T Float](value T, axis, n int) Multi[T] {
	return dual.Seed(value, axis, n)
}

// Lift turns a scalar function h and its derivative dh into a dual-number
// function via the chain rule. The pair is trusted as supplied: Lift cannot
// verify dh, and an inconsistent pair silently produces wrong derivatives.
func Lift[T Float](h, dh func(T) T) func(Number[T]) Number[T] {
	return dual.Lift(h, dh)
}

// LiftMulti is Lift for multivariate duals.
func LiftMulti[T Float](h, dh func(T) T) func(Multi[T]) Multi[T] {
	return dual.LiftMulti(h, dh)
}

// ScalarSub returns s - a.
func ScalarSub[T Float](s T, a Number[T]) Number[T] {
	return dual.ScalarSub(s, a)
}

// ScalarDiv returns s / a.
func ScalarDiv[T Float](s T, a Number[T]) Number[T] {
	return dual.ScalarDiv(s, a)
}

// ScalarSubMulti returns s - a.
func ScalarSubMulti[T Float](s T, a Multi[T]) Multi[T] {
	return dual.ScalarSubMulti(s, a)
}

// Lifted elementary functions, registered through the Lift protocol.

// Exp returns e^a.
func Exp[T Float](a Number[T]) Number[T] { return dual.Exp(a) }

// Log returns the natural logarithm of a.
func Log[T Float](a Number[T]) Number[T] { return dual.Log(a) }

// Sqrt returns the square root of a.
func Sqrt[T Float](a Number[T]) Number[T] { return dual.Sqrt(a) }

// Sin returns the sine of a.
func Sin[T Float](a Number[T]) Number[T] { return dual.Sin(a) }

// Cos returns the cosine of a.
func Cos[T Float](a Number[T]) Number[T] { return dual.Cos(a) }

// Tan returns the tangent of a.
func Tan[T Float](a Number[T]) Number[T] { return dual.Tan(a) }

// Tanh returns the hyperbolic tangent of a.
func Tanh[T Float](a Number[T]) Number[T] { return dual.Tanh(a) }

// ExpMulti returns e^a.
func ExpMulti[T Float](a Multi[T]) Multi[T] { return dual.ExpMulti(a) }

// LogMulti returns the natural logarithm of a.
func LogMulti[T Float](a Multi[T]) Multi[T] { return dual.LogMulti(a) }

// SqrtMulti returns the square root of a.
func SqrtMulti[T Float](a Multi[T]) Multi[T] { return dual.SqrtMulti(a) }

// SinMulti returns the sine of a.
func SinMulti[T Float](a Multi[T]) Multi[T] { return dual.SinMulti(a) }

// CosMulti returns the cosine of a.
func CosMulti[T Float](a Multi[T]) Multi[T] { return dual.CosMulti(a) }

// TanMulti returns the tangent of a.
func TanMulti[T Float](a Multi[T]) Multi[T] { return dual.TanMulti(a) }

// TanhMulti returns the hyperbolic tangent of a.
func TanhMulti[T Float](a Multi[T]) Multi[T] { return dual.TanhMulti(a) }
