// Package dual implements forward-mode automatic differentiation.
//
// A dual number carries a function's value together with its exact first
// derivative through every arithmetic operation. Evaluating an ordinary
// numeric function at a seeded dual input therefore computes the derivative
// as a side effect of computing the value, with no finite-difference
// truncation error.
//
// Architecture:
//   - Number[T]: scalar dual number (value + derivative)
//   - Multi[T]: multivariate dual number (value + partial-derivative vector)
//   - Lift: chain-rule lifting of arbitrary elementary functions
//   - powN: repeated-squaring power shared by both number types
//
// All values are immutable; every operation returns a fresh result.
package dual

// Float is a constraint for the scalar types a dual number can carry.
type Float interface {
	~float32 | ~float64
}

// Number is a scalar dual number: a value paired with its first derivative.
// It represents the first-order Taylor polynomial (jet) of a function at a
// point. Two Numbers with equal value and derivative are interchangeable in
// every operation defined here.
//
// Example:
//
//	x := dual.Var(3.0)           // seed: value 3, derivative 1
//	y := x.Mul(x).AddScalar(1)   // y = x² + 1
//	y.Value()                    // 10
//	y.Derivative()               // 6 = d/dx (x²+1) at x=3
type Number[T Float] struct {
	value T
	deriv T
}

// New creates a dual number with the given value and derivative.
func New[T Float](value, derivative T) Number[T] {
	return Number[T]{value: value, deriv: derivative}
}

// Const creates a dual number representing a constant: derivative zero.
func Const[T Float](value T) Number[T] {
	return Number[T]{value: value}
}

// Var creates a seeded dual number for the differentiation variable:
// derivative one, the identity function's jet at value.
func Var[T Float](value T) Number[T] {
	return Number[T]{value: value, deriv: 1}
}

// Value returns the function value carried by a.
func (a Number[T]) Value() T {
	return a.value
}

// Derivative returns the first derivative carried by a.
func (a Number[T]) Derivative() T {
	return a.deriv
}

// Add returns a + b. Sum rule: derivatives add.
func (a Number[T]) Add(b Number[T]) Number[T] {
	return Number[T]{value: a.value + b.value, deriv: a.deriv + b.deriv}
}

// AddScalar returns a + s. Constants carry zero derivative; addition with a
// scalar commutes, so this covers scalar-left addition too.
func (a Number[T]) AddScalar(s T) Number[T] {
	return Number[T]{value: a.value + s, deriv: a.deriv}
}

// Sub returns a - b.
func (a Number[T]) Sub(b Number[T]) Number[T] {
	return Number[T]{value: a.value - b.value, deriv: a.deriv - b.deriv}
}

// SubScalar returns a - s.
func (a Number[T]) SubScalar(s T) Number[T] {
	return Number[T]{value: a.value - s, deriv: a.deriv}
}

// ScalarSub returns s - a.
func ScalarSub[T Float](s T, a Number[T]) Number[T] {
	return Number[T]{value: s - a.value, deriv: -a.deriv}
}

// Neg returns -a.
func (a Number[T]) Neg() Number[T] {
	return Number[T]{value: -a.value, deriv: -a.deriv}
}

// Mul returns a * b. Product rule:
//
//	(fg)' = f'g + fg'
func (a Number[T]) Mul(b Number[T]) Number[T] {
	return Number[T]{
		value: a.value * b.value,
		deriv: a.deriv*b.value + a.value*b.deriv,
	}
}

// MulScalar returns a * s; commutes, so this covers scalar-left too.
func (a Number[T]) MulScalar(s T) Number[T] {
	return Number[T]{value: a.value * s, deriv: a.deriv * s}
}

// Div returns a / b. Quotient rule:
//
//	(f/g)' = (f'g - fg') / g²
//
// Division by a zero-valued dual inherits the underlying float semantics
// (Inf/NaN), same as plain float division.
func (a Number[T]) Div(b Number[T]) Number[T] {
	return Number[T]{
		value: a.value / b.value,
		deriv: (a.deriv*b.value - a.value*b.deriv) / (b.value * b.value),
	}
}

// DivScalar returns a / s.
func (a Number[T]) DivScalar(s T) Number[T] {
	return Number[T]{value: a.value / s, deriv: a.deriv / s}
}

// ScalarDiv returns s / a.
func ScalarDiv[T Float](s T, a Number[T]) Number[T] {
	return Const(s).Div(a)
}

// Inv returns 1 / a.
func (a Number[T]) Inv() Number[T] {
	return Number[T]{
		value: 1 / a.value,
		deriv: -a.deriv / (a.value * a.value),
	}
}

// Pow returns a raised to the integer power n, computed by repeated squaring
// through dual multiplication. Deriving the power rule from the product rule
// by construction keeps the two consistent. n == 0 yields the constant 1;
// negative n goes through Inv.
func (a Number[T]) Pow(n int) Number[T] {
	if n < 0 {
		return powN(Const[T](1), a.Inv(), uint(-n))
	}
	return powN(Const[T](1), a, uint(n))
}
