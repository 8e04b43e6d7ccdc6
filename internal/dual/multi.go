package dual

// Multi is a multivariate dual number: a value paired with a fixed-length
// vector of partial derivatives, one per input variable. Each axis is an
// independent directional derivative, so a single evaluation of an
// n-variable function at one-hot seeded inputs yields every partial
// derivative at once.
//
// Multi values are immutable: operations allocate fresh results and
// Partials returns a copy of the partials vector.
//
// Binary operations require operands of equal dimension. Combining
// mismatched dimensions panics with ErrDimensionMismatch; partials are never
// truncated or zero-padded.
type Multi[T Float] struct {
	value    T
	partials []T
}

// NewMulti creates a multivariate dual number with the given value and
// partial derivatives. The partials slice is copied.
func NewMulti[T Float](value T, partials []T) Multi[T] {
	p := make([]T, len(partials))
	copy(p, partials)
	return Multi[T]{value: value, partials: p}
}

// ConstMulti creates an n-dimensional constant: all partials zero.
func ConstMulti[T Float](value T, n int) Multi[T] {
	return Multi[T]{value: value, partials: make([]T, n)}
}

// Seed creates the one-hot seed for input variable axis of an n-variable
// function: partials[axis] = 1, all others 0. It represents the identity
// function along that axis. Panics if axis is out of range.
func Seed[T Float](value T, axis, n int) Multi[T] {
	if axis < 0 || axis >= n {
		panic(ErrAxisRange)
	}
	p := make([]T, n)
	p[axis] = 1
	return Multi[T]{value: value, partials: p}
}

// Value returns the function value carried by a.
func (a Multi[T]) Value() T {
	return a.value
}

// Partials returns a copy of the partial-derivative vector.
func (a Multi[T]) Partials() []T {
	p := make([]T, len(a.partials))
	copy(p, a.partials)
	return p
}

// Dim returns the number of partial-derivative axes.
func (a Multi[T]) Dim() int {
	return len(a.partials)
}

func (a Multi[T]) sameDim(b Multi[T]) {
	if len(a.partials) != len(b.partials) {
		panic(ErrDimensionMismatch)
	}
}

// Add returns a + b; partials add elementwise.
// Panics with ErrDimensionMismatch if dimensions differ.
func (a Multi[T]) Add(b Multi[T]) Multi[T] {
	a.sameDim(b)
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = a.partials[k] + b.partials[k]
	}
	return Multi[T]{value: a.value + b.value, partials: p}
}

// AddScalar returns a + s; commutes, so this covers scalar-left too.
func (a Multi[T]) AddScalar(s T) Multi[T] {
	return Multi[T]{value: a.value + s, partials: a.Partials()}
}

// Sub returns a - b.
// Panics with ErrDimensionMismatch if dimensions differ.
func (a Multi[T]) Sub(b Multi[T]) Multi[T] {
	a.sameDim(b)
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = a.partials[k] - b.partials[k]
	}
	return Multi[T]{value: a.value - b.value, partials: p}
}

// SubScalar returns a - s.
func (a Multi[T]) SubScalar(s T) Multi[T] {
	return Multi[T]{value: a.value - s, partials: a.Partials()}
}

// ScalarSubMulti returns s - a.
func ScalarSubMulti[T Float](s T, a Multi[T]) Multi[T] {
	return a.Neg().AddScalar(s)
}

// Neg returns -a.
func (a Multi[T]) Neg() Multi[T] {
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = -a.partials[k]
	}
	return Multi[T]{value: -a.value, partials: p}
}

// Mul returns a * b. The product rule applies independently per axis:
//
//	partials[k] = a'ₖ·b + a·b'ₖ
//
// Panics with ErrDimensionMismatch if dimensions differ.
func (a Multi[T]) Mul(b Multi[T]) Multi[T] {
	a.sameDim(b)
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = a.partials[k]*b.value + a.value*b.partials[k]
	}
	return Multi[T]{value: a.value * b.value, partials: p}
}

// MulScalar returns a * s; commutes, so this covers scalar-left too.
func (a Multi[T]) MulScalar(s T) Multi[T] {
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = a.partials[k] * s
	}
	return Multi[T]{value: a.value * s, partials: p}
}

// Div returns a / b via the quotient rule per axis.
// Panics with ErrDimensionMismatch if dimensions differ.
func (a Multi[T]) Div(b Multi[T]) Multi[T] {
	a.sameDim(b)
	bb := b.value * b.value
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = (a.partials[k]*b.value - a.value*b.partials[k]) / bb
	}
	return Multi[T]{value: a.value / b.value, partials: p}
}

// DivScalar returns a / s.
func (a Multi[T]) DivScalar(s T) Multi[T] {
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = a.partials[k] / s
	}
	return Multi[T]{value: a.value / s, partials: p}
}

// Inv returns 1 / a.
func (a Multi[T]) Inv() Multi[T] {
	aa := a.value * a.value
	p := make([]T, len(a.partials))
	for k := range p {
		p[k] = -a.partials[k] / aa
	}
	return Multi[T]{value: 1 / a.value, partials: p}
}

// Pow returns a raised to the integer power n, by the same repeated-squaring
// routine Number uses. n == 0 yields the constant 1 of matching dimension;
// negative n goes through Inv.
func (a Multi[T]) Pow(n int) Multi[T] {
	one := ConstMulti[T](1, len(a.partials))
	if n < 0 {
		return powN(one, a.Inv(), uint(-n))
	}
	return powN(one, a, uint(n))
}
