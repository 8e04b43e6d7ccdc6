package dual

// Lift turns an ordinary scalar function h and its derivative dh into a
// dual-number function via the chain rule:
//
//	lift(h, h')(f) = (h(f), h'(f)·f')
//
// This is the extension protocol for elementary functions: any unary
// function becomes dual-compatible without touching the Number type itself.
//
// The pair is trusted as supplied. Lift cannot verify that dh really is the
// derivative of h; an inconsistent pair silently produces wrong derivatives.
func Lift[T Float](h, dh func(T) T) func(Number[T]) Number[T] {
	return func(a Number[T]) Number[T] {
		return Number[T]{
			value: h(a.value),
			deriv: dh(a.value) * a.deriv,
		}
	}
}

// LiftMulti is Lift for multivariate duals: the chain-rule factor h'(value)
// scales every partial-derivative axis.
func LiftMulti[T Float](h, dh func(T) T) func(Multi[T]) Multi[T] {
	return func(a Multi[T]) Multi[T] {
		scale := dh(a.value)
		p := make([]T, len(a.partials))
		for k := range p {
			p[k] = scale * a.partials[k]
		}
		return Multi[T]{value: h(a.value), partials: p}
	}
}

// Apply runs a lifted (h, dh) pair on a. Convenience for one-off functions:
//
//	y := x.Apply(h, dh)
func (a Number[T]) Apply(h, dh func(T) T) Number[T] {
	return Lift(h, dh)(a)
}

// Apply runs a lifted (h, dh) pair on a.
func (a Multi[T]) Apply(h, dh func(T) T) Multi[T] {
	return LiftMulti(h, dh)(a)
}
