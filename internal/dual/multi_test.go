package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOneHot(t *testing.T) {
	s := Seed(7.0, 1, 3)
	assert.Equal(t, 7.0, s.Value())
	assert.Equal(t, []float64{0, 1, 0}, s.Partials())
	assert.Equal(t, 3, s.Dim())
}

func TestSeedAxisRange(t *testing.T) {
	assert.PanicsWithValue(t, ErrAxisRange, func() { Seed(1.0, 3, 3) })
	assert.PanicsWithValue(t, ErrAxisRange, func() { Seed(1.0, -1, 3) })
}

// TestMultiAdd checks partials add elementwise.
func TestMultiAdd(t *testing.T) {
	a := NewMulti(1.0, []float64{1, 2})
	b := NewMulti(2.0, []float64{3, 4})

	sum := a.Add(b)
	assert.Equal(t, 3.0, sum.Value())
	assert.Equal(t, []float64{4, 6}, sum.Partials())
}

// TestMultiMul checks the product rule holds independently per axis.
func TestMultiMul(t *testing.T) {
	a := NewMulti(2.0, []float64{1, 0})
	b := NewMulti(3.0, []float64{0, 1})

	prod := a.Mul(b)
	assert.Equal(t, 6.0, prod.Value())
	// partials[k] = a'ₖ·b + a·b'ₖ
	assert.Equal(t, []float64{3, 2}, prod.Partials())
}

func TestMultiSubNeg(t *testing.T) {
	a := NewMulti(5.0, []float64{1, 2})
	b := NewMulti(2.0, []float64{4, 1})

	diff := a.Sub(b)
	assert.Equal(t, 3.0, diff.Value())
	assert.Equal(t, []float64{-3, 1}, diff.Partials())

	neg := a.Neg()
	assert.Equal(t, -5.0, neg.Value())
	assert.Equal(t, []float64{-1, -2}, neg.Partials())
}

// TestMultiScalarOps checks scalar combinations broadcast elementwise.
func TestMultiScalarOps(t *testing.T) {
	a := NewMulti(4.0, []float64{2, 6})

	add := a.AddScalar(1)
	assert.Equal(t, 5.0, add.Value())
	assert.Equal(t, []float64{2, 6}, add.Partials())

	sub := a.SubScalar(1)
	assert.Equal(t, 3.0, sub.Value())
	assert.Equal(t, []float64{2, 6}, sub.Partials())

	rsub := ScalarSubMulti(10.0, a)
	assert.Equal(t, 6.0, rsub.Value())
	assert.Equal(t, []float64{-2, -6}, rsub.Partials())

	mul := a.MulScalar(0.5)
	assert.Equal(t, 2.0, mul.Value())
	assert.Equal(t, []float64{1, 3}, mul.Partials())

	div := a.DivScalar(2)
	assert.Equal(t, 2.0, div.Value())
	assert.Equal(t, []float64{1, 3}, div.Partials())
}

func TestMultiDivInv(t *testing.T) {
	a := NewMulti(6.0, []float64{2})
	b := NewMulti(3.0, []float64{1})

	q := a.Div(b)
	assert.Equal(t, 2.0, q.Value())
	// (2·3 - 6·1)/9 = 0
	assert.Equal(t, []float64{0}, q.Partials())

	inv := b.Inv()
	assert.InDelta(t, 1.0/3.0, inv.Value(), 1e-15)
	assert.InDelta(t, -1.0/9.0, inv.Partials()[0], 1e-15)
}

// TestMultiPow checks pow matches the analytic power rule per axis.
func TestMultiPow(t *testing.T) {
	a := NewMulti(2.0, []float64{1, 3})

	got := a.Pow(3)
	assert.Equal(t, 8.0, got.Value())
	// 3·x²·∂ₖx at x=2
	assert.Equal(t, []float64{12, 36}, got.Partials())

	one := a.Pow(0)
	assert.Equal(t, 1.0, one.Value())
	assert.Equal(t, []float64{0, 0}, one.Partials())

	neg := a.Pow(-1)
	assert.InDelta(t, 0.5, neg.Value(), 1e-15)
	assert.InDelta(t, -0.25, neg.Partials()[0], 1e-15)
	assert.InDelta(t, -0.75, neg.Partials()[1], 1e-15)
}

// TestDimensionMismatch checks that combining different dimensions always
// panics with the sentinel, for every binary operation.
func TestDimensionMismatch(t *testing.T) {
	a := NewMulti(1.0, []float64{1, 0})
	b := NewMulti(1.0, []float64{0, 1, 0})

	ops := map[string]func(){
		"Add": func() { a.Add(b) },
		"Sub": func() { a.Sub(b) },
		"Mul": func() { a.Mul(b) },
		"Div": func() { a.Div(b) },
	}
	for name, op := range ops {
		assert.PanicsWithValue(t, ErrDimensionMismatch, op, "%s must reject mismatched dimensions", name)
	}
}

// TestMultiImmutable checks Multi values cannot be mutated through the
// constructor slice or the Partials accessor.
func TestMultiImmutable(t *testing.T) {
	src := []float64{1, 2}
	a := NewMulti(3.0, src)

	src[0] = 99
	require.Equal(t, []float64{1, 2}, a.Partials())

	p := a.Partials()
	p[1] = 99
	require.Equal(t, []float64{1, 2}, a.Partials())
}
