package dual

// powN raises x to the n-th power by repeated squaring: O(log n)
// multiplications for any type with an associative Mul. Number and Multi
// both route their Pow through here, so integer powers stay consistent with
// the product rule by construction.
func powN[M interface{ Mul(M) M }](one, x M, n uint) M {
	acc := one
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return acc
}
