package dual

import "math"

// Elementary functions registered through the Lift protocol. Each pairs a
// math kernel with its analytic derivative; the lifted versions below are
// the only dual-aware code — adding a new elementary function means adding
// one kernel pair here, nothing else.

func expKernel[T Float](x T) T  { return T(math.Exp(float64(x))) }
func logKernel[T Float](x T) T  { return T(math.Log(float64(x))) }
func invKernel[T Float](x T) T  { return 1 / x }
func sqrtKernel[T Float](x T) T { return T(math.Sqrt(float64(x))) }
func dsqrtKernel[T Float](x T) T {
	return 1 / (2 * T(math.Sqrt(float64(x))))
}
func sinKernel[T Float](x T) T    { return T(math.Sin(float64(x))) }
func cosKernel[T Float](x T) T    { return T(math.Cos(float64(x))) }
func negSinKernel[T Float](x T) T { return -T(math.Sin(float64(x))) }
func tanKernel[T Float](x T) T    { return T(math.Tan(float64(x))) }
func dtanKernel[T Float](x T) T {
	c := T(math.Cos(float64(x)))
	return 1 / (c * c)
}
func tanhKernel[T Float](x T) T { return T(math.Tanh(float64(x))) }
func dtanhKernel[T Float](x T) T {
	th := T(math.Tanh(float64(x)))
	return 1 - th*th
}

// Exp returns e^a.
func Exp[T Float](a Number[T]) Number[T] {
	return a.Apply(expKernel[T], expKernel[T])
}

// Log returns the natural logarithm of a.
func Log[T Float](a Number[T]) Number[T] {
	return a.Apply(logKernel[T], invKernel[T])
}

// Sqrt returns the square root of a.
func Sqrt[T Float](a Number[T]) Number[T] {
	return a.Apply(sqrtKernel[T], dsqrtKernel[T])
}

// Sin returns the sine of a.
func Sin[T Float](a Number[T]) Number[T] {
	return a.Apply(sinKernel[T], cosKernel[T])
}

// Cos returns the cosine of a.
func Cos[T Float](a Number[T]) Number[T] {
	return a.Apply(cosKernel[T], negSinKernel[T])
}

// Tan returns the tangent of a.
func Tan[T Float](a Number[T]) Number[T] {
	return a.Apply(tanKernel[T], dtanKernel[T])
}

// Tanh returns the hyperbolic tangent of a.
func Tanh[T Float](a Number[T]) Number[T] {
	return a.Apply(tanhKernel[T], dtanhKernel[T])
}

// ExpMulti returns e^a.
func ExpMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(expKernel[T], expKernel[T])
}

// LogMulti returns the natural logarithm of a.
func LogMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(logKernel[T], invKernel[T])
}

// SqrtMulti returns the square root of a.
func SqrtMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(sqrtKernel[T], dsqrtKernel[T])
}

// SinMulti returns the sine of a.
func SinMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(sinKernel[T], cosKernel[T])
}

// CosMulti returns the cosine of a.
func CosMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(cosKernel[T], negSinKernel[T])
}

// TanMulti returns the tangent of a.
func TanMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(tanKernel[T], dtanKernel[T])
}

// TanhMulti returns the hyperbolic tangent of a.
func TanhMulti[T Float](a Multi[T]) Multi[T] {
	return a.Apply(tanhKernel[T], dtanhKernel[T])
}
