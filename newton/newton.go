// Copyright 2026 Jet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package newton finds roots of square vector systems by Newton-Raphson
// iteration over forward-mode Jacobians.
//
// Example:
//
//	// Intersect the unit circle with the line y = x.
//	f := func(in []dual.Multi[float64]) []dual.Multi[float64] {
//	    x, y := in[0], in[1]
//	    return []dual.Multi[float64]{
//	        x.Mul(x).Add(y.Mul(y)).SubScalar(1),
//	        x.Sub(y),
//	    }
//	}
//	root, err := newton.Solve(f, []float64{3, 3}, newton.Config{})
//
// The default is a fixed budget of DefaultMaxSteps iterations with no
// convergence test; set Config.Tol to opt into residual-based early
// stopping. A singular Jacobian aborts the run with ErrSingular.
package newton

import "github.com/jet-ml/jet/internal/newton"

// DefaultMaxSteps is the iteration budget when Config leaves MaxSteps unset.
const DefaultMaxSteps = newton.DefaultMaxSteps

// ErrSingular reports a step whose Jacobian had no unique solution.
var ErrSingular = newton.ErrSingular

// Func is the vector function whose root is sought.
type Func = newton.Func

// Config holds solver configuration.
type Config = newton.Config

// Step performs a single Newton iteration from x.
func Step(f Func, x []float64) ([]float64, error) {
	return newton.Step(f, x)
}

// Solve iterates Newton steps from x0 and returns the final point.
func Solve(f Func, x0 []float64, cfg Config) ([]float64, error) {
	return newton.Solve(f, x0, cfg)
}

// Residual returns the max-norm of f at x.
func Residual(f Func, x []float64) float64 {
	return newton.Residual(f, x)
}
