// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg implements a self-contained preconditioned conjugate
// gradient loop over an abstract "operator × vector" callable. It does
// not depend on any sparse- or dense-matrix type: Apply and Precondition
// are plain functions over []float64, so any matrix-free operator can
// drive it. The AXPY-style vector arithmetic uses the teacher's own
// gosl/la vector helpers (la.VecAdd, la.VecAdd2, la.VecCopy, la.VecFill,
// la.VecNorm), the same primitives ele/solid/beam.go and mdl/solid/driver.go
// use for their own vector bookkeeping; the inner-product reductions use
// gonum/floats.Dot, since no dot-product helper appears anywhere in the
// retrieved gosl/la call sites (see DESIGN.md).
package pcg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/homogen/errs"
)

// Apply computes y = K·x.
type Apply func(x, y []float64)

// Precondition computes y = M⁻¹·r for a preconditioner M.
type Precondition func(r, y []float64)

// Options configures the CG iteration cap and convergence tolerance.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns maxIterations=1000, tolerance=1e-6.
func DefaultOptions() Options {
	return Options{MaxIterations: 1000, Tolerance: 1e-6}
}

// Solve finds x such that K·x = b to within a relative residual of
// opts.Tolerance, using at most opts.MaxIterations iterations. x0, if
// non-nil, seeds the initial guess (and is overwritten with the
// solution); otherwise the iteration starts from the zero vector.
// Returns errs.Solver if the iteration cap is reached without
// convergence, or if a numerical breakdown (zero direction-curvature
// product) is detected.
func Solve(apply Apply, precondition Precondition, b []float64, x0 []float64, opts Options) ([]float64, error) {
	n := len(b)
	x := x0
	if x == nil {
		x = make([]float64, n)
	}

	bNorm := la.VecNorm(b)
	if bNorm == 0 {
		la.VecFill(x, 0)
		return x, nil
	}

	r := make([]float64, n)
	Ax := make([]float64, n)
	apply(x, Ax)
	la.VecAdd2(r, 1, b, -1, Ax)

	z := make([]float64, n)
	precondition(r, z)
	p := make([]float64, n)
	la.VecCopy(p, 1, z)

	rz := floats.Dot(r, z)
	Ap := make([]float64, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		resNorm := la.VecNorm(r)
		if resNorm/bNorm <= opts.Tolerance {
			return x, nil
		}

		apply(p, Ap)
		pAp := floats.Dot(p, Ap)
		if pAp == 0 {
			return nil, errs.Solver("pcg: numerical breakdown, p^T A p = 0 at iteration %d", iter)
		}
		alpha := rz / pAp

		la.VecAdd(x, alpha, p)
		la.VecAdd(r, -alpha, Ap)

		resNorm = la.VecNorm(r)
		if resNorm/bNorm <= opts.Tolerance {
			return x, nil
		}

		precondition(r, z)
		rzNew := floats.Dot(r, z)
		beta := rzNew / rz
		la.VecAdd2(p, 1, z, beta, p)
		rz = rzNew
	}

	return nil, errs.Solver("pcg: did not converge within %d iterations", opts.MaxIterations)
}
