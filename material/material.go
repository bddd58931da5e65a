// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the constitutive data: linear elastic (2D/3D,
// Voigt stiffness), linear scalar transport (isotropic or full symmetric PD
// tensor), and linear piezoelectric coupling of the two. All three are
// immutable once constructed; construction-time validation is exhaustive so
// that a solve built on a validated material cannot later fail with
// InvalidArgument (spec §7).
package material

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
)

// VoigtSize returns 3 for 2D and 6 for 3D, the size of the Voigt-notation
// stiffness matrix for that dimension.
func VoigtSize(dim int) int {
	if dim == 2 {
		return 3
	}
	return 6
}

// symmetric reports whether m is symmetric to the given absolute tolerance.
func symmetric(m *mat.Dense, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if absf(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// positiveDefinite reports whether the symmetric matrix m is positive
// definite, via Cholesky factorization.
func positiveDefinite(m *mat.Dense) bool {
	n, _ := m.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}
	var chol mat.Cholesky
	return chol.Factorize(sym)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func denseFrom(rows [][]float64) (*mat.Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, errs.InvalidArg("material: empty matrix")
	}
	m := len(rows[0])
	d := mat.NewDense(n, m, nil)
	for i, row := range rows {
		if len(row) != m {
			return nil, errs.InvalidArg("material: ragged matrix row %d has length %d, want %d", i, len(row), m)
		}
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d, nil
}
