// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "gonum.org/v1/gonum/mat"

// BElastic2D builds the 3×(2K) strain-displacement matrix from the 2×K
// global shape-function gradient g = J⁻¹·∂N/∂ξ.
func BElastic2D(g *mat.Dense) *mat.Dense {
	_, k := g.Dims()
	B := mat.NewDense(3, 2*k, nil)
	for n := 0; n < k; n++ {
		gx, gy := g.At(0, n), g.At(1, n)
		B.Set(0, 2*n, gx)
		B.Set(1, 2*n+1, gy)
		B.Set(2, 2*n, gy)
		B.Set(2, 2*n+1, gx)
	}
	return B
}

// BElastic3D builds the 6×(3K) strain-displacement matrix (Voigt order
// 11,22,33,12,13,23) from the 3×K global shape-function gradient g.
func BElastic3D(g *mat.Dense) *mat.Dense {
	_, k := g.Dims()
	B := mat.NewDense(6, 3*k, nil)
	for n := 0; n < k; n++ {
		gx, gy, gz := g.At(0, n), g.At(1, n), g.At(2, n)
		cx, cy, cz := 3*n, 3*n+1, 3*n+2
		B.Set(0, cx, gx)
		B.Set(1, cy, gy)
		B.Set(2, cz, gz)
		B.Set(3, cx, gy)
		B.Set(3, cy, gx)
		B.Set(4, cx, gz)
		B.Set(4, cz, gx)
		B.Set(5, cy, gz)
		B.Set(5, cz, gy)
	}
	return B
}

// BTransport builds the D×K gradient matrix B = sign·g for the scalar
// transport physics. sign encodes the physical convention between the
// gradient field and the scalar potential (negative for electric-like,
// positive for mass/flow/thermal-like).
func BTransport(g *mat.Dense, sign float64) *mat.Dense {
	d, k := g.Dims()
	B := mat.NewDense(d, k, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < k; j++ {
			B.Set(i, j, sign*g.At(i, j))
		}
	}
	return B
}
