// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refelem

import "math"

// IPoint is one integration (Gauss) point in reference coordinates, with its
// quadrature weight. Xi has length 2 for Quad4/Quad8 and 3 for Hex8/Hex20.
type IPoint struct {
	Xi []float64
	W  float64
}

// gauss1D returns the n-point Gauss-Legendre rule on [-1,1]. Only n=2 and
// n=3 are used by the element catalogue (pExact=3 and pExact=5).
func gauss1D(n int) (pts, wts []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []float64{-a, a}, []float64{1, 1}
	case 3:
		a := math.Sqrt(3.0 / 5.0)
		return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	}
	panic("gauss1D: unsupported order")
}

// tensorProduct2D builds the n×n tensor-product rule on [-1,1]^2.
func tensorProduct2D(n int) []IPoint {
	pts, wts := gauss1D(n)
	ips := make([]IPoint, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ips = append(ips, IPoint{
				Xi: []float64{pts[i], pts[j]},
				W:  wts[i] * wts[j],
			})
		}
	}
	return ips
}

// tensorProduct3D builds the n×n×n tensor-product rule on [-1,1]^3.
func tensorProduct3D(n int) []IPoint {
	pts, wts := gauss1D(n)
	ips := make([]IPoint, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				ips = append(ips, IPoint{
					Xi: []float64{pts[i], pts[j], pts[k]},
					W:  wts[i] * wts[j] * wts[k],
				})
			}
		}
	}
	return ips
}
