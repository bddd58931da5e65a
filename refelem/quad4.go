// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refelem

import "gonum.org/v1/gonum/mat"

// Quad4 is the bilinear 4-node quadrilateral.
type Quad4 struct{}

var quad4Nodes = [][2]float64{
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

func (Quad4) Kind() Kind     { return Quad4Kind }
func (Quad4) Dim() int       { return 2 }
func (Quad4) NumNodes() int  { return 4 }
func (Quad4) PExact() int    { return 3 }
func (Quad4) Quadrature() []IPoint { return tensorProduct2D(2) }

func (Quad4) LocalNodes() *mat.Dense {
	m := mat.NewDense(4, 2, nil)
	for i, n := range quad4Nodes {
		m.Set(i, 0, n[0])
		m.Set(i, 1, n[1])
	}
	return m
}

func (Quad4) ShapeFunctions(xi []float64) []float64 {
	ξ, η := xi[0], xi[1]
	N := make([]float64, 4)
	for i, n := range quad4Nodes {
		N[i] = 0.25 * (1 + ξ*n[0]) * (1 + η*n[1])
	}
	return N
}

func (Quad4) GradShapeFunctions(xi []float64) *mat.Dense {
	ξ, η := xi[0], xi[1]
	g := mat.NewDense(2, 4, nil)
	for i, n := range quad4Nodes {
		g.Set(0, i, 0.25*n[0]*(1+η*n[1]))
		g.Set(1, i, 0.25*n[1]*(1+ξ*n[0]))
	}
	return g
}
