// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refelem

import "gonum.org/v1/gonum/mat"

// Hex8 is the trilinear 8-node hexahedron.
type Hex8 struct{}

var hex8Nodes = [][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

func (Hex8) Kind() Kind           { return Hex8Kind }
func (Hex8) Dim() int             { return 3 }
func (Hex8) NumNodes() int        { return 8 }
func (Hex8) PExact() int          { return 3 }
func (Hex8) Quadrature() []IPoint { return tensorProduct3D(2) }

func (Hex8) LocalNodes() *mat.Dense {
	m := mat.NewDense(8, 3, nil)
	for i, n := range hex8Nodes {
		m.Set(i, 0, n[0])
		m.Set(i, 1, n[1])
		m.Set(i, 2, n[2])
	}
	return m
}

func (Hex8) ShapeFunctions(xi []float64) []float64 {
	ξ, η, ζ := xi[0], xi[1], xi[2]
	N := make([]float64, 8)
	for i, n := range hex8Nodes {
		N[i] = 0.125 * (1 + ξ*n[0]) * (1 + η*n[1]) * (1 + ζ*n[2])
	}
	return N
}

func (Hex8) GradShapeFunctions(xi []float64) *mat.Dense {
	ξ, η, ζ := xi[0], xi[1], xi[2]
	g := mat.NewDense(3, 8, nil)
	for i, n := range hex8Nodes {
		g.Set(0, i, 0.125*n[0]*(1+η*n[1])*(1+ζ*n[2]))
		g.Set(1, i, 0.125*n[1]*(1+ξ*n[0])*(1+ζ*n[2]))
		g.Set(2, i, 0.125*n[2]*(1+ξ*n[0])*(1+η*n[1]))
	}
	return g
}
