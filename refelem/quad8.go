// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refelem

import "gonum.org/v1/gonum/mat"

// Quad8 is the serendipity quadratic 8-node quadrilateral: 4 corners
// followed by the 4 edge midpoints (bottom, right, top, left).
type Quad8 struct{}

type quad8Node struct {
	xi, eta float64
	kind    int // 0 = corner, 1 = x-mid (xi==0), 2 = y-mid (eta==0)
}

var quad8Nodes = []quad8Node{
	{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, // corners
	{0, -1, 1}, // bottom mid (x-mid)
	{1, 0, 2},  // right mid (y-mid)
	{0, 1, 1},  // top mid (x-mid)
	{-1, 0, 2}, // left mid (y-mid)
}

func (Quad8) Kind() Kind           { return Quad8Kind }
func (Quad8) Dim() int             { return 2 }
func (Quad8) NumNodes() int        { return 8 }
func (Quad8) PExact() int          { return 5 }
func (Quad8) Quadrature() []IPoint { return tensorProduct2D(3) }

func (Quad8) LocalNodes() *mat.Dense {
	m := mat.NewDense(8, 2, nil)
	for i, n := range quad8Nodes {
		m.Set(i, 0, n.xi)
		m.Set(i, 1, n.eta)
	}
	return m
}

func (Quad8) ShapeFunctions(xi []float64) []float64 {
	ξ, η := xi[0], xi[1]
	N := make([]float64, 8)
	for i, n := range quad8Nodes {
		switch n.kind {
		case 0:
			N[i] = 0.25 * (1 + ξ*n.xi) * (1 + η*n.eta) * (ξ*n.xi + η*n.eta - 1)
		case 1:
			N[i] = 0.5 * (1 - ξ*ξ) * (1 + η*n.eta)
		case 2:
			N[i] = 0.5 * (1 - η*η) * (1 + ξ*n.xi)
		}
	}
	return N
}

func (Quad8) GradShapeFunctions(xi []float64) *mat.Dense {
	ξ, η := xi[0], xi[1]
	g := mat.NewDense(2, 8, nil)
	for i, n := range quad8Nodes {
		var dxi, deta float64
		switch n.kind {
		case 0:
			dxi = 0.25 * n.xi * (1 + η*n.eta) * (2*ξ*n.xi + η*n.eta)
			deta = 0.25 * n.eta * (1 + ξ*n.xi) * (ξ*n.xi + 2*η*n.eta)
		case 1:
			dxi = -ξ * (1 + η*n.eta)
			deta = 0.5 * (1 - ξ*ξ) * n.eta
		case 2:
			dxi = 0.5 * (1 - η*η) * n.xi
			deta = -η * (1 + ξ*n.xi)
		}
		g.Set(0, i, dxi)
		g.Set(1, i, deta)
	}
	return g
}
