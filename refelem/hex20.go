// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refelem

import "gonum.org/v1/gonum/mat"

// Hex20 is the serendipity quadratic 20-node hexahedron: 8 corners followed
// by the 12 edge midpoints, grouped x-mid edges, y-mid edges, z-mid edges.
type Hex20 struct{}

type hex20Node struct {
	xi, eta, zeta float64
	kind          int // 0 = corner, 1 = xi free, 2 = eta free, 3 = zeta free
}

var hex20Nodes = buildHex20Nodes()

func buildHex20Nodes() []hex20Node {
	ns := make([]hex20Node, 0, 20)
	for _, n := range hex8Nodes {
		ns = append(ns, hex20Node{n[0], n[1], n[2], 0})
	}
	combos := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, c := range combos { // xi-free: (eta,zeta)
		ns = append(ns, hex20Node{0, c[0], c[1], 1})
	}
	for _, c := range combos { // eta-free: (xi,zeta)
		ns = append(ns, hex20Node{c[0], 0, c[1], 2})
	}
	for _, c := range combos { // zeta-free: (xi,eta)
		ns = append(ns, hex20Node{c[0], c[1], 0, 3})
	}
	return ns
}

func (Hex20) Kind() Kind           { return Hex20Kind }
func (Hex20) Dim() int             { return 3 }
func (Hex20) NumNodes() int        { return 20 }
func (Hex20) PExact() int          { return 5 }
func (Hex20) Quadrature() []IPoint { return tensorProduct3D(3) }

func (Hex20) LocalNodes() *mat.Dense {
	m := mat.NewDense(20, 3, nil)
	for i, n := range hex20Nodes {
		m.Set(i, 0, n.xi)
		m.Set(i, 1, n.eta)
		m.Set(i, 2, n.zeta)
	}
	return m
}

func (Hex20) ShapeFunctions(xi []float64) []float64 {
	ξ, η, ζ := xi[0], xi[1], xi[2]
	N := make([]float64, 20)
	for i, n := range hex20Nodes {
		A := 1 + ξ*n.xi
		B := 1 + η*n.eta
		C := 1 + ζ*n.zeta
		switch n.kind {
		case 0:
			N[i] = 0.125 * A * B * C * (ξ*n.xi + η*n.eta + ζ*n.zeta - 2)
		case 1:
			N[i] = 0.25 * (1 - ξ*ξ) * B * C
		case 2:
			N[i] = 0.25 * A * (1 - η*η) * C
		case 3:
			N[i] = 0.25 * A * B * (1 - ζ*ζ)
		}
	}
	return N
}

func (Hex20) GradShapeFunctions(xi []float64) *mat.Dense {
	ξ, η, ζ := xi[0], xi[1], xi[2]
	g := mat.NewDense(3, 20, nil)
	for i, n := range hex20Nodes {
		A := 1 + ξ*n.xi
		B := 1 + η*n.eta
		C := 1 + ζ*n.zeta
		var dxi, deta, dzeta float64
		switch n.kind {
		case 0:
			dxi = 0.125 * n.xi * B * C * (2*ξ*n.xi + η*n.eta + ζ*n.zeta - 1)
			deta = 0.125 * n.eta * A * C * (ξ*n.xi + 2*η*n.eta + ζ*n.zeta - 1)
			dzeta = 0.125 * n.zeta * A * B * (ξ*n.xi + η*n.eta + 2*ζ*n.zeta - 1)
		case 1:
			dxi = -0.5 * ξ * B * C
			deta = 0.25 * (1 - ξ*ξ) * n.eta * C
			dzeta = 0.25 * (1 - ξ*ξ) * B * n.zeta
		case 2:
			dxi = 0.25 * n.xi * (1 - η*η) * C
			deta = -0.5 * η * A * C
			dzeta = 0.25 * A * (1 - η*η) * n.zeta
		case 3:
			dxi = 0.25 * n.xi * B * (1 - ζ*ζ)
			deta = 0.25 * A * n.eta * (1 - ζ*ζ)
			dzeta = -0.5 * ζ * A * B
		}
		g.Set(0, i, dxi)
		g.Set(1, i, deta)
		g.Set(2, i, dzeta)
	}
	return g
}
