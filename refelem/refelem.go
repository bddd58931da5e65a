// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refelem implements the reference (isoparametric) elements used by
// the homogenization kernels: Quad4, Quad8, Hex8 and Hex20. Each element
// exposes its reference-domain node coordinates, shape functions and their
// gradients, and a Gauss-Legendre quadrature rule of sufficient order.
//
// The source uses compile-time element types as generic parameters; here the
// four kinds are concrete types implementing a common Element interface —
// the public API exposes exactly these four, not a generic trait.
package refelem

import "gonum.org/v1/gonum/mat"

// Kind names one of the four supported element catalogue entries.
type Kind int

const (
	Quad4Kind Kind = iota
	Quad8Kind
	Hex8Kind
	Hex20Kind
)

// String names a Kind.
func (k Kind) String() string {
	switch k {
	case Quad4Kind:
		return "Quad4"
	case Quad8Kind:
		return "Quad8"
	case Hex8Kind:
		return "Hex8"
	case Hex20Kind:
		return "Hex20"
	}
	return "Unknown"
}

// Element is implemented by each of the four reference elements.
type Element interface {
	Kind() Kind
	Dim() int
	NumNodes() int
	// LocalNodes returns the NumNodes()×Dim() matrix of reference-node
	// coordinates, in the canonical local ordering (corners first, then
	// edge midpoints for Quad8/Hex20).
	LocalNodes() *mat.Dense
	// ShapeFunctions returns N(ξ), length NumNodes().
	ShapeFunctions(xi []float64) []float64
	// GradShapeFunctions returns ∂Nᵢ/∂ξⱼ as a Dim()×NumNodes() matrix.
	GradShapeFunctions(xi []float64) *mat.Dense
	// Quadrature returns the element's Gauss-Legendre integration rule.
	Quadrature() []IPoint
	// PExact is the total polynomial degree the quadrature rule integrates
	// exactly (3 for Quad4/Hex8, 5 for Quad8/Hex20).
	PExact() int
}

// New returns the reference element for the given kind.
func New(kind Kind) Element {
	switch kind {
	case Quad4Kind:
		return Quad4{}
	case Quad8Kind:
		return Quad8{}
	case Hex8Kind:
		return Hex8{}
	case Hex20Kind:
		return Hex20{}
	}
	panic("refelem.New: unknown kind")
}

// Jacobian computes J = ∂N/∂ξ · nodes, its determinant, and its inverse,
// given the Dim()×NumNodes() gradient matrix and the NumNodes()×Dim() node
// coordinate matrix. This is the one quantity the whole element catalogue
// shares regardless of kind.
func Jacobian(grad *mat.Dense, nodes *mat.Dense) (J, Jinv *mat.Dense, detJ float64) {
	d, _ := grad.Dims()
	J = mat.NewDense(d, d, nil)
	J.Mul(grad, nodes)
	Jinv = mat.NewDense(d, d, nil)
	switch d {
	case 2:
		a, b := J.At(0, 0), J.At(0, 1)
		c, e := J.At(1, 0), J.At(1, 1)
		detJ = a*e - b*c
		if detJ == 0 {
			return J, Jinv, detJ
		}
		inv := 1 / detJ
		Jinv.Set(0, 0, e*inv)
		Jinv.Set(0, 1, -b*inv)
		Jinv.Set(1, 0, -c*inv)
		Jinv.Set(1, 1, a*inv)
	case 3:
		a00, a01, a02 := J.At(0, 0), J.At(0, 1), J.At(0, 2)
		a10, a11, a12 := J.At(1, 0), J.At(1, 1), J.At(1, 2)
		a20, a21, a22 := J.At(2, 0), J.At(2, 1), J.At(2, 2)
		c00 := a11*a22 - a12*a21
		c01 := -(a10*a22 - a12*a20)
		c02 := a10*a21 - a11*a20
		c10 := -(a01*a22 - a02*a21)
		c11 := a00*a22 - a02*a20
		c12 := -(a00*a21 - a01*a20)
		c20 := a01*a12 - a02*a11
		c21 := -(a00*a12 - a02*a10)
		c22 := a00*a11 - a01*a10
		detJ = a00*c00 + a01*c01 + a02*c02
		if detJ == 0 {
			return J, Jinv, detJ
		}
		inv := 1 / detJ
		// inverse = (1/det) * adjugate = (1/det) * cofactorᵀ
		Jinv.Set(0, 0, c00*inv)
		Jinv.Set(0, 1, c10*inv)
		Jinv.Set(0, 2, c20*inv)
		Jinv.Set(1, 0, c01*inv)
		Jinv.Set(1, 1, c11*inv)
		Jinv.Set(1, 2, c21*inv)
		Jinv.Set(2, 0, c02*inv)
		Jinv.Set(2, 1, c12*inv)
		Jinv.Set(2, 2, c22*inv)
	default:
		panic("refelem.Jacobian: only 2D and 3D supported")
	}
	return J, Jinv, detJ
}

// GlobalGrad returns g = Jinv · ∂N/∂ξ (Dim()×NumNodes()), the gradient of
// the shape functions with respect to physical coordinates.
func GlobalGrad(Jinv, grad *mat.Dense) *mat.Dense {
	d, n := grad.Dims()
	g := mat.NewDense(d, n, nil)
	g.Mul(Jinv, grad)
	return g
}

// Measure integrates |detJ| over the reference element using its own
// quadrature rule, transformed through the given nodes.
func Measure(e Element, nodes *mat.Dense) float64 {
	m := 0.0
	for _, ip := range e.Quadrature() {
		grad := e.GradShapeFunctions(ip.Xi)
		_, _, detJ := Jacobian(grad, nodes)
		m += ip.W * absf(detJ)
	}
	return m
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
