// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the regular tiling of one reference element over
// a rectangular unit cell: node coordinates, element-to-node connectivity in
// both the standard (every geometric node distinct) and periodic (lattice
// translations identified) views, and per-element density storage.
//
// The CRTP grid base of the source collapses here to a single concrete Grid
// carrying a refelem.Kind tag; §3 of the specification is the binding
// contract, not any particular inheritance shape.
package grid

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/refelem"
)

// NumericalZero is the density floor ε: densities are clamped up to this
// value to prevent singular element matrices at ρ=0.
const NumericalZero = 1e-9

// Grid is a regular tiling of one element kind over a rectangular unit cell.
// Resolution, size and kind are fixed after construction; only the density
// array is mutable.
type Grid struct {
	kind refelem.Kind
	dim  int
	res  []int     // (nx,ny[,nz])
	size []float64 // (lx,ly[,lz])
	elem refelem.Element

	density []float64 // row-major, x fastest, length NumElements()

	numStd     int
	numPer     int
	nodeCoords [][]float64 // [numStd][dim]
	stdElems   [][]int     // [numElements][K]
	perElems   [][]int     // [numElements][K]
}

// New builds a grid of the given kind, resolution and physical size.
// Densities are initialized to 1. resolution and size must have length 2 for
// Quad4/Quad8 and length 3 for Hex8/Hex20.
func New(kind refelem.Kind, resolution []int, size []float64) (*Grid, error) {
	elem := refelem.New(kind)
	dim := elem.Dim()
	if len(resolution) != dim || len(size) != dim {
		return nil, errs.InvalidArg("grid: resolution and size must have length %d for %v, got %d and %d", dim, kind, len(resolution), len(size))
	}
	for i, n := range resolution {
		if n <= 0 {
			return nil, errs.InvalidArg("grid: resolution[%d]=%d must be positive", i, n)
		}
	}
	for i, s := range size {
		if s <= 0 {
			return nil, errs.InvalidArg("grid: size[%d]=%g must be positive", i, s)
		}
	}
	g := &Grid{
		kind: kind,
		dim:  dim,
		res:  append([]int(nil), resolution...),
		size: append([]float64(nil), size...),
		elem: elem,
	}
	switch kind {
	case refelem.Quad4Kind:
		g.buildQuad4()
	case refelem.Quad8Kind:
		g.buildQuad8()
	case refelem.Hex8Kind:
		g.buildHex8()
	case refelem.Hex20Kind:
		g.buildHex20()
	}
	g.density = make([]float64, g.NumElements())
	for i := range g.density {
		g.density[i] = 1
	}
	return g, nil
}

// Kind returns the element kind.
func (g *Grid) Kind() refelem.Kind { return g.kind }

// Dim returns the spatial dimension (2 or 3).
func (g *Grid) Dim() int { return g.dim }

// Resolution returns (nx,ny[,nz]).
func (g *Grid) Resolution() []int { return append([]int(nil), g.res...) }

// Size returns (lx,ly[,lz]).
func (g *Grid) Size() []float64 { return append([]float64(nil), g.size...) }

// RefElement returns the shared reference element.
func (g *Grid) RefElement() refelem.Element { return g.elem }

// NumElements returns nx·ny[·nz].
func (g *Grid) NumElements() int {
	n := 1
	for _, r := range g.res {
		n *= r
	}
	return n
}

// NumNodes returns the number of distinct geometric (standard-view) nodes.
func (g *Grid) NumNodes() int { return g.numStd }

// NumPeriodicNodes returns the number of periodic-view nodes.
func (g *Grid) NumPeriodicNodes() int { return g.numPer }

// Node returns the D-vector coordinates of standard node i.
func (g *Grid) Node(i int) ([]float64, error) {
	if i < 0 || i >= g.numStd {
		return nil, errs.OutOfRng("grid: node index %d out of range [0,%d)", i, g.numStd)
	}
	return append([]float64(nil), g.nodeCoords[i]...), nil
}

// Element returns the K standard node indices of element i, in local order.
func (g *Grid) Element(i int) ([]int, error) {
	if i < 0 || i >= len(g.stdElems) {
		return nil, errs.OutOfRng("grid: element index %d out of range [0,%d)", i, len(g.stdElems))
	}
	return append([]int(nil), g.stdElems[i]...), nil
}

// PeriodicElement returns the K periodic node indices of element i, in the
// same local order as Element.
func (g *Grid) PeriodicElement(i int) ([]int, error) {
	if i < 0 || i >= len(g.perElems) {
		return nil, errs.OutOfRng("grid: element index %d out of range [0,%d)", i, len(g.perElems))
	}
	return append([]int(nil), g.perElems[i]...), nil
}

// ElementNodes returns the K×D matrix of node coordinates for element i.
func (g *Grid) ElementNodes(i int) (*mat.Dense, error) {
	std, err := g.Element(i)
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(len(std), g.dim, nil)
	for r, nd := range std {
		for c := 0; c < g.dim; c++ {
			m.Set(r, c, g.nodeCoords[nd][c])
		}
	}
	return m, nil
}

// Measure returns the cell's total area/volume: the reference measure of
// element 0 times NumElements(), valid because all elements are congruent.
func (g *Grid) Measure() float64 {
	nodes, _ := g.ElementNodes(0)
	return refelem.Measure(g.elem, nodes) * float64(g.NumElements())
}

// Density returns the density of element i.
func (g *Grid) Density(i int) (float64, error) {
	if i < 0 || i >= len(g.density) {
		return 0, errs.OutOfRng("grid: element index %d out of range [0,%d)", i, len(g.density))
	}
	return g.density[i], nil
}

// Densities returns a copy of the full density array.
func (g *Grid) Densities() []float64 { return append([]float64(nil), g.density...) }

// SetDensity sets the density of element i, clamping values below
// NumericalZero up to the floor. ρ must lie within [0,1].
func (g *Grid) SetDensity(i int, rho float64) error {
	if i < 0 || i >= len(g.density) {
		return errs.OutOfRng("grid: element index %d out of range [0,%d)", i, len(g.density))
	}
	if rho < 0 || rho > 1 {
		return errs.InvalidArg("grid: density %g out of range [0,1]", rho)
	}
	if rho < NumericalZero {
		rho = NumericalZero
	}
	g.density[i] = rho
	return nil
}

// Translate circularly shifts the density array by shift elements along
// each axis, equivalent to relabeling the lattice origin.
func (g *Grid) Translate(shift []int) error {
	if len(shift) != g.dim {
		return errs.InvalidArg("grid: shift must have length %d, got %d", g.dim, len(shift))
	}
	out := make([]float64, len(g.density))
	for idx := range g.density {
		coord := g.elementIndexToCoord(idx)
		for d := range coord {
			coord[d] = mod(coord[d]+shift[d], g.res[d])
		}
		out[g.coordToElementIndex(coord)] = g.density[idx]
	}
	g.density = out
	return nil
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func (g *Grid) elementIndexToCoord(i int) []int {
	coord := make([]int, g.dim)
	coord[0] = i % g.res[0]
	if g.dim == 2 {
		coord[1] = i / g.res[0]
	} else {
		coord[1] = (i / g.res[0]) % g.res[1]
		coord[2] = i / (g.res[0] * g.res[1])
	}
	return coord
}

func (g *Grid) coordToElementIndex(coord []int) int {
	if g.dim == 2 {
		return coord[1]*g.res[0] + coord[0]
	}
	return coord[2]*g.res[0]*g.res[1] + coord[1]*g.res[0] + coord[0]
}
