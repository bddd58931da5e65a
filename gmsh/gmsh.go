// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmsh writes a unit cell's grid, densities, and nodal fields in
// the ASCII Gmsh mesh format, for downstream visualization only; nothing
// in the homogenization core reads this format back.
package gmsh

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/refelem"
)

// elementType is the Gmsh element-type identifier per element kind.
func elementType(k refelem.Kind) (int, error) {
	switch k {
	case refelem.Quad4Kind:
		return 3, nil
	case refelem.Quad8Kind:
		return 16, nil
	case refelem.Hex8Kind:
		return 5, nil
	case refelem.Hex20Kind:
		return 17, nil
	}
	return 0, errs.InvalidArg("gmsh: unknown element kind %v", k)
}

// gmshNodeOrder permutes an element's local (shape-function) node order
// into the order Gmsh expects; nil means no permutation is required.
func gmshNodeOrder(k refelem.Kind) []int {
	switch k {
	case refelem.Hex20Kind:
		return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 12, 16, 13, 17, 9, 18, 19, 11, 15, 14, 10}
	default:
		return nil
	}
}

// NodeField describes one nodal-data block: a scalar, 2-vector, or
// 3-vector field (2-vectors are padded with a trailing zero on write).
type NodeField struct {
	Name       string
	Components int // 1, 2, or 3
	Values     []float64
}

// Write emits a Gmsh ASCII mesh for g to path: node and element blocks,
// an optional per-element density block when withDensity is true, and
// one optional node-data block per entry in fields.
func Write(path string, g *grid.Grid, withDensity bool, fields []NodeField) error {
	typ, err := elementType(g.Kind())
	if err != nil {
		return err
	}
	order := gmshNodeOrder(g.Kind())

	var buf bytes.Buffer
	io.Ff(&buf, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	numNodes := g.NumNodes()
	io.Ff(&buf, "$Nodes\n%d\n", numNodes)
	for i := 0; i < numNodes; i++ {
		c, err := g.Node(i)
		if err != nil {
			return err
		}
		x, y, z := c[0], c[1], 0.0
		if g.Dim() == 3 {
			z = c[2]
		}
		io.Ff(&buf, "%d %23.15e %23.15e %23.15e\n", i+1, x, y, z)
	}
	io.Ff(&buf, "$EndNodes\n")

	numElements := g.NumElements()
	io.Ff(&buf, "$Elements\n%d\n", numElements)
	for i := 0; i < numElements; i++ {
		nodes, err := g.Element(i)
		if err != nil {
			return err
		}
		io.Ff(&buf, "%d %d 2 0 0", i+1, typ)
		for j := range nodes {
			idx := j
			if order != nil {
				idx = order[j]
			}
			io.Ff(&buf, " %d", nodes[idx]+1)
		}
		io.Ff(&buf, "\n")
	}
	io.Ff(&buf, "$EndElements\n")

	if withDensity {
		rho := g.Densities()
		io.Ff(&buf, "$ElementData\n1\n\"density\"\n1\n0.0\n3\n0\n1\n%d\n", numElements)
		for i, r := range rho {
			io.Ff(&buf, "%d %23.15e\n", i+1, r)
		}
		io.Ff(&buf, "$EndElementData\n")
	}

	for _, f := range fields {
		if f.Components < 1 || f.Components > 3 {
			return errs.InvalidArg("gmsh: node field %q has invalid component count %d", f.Name, f.Components)
		}
		if len(f.Values) != numNodes*f.Components {
			return errs.InvalidArg("gmsh: node field %q has %d values, want %d", f.Name, len(f.Values), numNodes*f.Components)
		}
		width := f.Components
		if width == 2 {
			width = 3
		}
		io.Ff(&buf, "$NodeData\n1\n\"%s\"\n1\n0.0\n3\n0\n%d\n%d\n", f.Name, width, numNodes)
		for i := 0; i < numNodes; i++ {
			io.Ff(&buf, "%d", i+1)
			for c := 0; c < f.Components; c++ {
				io.Ff(&buf, " %23.15e", f.Values[i*f.Components+c])
			}
			if f.Components == 2 {
				io.Ff(&buf, " %23.15e", 0.0)
			}
			io.Ff(&buf, "\n")
		}
		io.Ff(&buf, "$EndNodeData\n")
	}

	io.WriteFileV(path, &buf)
	return nil
}
