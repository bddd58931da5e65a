// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

// ElasticTraits lays out D dofs per node, node-major interleaved
// (n0x,n0y[,n0z],n1x,n1y[,n1z],...), fixing the origin node's D
// displacement dofs.
type ElasticTraits struct {
	Dim int
}

func (t *ElasticTraits) NumNodeDofs() int  { return t.Dim }
func (t *ElasticTraits) NumFixedDofs() int { return t.Dim }

func (t *ElasticTraits) Dofs(elementNodes []int, numNodes int) []int {
	dofs := make([]int, 0, len(elementNodes)*t.Dim)
	for _, n := range elementNodes {
		for d := 0; d < t.Dim; d++ {
			dofs = append(dofs, n*t.Dim+d)
		}
	}
	return dofs
}

func (t *ElasticTraits) IsFixedDof(dof, numNodes int) bool { return dof < t.Dim }

func (t *ElasticTraits) ReducedDof(dof, numNodes int) int { return dof - t.Dim }

func (t *ElasticTraits) ExpandedDof(reduced, numNodes int) int { return reduced + t.Dim }
