// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

// PiezoTraits concatenates the elastic dof range [0, numNodes·Dim) with
// the electrical dof range [numNodes·Dim, numNodes·Dim+numNodes), and
// concatenates the two physics' fixed-dof sets rather than taking the
// first NumFixedDofs of the combined ordering.
type PiezoTraits struct {
	Dim       int
	elastic   ElasticTraits
	transport TransportTraits
}

// NewPiezoTraits builds the piezoelectric traits for the given spatial
// dimension.
func NewPiezoTraits(dim int) *PiezoTraits {
	return &PiezoTraits{Dim: dim, elastic: ElasticTraits{Dim: dim}}
}

func (t *PiezoTraits) NumNodeDofs() int  { return t.Dim + 1 }
func (t *PiezoTraits) NumFixedDofs() int { return t.Dim + 1 }

func (t *PiezoTraits) Dofs(elementNodes []int, numNodes int) []int {
	numElasticDofs := numNodes * t.Dim
	dofs := make([]int, 0, len(elementNodes)*(t.Dim+1))
	dofs = append(dofs, t.elastic.Dofs(elementNodes, numNodes)...)
	for _, n := range elementNodes {
		dofs = append(dofs, numElasticDofs+n)
	}
	return dofs
}

func (t *PiezoTraits) IsFixedDof(dof, numNodes int) bool {
	numElasticDofs := numNodes * t.Dim
	if dof < numElasticDofs {
		return t.elastic.IsFixedDof(dof, numNodes)
	}
	return t.transport.IsFixedDof(dof-numElasticDofs, numNodes)
}

func (t *PiezoTraits) reducedElasticCount(numNodes int) int {
	return numNodes*t.Dim - t.Dim
}

func (t *PiezoTraits) ReducedDof(dof, numNodes int) int {
	numElasticDofs := numNodes * t.Dim
	if dof < numElasticDofs {
		return t.elastic.ReducedDof(dof, numNodes)
	}
	sub := dof - numElasticDofs
	return t.reducedElasticCount(numNodes) + t.transport.ReducedDof(sub, numNodes)
}

func (t *PiezoTraits) ExpandedDof(reduced, numNodes int) int {
	rc := t.reducedElasticCount(numNodes)
	if reduced < rc {
		return t.elastic.ExpandedDof(reduced, numNodes)
	}
	numElasticDofs := numNodes * t.Dim
	sub := t.transport.ExpandedDof(reduced-rc, numNodes)
	return numElasticDofs + sub
}
