// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

// TransportTraits carries one scalar dof per node, numbered by node
// index, fixing the potential at the origin node.
type TransportTraits struct{}

func (t *TransportTraits) NumNodeDofs() int  { return 1 }
func (t *TransportTraits) NumFixedDofs() int { return 1 }

func (t *TransportTraits) Dofs(elementNodes []int, numNodes int) []int {
	dofs := make([]int, len(elementNodes))
	copy(dofs, elementNodes)
	return dofs
}

func (t *TransportTraits) IsFixedDof(dof, numNodes int) bool { return dof == 0 }

func (t *TransportTraits) ReducedDof(dof, numNodes int) int { return dof - 1 }

func (t *TransportTraits) ExpandedDof(reduced, numNodes int) int { return reduced + 1 }
