// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operator implements the matrix-free global reduced-stiffness
// operator K·x and the per-physics dof traits it is built from. It never
// assembles a sparse matrix: every matrix-vector product is a gather,
// per-element apply of the (density-scaled) reference stiffness, and
// scatter over the grid's elements.
package operator

// Traits is the per-physics dof-layout contract. numNodes is the node count
// of the view the node and dof indices belong to: the number of periodic
// nodes for the operator and for reduced indices, the number of standard
// nodes when the solver maps standard-node elements to dofs.
type Traits interface {
	// NumNodeDofs is the number of dofs carried per node.
	NumNodeDofs() int
	// NumFixedDofs is the number of dofs pinned to remove the rigid-body
	// or constant-mode nullspace.
	NumFixedDofs() int
	// Dofs returns the flat list of global dofs for an element given its
	// node list, in the same local order the kernel used to build Kᵣ.
	Dofs(elementNodes []int, numNodes int) []int
	// IsFixedDof reports whether dof is one of the NumFixedDofs pinned
	// dofs: the first NumFixedDofs of the ordering for elastic and
	// transport, the first dofs of each block for piezoelectric.
	IsFixedDof(dof, numNodes int) bool
	// ReducedDof maps a non-fixed global dof to its position in the
	// reduced (fixed-dofs-removed) vector.
	ReducedDof(dof, numNodes int) int
	// ExpandedDof is the inverse of ReducedDof.
	ExpandedDof(reduced, numNodes int) int
}

// NumReducedDofs returns NumNodeDofs·numNodes − NumFixedDofs.
func NumReducedDofs(t Traits, numNodes int) int {
	return t.NumNodeDofs()*numNodes - t.NumFixedDofs()
}
