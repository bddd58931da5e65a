// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package policy supplies the per-physics glue the homogenization solver
// needs but cannot derive from the kernel or operator packages alone:
// which kernel and traits to drive, how to build the macroscopic loading
// field X̄, and how to split the assembled homogenized operator M̄ and
// the solved nodal field back into the physics's user-facing tensors and
// fields.
package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/kernel"
	"github.com/cpmech/homogen/operator"
)

// Policy is the per-physics strategy the homogenization solver is
// parameterized by.
type Policy interface {
	// Kernel is the per-element stiffness/source kernel for this physics.
	Kernel() kernel.Kernel
	// Traits is the dof-layout contract for this physics.
	Traits() operator.Traits
	// BuildMacroField builds X̄, size numNodes·NumNodeDofs × NumMacroFields.
	BuildMacroField(g *grid.Grid) (*mat.Dense, error)
	// SplitTensor splits the homogenized operator M̄ into the physics's
	// named result tensors.
	SplitTensor(mbar *mat.Dense) map[string]*mat.Dense
	// SplitNodalField splits a full nodal vector (length
	// numNodes·NumNodeDofs, in the traits' global dof ordering) into the
	// physics's named, per-node-reshaped fields.
	SplitNodalField(full []float64, numNodes int) map[string]*mat.Dense
}
