// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/grid"
)

// Operator is the matrix-free global reduced-stiffness operator K·x. It
// never assembles a sparse matrix: Apply gathers each element's reduced
// dof values from x, applies the density-scaled reference element
// stiffness Kref, and scatters the result into y. Symmetric iff Kref is
// symmetric; positive semidefinite iff Kref is.
type Operator struct {
	g         *grid.Grid
	traits    Traits
	kref      *mat.Dense
	elemDofs  [][]int
	densities []float64
	nRed      int
	diag      []float64
}

// New precomputes, for every element, the length-NumElementDofs array of
// reduced dof indices (−1 for fixed dofs), and the Jacobi preconditioner
// diagonal.
func New(g *grid.Grid, traits Traits, kref *mat.Dense) (*Operator, error) {
	krows, kcols := kref.Dims()
	if krows != kcols {
		return nil, errs.InvalidArg("operator: reference stiffness must be square, got %dx%d", krows, kcols)
	}
	numNodes := g.NumPeriodicNodes()
	nRed := NumReducedDofs(traits, numNodes)
	if nRed <= 0 {
		return nil, errs.InvalidArg("operator: reduced dimension must be positive, got %d", nRed)
	}

	op := &Operator{
		g:         g,
		traits:    traits,
		kref:      kref,
		densities: g.Densities(),
		nRed:      nRed,
		diag:      make([]float64, nRed),
	}

	numElements := g.NumElements()
	op.elemDofs = make([][]int, numElements)
	for i := 0; i < numElements; i++ {
		nodes, err := g.PeriodicElement(i)
		if err != nil {
			return nil, err
		}
		dofs := traits.Dofs(nodes, numNodes)
		if len(dofs) != krows {
			return nil, errs.InvalidArg("operator: element %d has %d dofs but Kref is %dx%d", i, len(dofs), krows, krows)
		}
		reduced := make([]int, len(dofs))
		for j, dof := range dofs {
			if traits.IsFixedDof(dof, numNodes) {
				reduced[j] = -1
			} else {
				reduced[j] = traits.ReducedDof(dof, numNodes)
			}
		}
		op.elemDofs[i] = reduced
		rho := op.densities[i]
		for j, g := range reduced {
			if g >= 0 {
				op.diag[g] += rho * kref.At(j, j)
			}
		}
	}

	return op, nil
}

// NumReducedDofs is the length of vectors Apply operates on.
func (op *Operator) NumReducedDofs() int { return op.nRed }

// Traits returns the physics traits this operator was built with.
func (op *Operator) Traits() Traits { return op.traits }

// Apply computes y = K·x in place; x and y must both have length
// NumReducedDofs and may not alias.
func (op *Operator) Apply(x, y []float64) {
	for i := range y {
		y[i] = 0
	}
	numLocal, _ := op.kref.Dims()
	xl := make([]float64, numLocal)
	yl := make([]float64, numLocal)
	for i, dofs := range op.elemDofs {
		rho := op.densities[i]
		for j, g := range dofs {
			if g >= 0 {
				xl[j] = x[g]
			} else {
				xl[j] = 0
			}
		}
		for j := 0; j < numLocal; j++ {
			sum := 0.0
			for k := 0; k < numLocal; k++ {
				sum += op.kref.At(j, k) * xl[k]
			}
			yl[j] = rho * sum
		}
		for j, g := range dofs {
			if g >= 0 {
				y[g] += yl[j]
			}
		}
	}
}

// Precondition applies the Jacobi preconditioner: y[i] = r[i]/diag[i].
func (op *Operator) Precondition(r, y []float64) {
	for i := range r {
		y[i] = r[i] / op.diag[i]
	}
}

// ScatterSource adds column `column` of the reference source Fref, scaled
// by element i's density, into the global reduced right-hand side F at the
// element's reduced dofs (fixed dofs are skipped). Fref has NumElementDofs
// rows and one column per macroscopic loading direction.
func (op *Operator) ScatterSource(i int, fref *mat.Dense, column int, F []float64) {
	rho := op.densities[i]
	for j, g := range op.elemDofs[i] {
		if g >= 0 {
			F[g] += rho * fref.At(j, column)
		}
	}
}

// ElementDofs returns the precomputed reduced dof array for element i
// (−1 for fixed/pinned dofs).
func (op *Operator) ElementDofs(i int) []int { return op.elemDofs[i] }
