// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homogenize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/operator"
	"github.com/cpmech/homogen/pcg"
	"github.com/cpmech/homogen/policy"
)

// Solver owns the reference element matrices and matrix-free operator
// for one grid/material/physics combination; Solve may be called
// repeatedly (e.g. across grid translations) without reconstruction, since
// each Solve rebuilds the operator from the grid's current densities.
type Solver struct {
	g      *grid.Grid
	pol    policy.Policy
	traits operator.Traits
	kref   *mat.Dense
	fref   *mat.Dense
	op     *operator.Operator
}

// New computes the reference element stiffness Kref and source Fref from
// element 0's geometry (valid for any element since the grid is
// structured and every element is congruent), and builds the matrix-free
// operator.
func New(g *grid.Grid, pol policy.Policy) (*Solver, error) {
	nodes, err := g.ElementNodes(0)
	if err != nil {
		return nil, err
	}
	kref, fref, err := pol.Kernel().Build(g.RefElement(), nodes)
	if err != nil {
		return nil, err
	}
	traits := pol.Traits()
	op, err := operator.New(g, traits, kref)
	if err != nil {
		return nil, err
	}
	return &Solver{g: g, pol: pol, traits: traits, kref: kref, fref: fref, op: op}, nil
}

// Solve runs one periodic-cell homogenization: for every macroscopic
// loading direction it solves the reduced microscopic correction with
// PCG, expands it to the full standard-node field, and accumulates the
// homogenized tensor by the Hill–Mandel lemma.
func (s *Solver) Solve(opts Options) (*Result, error) {
	op, err := operator.New(s.g, s.traits, s.kref)
	if err != nil {
		return nil, err
	}
	s.op = op

	numStdNodes := s.g.NumNodes()
	numPerNodes := s.g.NumPeriodicNodes()
	numElements := s.g.NumElements()
	densities := s.g.Densities()
	V := s.g.Measure()

	X, err := s.pol.BuildMacroField(s.g)
	if err != nil {
		return nil, err
	}
	_, numMacro := X.Dims()
	numLocal, _ := s.kref.Dims()
	nRed := s.op.NumReducedDofs()

	xtildeFull := make([][]float64, numMacro)
	Mbar := mat.NewDense(numMacro, numMacro, nil)

	pcgOpts := pcg.Options{MaxIterations: opts.MaxIterations, Tolerance: opts.Tolerance}

	for q := 0; q < numMacro; q++ {
		Fred := make([]float64, nRed)
		for i := 0; i < numElements; i++ {
			s.op.ScatterSource(i, s.fref, q, Fred)
		}

		xred, err := pcg.Solve(s.op.Apply, s.op.Precondition, Fred, nil, pcgOpts)
		if err != nil {
			return nil, err
		}

		xperiodic := make([]float64, numPerNodes*s.traits.NumNodeDofs())
		for dof := range xperiodic {
			if !s.traits.IsFixedDof(dof, numPerNodes) {
				xperiodic[dof] = xred[s.traits.ReducedDof(dof, numPerNodes)]
			}
		}

		xfull := make([]float64, numStdNodes*s.traits.NumNodeDofs())
		for i := 0; i < numElements; i++ {
			stdNodes, err := s.g.Element(i)
			if err != nil {
				return nil, err
			}
			perNodes, err := s.g.PeriodicElement(i)
			if err != nil {
				return nil, err
			}
			stdDofs := s.traits.Dofs(stdNodes, numStdNodes)
			perDofs := s.traits.Dofs(perNodes, numPerNodes)
			for j := range stdDofs {
				xfull[stdDofs[j]] = xperiodic[perDofs[j]]
			}
		}
		xtildeFull[q] = xfull
	}

	for i := 0; i < numElements; i++ {
		stdNodes, err := s.g.Element(i)
		if err != nil {
			return nil, err
		}
		stdDofs := s.traits.Dofs(stdNodes, numStdNodes)

		// Xe gathers the total field (macroscopic + microscopic correction).
		Xe := mat.NewDense(numLocal, numMacro, nil)
		for j, dof := range stdDofs {
			for q := 0; q < numMacro; q++ {
				Xe.Set(j, q, X.At(dof, q)+xtildeFull[q][dof])
			}
		}

		var KXe mat.Dense
		KXe.Mul(s.kref, Xe)
		var XeTKXe mat.Dense
		XeTKXe.Mul(Xe.T(), &KXe)
		XeTKXe.Scale(densities[i], &XeTKXe)
		Mbar.Add(Mbar, &XeTKXe)
	}
	Mbar.Scale(1/V, Mbar)
	symmetrizeDense(Mbar)

	loadings := make([]LoadingResult, numMacro)
	for q := 0; q < numMacro; q++ {
		total := make([]float64, numStdNodes*s.traits.NumNodeDofs())
		macro := make([]float64, numStdNodes*s.traits.NumNodeDofs())
		for dof := range total {
			macro[dof] = X.At(dof, q)
			total[dof] = macro[dof] + xtildeFull[q][dof]
		}
		var lr LoadingResult
		if opts.Fields.Has(Total) {
			lr.Total = s.pol.SplitNodalField(total, numStdNodes)
		}
		if opts.Fields.Has(Macro) {
			lr.Macro = s.pol.SplitNodalField(macro, numStdNodes)
		}
		if opts.Fields.Has(Micro) {
			lr.Micro = s.pol.SplitNodalField(xtildeFull[q], numStdNodes)
		}
		loadings[q] = lr
	}

	return &Result{Tensor: s.pol.SplitTensor(Mbar), Loading: loadings}, nil
}

func symmetrizeDense(m *mat.Dense) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (m.At(i, j) + m.At(j, i))
			m.Set(i, j, avg)
			m.Set(j, i, avg)
		}
	}
}
