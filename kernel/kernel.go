// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the per-element FEM kernels: the element
// stiffness matrix Kₑ and the element macroscopic-source matrix Fₑ at unit
// density, for each of the three physics (elastic, scalar transport,
// piezoelectric), built from the element's own quadrature rule.
package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/refelem"
)

// Kernel computes Kₑ and Fₑ for one physics at unit density.
type Kernel interface {
	// NumDofsPerNode is the number of dofs carried per node by this physics.
	NumDofsPerNode() int
	// NumMacroFields is the number of columns of Fₑ and of the macroscopic
	// loading matrix (VoigtSize for elastic, D for transport, VoigtSize+D
	// for piezoelectric).
	NumMacroFields() int
	// Build computes (Kₑ, Fₑ) for one element given its reference element
	// and physical node coordinates.
	Build(elem refelem.Element, nodes *mat.Dense) (Ke, Fe *mat.Dense, err error)
}

// checkJacobian rejects degenerate (detJ==0) and inverted (detJ<0) elements.
func checkJacobian(detJ float64) error {
	if detJ == 0 {
		return errs.Geometry("kernel: degenerate element (detJ=0)")
	}
	if detJ < 0 {
		return errs.Geometry("kernel: inverted element (detJ=%g)", detJ)
	}
	return nil
}

// symmetrize averages m with its transpose in place, suppressing
// floating-point roundoff asymmetries left by quadrature summation.
func symmetrize(m *mat.Dense) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (m.At(i, j) + m.At(j, i))
			m.Set(i, j, avg)
			m.Set(j, i, avg)
		}
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
