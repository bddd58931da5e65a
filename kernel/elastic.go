// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/refelem"
)

// Elastic is the linear-elasticity FEM kernel: Kₑ = ∫ Bᵀ C B |detJ| dΩ̂,
// Fₑ = −∫ Bᵀ C |detJ| dΩ̂.
type Elastic struct {
	Dim int
	Mat *material.Elastic
}

func (k *Elastic) NumDofsPerNode() int { return k.Dim }
func (k *Elastic) NumMacroFields() int { return material.VoigtSize(k.Dim) }

func (k *Elastic) Build(elem refelem.Element, nodes *mat.Dense) (Ke, Fe *mat.Dense, err error) {
	numNodes := elem.NumNodes()
	numDofs := k.Dim * numNodes
	voigt := material.VoigtSize(k.Dim)
	Ke = mat.NewDense(numDofs, numDofs, nil)
	Fe = mat.NewDense(numDofs, voigt, nil)

	for _, ip := range elem.Quadrature() {
		grad := elem.GradShapeFunctions(ip.Xi)
		_, Jinv, detJ := refelem.Jacobian(grad, nodes)
		if err = checkJacobian(detJ); err != nil {
			return nil, nil, err
		}
		g := refelem.GlobalGrad(Jinv, grad)

		var B *mat.Dense
		if k.Dim == 2 {
			B = BElastic2D(g)
		} else {
			B = BElastic3D(g)
		}

		w := ip.W * absf(detJ)
		var CB mat.Dense
		CB.Mul(k.Mat.C, B)
		var BtCB mat.Dense
		BtCB.Mul(B.T(), &CB)
		BtCB.Scale(w, &BtCB)
		Ke.Add(Ke, &BtCB)

		var BtC mat.Dense
		BtC.Mul(B.T(), k.Mat.C)
		BtC.Scale(-w, &BtC)
		Fe.Add(Fe, &BtC)
	}
	symmetrize(Ke)
	return Ke, Fe, nil
}
