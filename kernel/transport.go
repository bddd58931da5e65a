// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/refelem"
)

// Transport is the linear scalar-transport FEM kernel: Kₑ = ∫ Bᵀ K B |detJ|
// dΩ̂, Fₑ = −∫ Bᵀ K |detJ| dΩ̂. Sign chooses the gradient-to-potential
// convention (it does not change Kₑ, only Fₑ and macroscopic field signs).
type Transport struct {
	Dim  int
	Mat  *material.Transport
	Sign float64
}

func (k *Transport) NumDofsPerNode() int { return 1 }
func (k *Transport) NumMacroFields() int { return k.Dim }

func (k *Transport) Build(elem refelem.Element, nodes *mat.Dense) (Ke, Fe *mat.Dense, err error) {
	numNodes := elem.NumNodes()
	Ke = mat.NewDense(numNodes, numNodes, nil)
	Fe = mat.NewDense(numNodes, k.Dim, nil)

	for _, ip := range elem.Quadrature() {
		grad := elem.GradShapeFunctions(ip.Xi)
		_, Jinv, detJ := refelem.Jacobian(grad, nodes)
		if err = checkJacobian(detJ); err != nil {
			return nil, nil, err
		}
		g := refelem.GlobalGrad(Jinv, grad)
		B := BTransport(g, k.Sign)

		w := ip.W * absf(detJ)
		var KB mat.Dense
		KB.Mul(k.Mat.K, B)
		var BtKB mat.Dense
		BtKB.Mul(B.T(), &KB)
		BtKB.Scale(w, &BtKB)
		Ke.Add(Ke, &BtKB)

		var BtK mat.Dense
		BtK.Mul(B.T(), k.Mat.K)
		BtK.Scale(-w, &BtK)
		Fe.Add(Fe, &BtK)
	}
	symmetrize(Ke)
	return Ke, Fe, nil
}
