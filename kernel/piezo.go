// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/refelem"
)

// Piezo is the linear piezoelectric FEM kernel. NumDofs = D·K + K: the
// first D·K dofs are mechanical displacements, the last K are the electric
// potential. Kₑ is symmetric but, unlike the elastic and transport
// kernels, not positive semidefinite (the electric block enters with a
// negative sign).
type Piezo struct {
	Dim int
	Mat *material.Piezo
}

func (k *Piezo) NumDofsPerNode() int { return k.Dim + 1 }
func (k *Piezo) NumMacroFields() int { return material.VoigtSize(k.Dim) + k.Dim }

func (k *Piezo) Build(elem refelem.Element, nodes *mat.Dense) (Ke, Fe *mat.Dense, err error) {
	elastic := &Elastic{Dim: k.Dim, Mat: k.Mat.Elastic}
	Kuu, Fuu, err := elastic.Build(elem, nodes)
	if err != nil {
		return nil, nil, err
	}
	transport := &Transport{Dim: k.Dim, Mat: k.Mat.Transport, Sign: -1}
	Kphiphi, Fphiphi, err := transport.Build(elem, nodes)
	if err != nil {
		return nil, nil, err
	}

	numNodes := elem.NumNodes()
	numU := k.Dim * numNodes
	voigt := material.VoigtSize(k.Dim)

	Kphiu := mat.NewDense(numNodes, numU, nil)
	Fphiu := mat.NewDense(numNodes, voigt, nil)
	Fuphi := mat.NewDense(numU, k.Dim, nil)

	for _, ip := range elem.Quadrature() {
		grad := elem.GradShapeFunctions(ip.Xi)
		_, Jinv, detJ := refelem.Jacobian(grad, nodes)
		if err = checkJacobian(detJ); err != nil {
			return nil, nil, err
		}
		g := refelem.GlobalGrad(Jinv, grad)

		var Bu *mat.Dense
		if k.Dim == 2 {
			Bu = BElastic2D(g)
		} else {
			Bu = BElastic3D(g)
		}
		Bphi := BTransport(g, -1)

		w := ip.W * absf(detJ)

		var dBu mat.Dense
		dBu.Mul(k.Mat.D, Bu)
		var BphiTdBu mat.Dense
		BphiTdBu.Mul(Bphi.T(), &dBu)
		BphiTdBu.Scale(w, &BphiTdBu)
		Kphiu.Add(Kphiu, &BphiTdBu)

		var BphiTd mat.Dense
		BphiTd.Mul(Bphi.T(), k.Mat.D)
		BphiTd.Scale(-w, &BphiTd)
		Fphiu.Add(Fphiu, &BphiTd)

		var BuTdT mat.Dense
		BuTdT.Mul(Bu.T(), k.Mat.D.T())
		BuTdT.Scale(w, &BuTdT)
		Fuphi.Add(Fuphi, &BuTdT)
	}

	numDofs := numU + numNodes
	Ke = mat.NewDense(numDofs, numDofs, nil)
	Ke.Slice(0, numU, 0, numU).(*mat.Dense).Copy(Kuu)
	negKphiuT := mat.DenseCopyOf(Kphiu.T())
	negKphiuT.Scale(-1, negKphiuT)
	Ke.Slice(0, numU, numU, numDofs).(*mat.Dense).Copy(negKphiuT)
	negKphiu := mat.DenseCopyOf(Kphiu)
	negKphiu.Scale(-1, negKphiu)
	Ke.Slice(numU, numDofs, 0, numU).(*mat.Dense).Copy(negKphiu)
	negKphiphi := mat.DenseCopyOf(Kphiphi)
	negKphiphi.Scale(-1, negKphiphi)
	Ke.Slice(numU, numDofs, numU, numDofs).(*mat.Dense).Copy(negKphiphi)
	symmetrize(Ke)

	numMacro := voigt + k.Dim
	Fe = mat.NewDense(numDofs, numMacro, nil)
	Fe.Slice(0, numU, 0, voigt).(*mat.Dense).Copy(Fuu)
	Fe.Slice(0, numU, voigt, numMacro).(*mat.Dense).Copy(Fuphi)
	Fe.Slice(numU, numDofs, 0, voigt).(*mat.Dense).Copy(Fphiu)
	negFphiphi := mat.DenseCopyOf(Fphiphi)
	negFphiphi.Scale(-1, negFphiphi)
	Fe.Slice(numU, numDofs, voigt, numMacro).(*mat.Dense).Copy(negFphiphi)

	return Ke, Fe, nil
}
