// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
)

// Piezo is a linear piezoelectric material: an elastic material, a
// transport material interpreted as permittivity, and a D×VoigtSize
// coupling tensor d. Thermodynamic stability requires the Schur complement
// C − dᵀK⁻¹d to be positive definite.
type Piezo struct {
	Elastic   *Elastic
	Transport *Transport
	D         *mat.Dense // Dim x VoigtSize coupling
}

// NewPiezo validates the coupling tensor's shape and the Schur-complement
// stability invariant, then wraps the three constituents.
func NewPiezo(elastic *Elastic, transport *Transport, d [][]float64) (*Piezo, error) {
	if elastic == nil || transport == nil {
		return nil, errs.InvalidArg("material: Piezo requires a non-nil elastic and transport material")
	}
	if elastic.Dim != transport.Dim {
		return nil, errs.InvalidArg("material: Piezo elastic dim=%d and transport dim=%d must match", elastic.Dim, transport.Dim)
	}
	dim := elastic.Dim
	voigt := VoigtSize(dim)
	D, err := denseFrom(d)
	if err != nil {
		return nil, err
	}
	r, c := D.Dims()
	if r != dim || c != voigt {
		return nil, errs.InvalidArg("material: Piezo coupling d must be %dx%d, got %dx%d", dim, voigt, r, c)
	}

	var Kinv mat.Dense
	if err := Kinv.Inverse(transport.K); err != nil {
		return nil, errs.InvalidArg("material: Piezo permittivity K is singular: %v", err)
	}
	var KinvD mat.Dense
	KinvD.Mul(&Kinv, D)
	var schur mat.Dense
	schur.Mul(D.T(), &KinvD)
	schur.Sub(elastic.C, &schur)
	if !positiveDefinite(&schur) {
		return nil, errs.InvalidArg("material: Piezo Schur complement C - d^T K^-1 d is not positive definite (thermodynamic stability violated)")
	}

	return &Piezo{Elastic: elastic, Transport: transport, D: D}, nil
}
