// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
)

// Elastic is a linear elastic material: a VoigtSize×VoigtSize symmetric
// positive-definite Voigt stiffness matrix C, for 2D (VoigtSize=3) or 3D
// (VoigtSize=6).
type Elastic struct {
	Dim int
	C   *mat.Dense
}

// NewElastic validates and wraps a user-supplied Voigt stiffness matrix.
func NewElastic(dim int, C [][]float64) (*Elastic, error) {
	if dim != 2 && dim != 3 {
		return nil, errs.InvalidArg("material: Elastic dim must be 2 or 3, got %d", dim)
	}
	m, err := denseFrom(C)
	if err != nil {
		return nil, err
	}
	want := VoigtSize(dim)
	r, c := m.Dims()
	if r != want || c != want {
		return nil, errs.InvalidArg("material: Elastic C must be %dx%d for dim=%d, got %dx%d", want, want, dim, r, c)
	}
	if !symmetric(m, 1e-9) {
		return nil, errs.InvalidArg("material: Elastic C is not symmetric")
	}
	if !positiveDefinite(m) {
		return nil, errs.InvalidArg("material: Elastic C is not positive definite")
	}
	return &Elastic{Dim: dim, C: m}, nil
}

// NewElasticIsotropic builds C from Young's modulus E and Poisson ratio nu,
// following the teacher's Lamé-constant derivation
// (mdl/solid/elasticity.go's SmallElasticity.Init). For dim=2, planeStress
// selects plane-stress reduction; plane-strain otherwise.
func NewElasticIsotropic(dim int, E, nu float64, planeStress bool) (*Elastic, error) {
	if E <= 0 {
		return nil, errs.InvalidArg("material: Young's modulus E=%g must be positive", E)
	}
	if nu <= -1 || nu >= 0.5 {
		return nil, errs.InvalidArg("material: Poisson ratio nu=%g must lie in (-1,0.5)", nu)
	}
	switch dim {
	case 2:
		var C [][]float64
		if planeStress {
			c := E / (1 - nu*nu)
			C = [][]float64{
				{c, c * nu, 0},
				{c * nu, c, 0},
				{0, 0, c * (1 - nu) / 2},
			}
		} else {
			c := E / ((1 + nu) * (1 - 2*nu))
			C = [][]float64{
				{c * (1 - nu), c * nu, 0},
				{c * nu, c * (1 - nu), 0},
				{0, 0, c * (1 - 2*nu) / 2},
			}
		}
		return NewElastic(2, C)
	case 3:
		lambda := E * nu / ((1 + nu) * (1 - 2*nu))
		mu := E / (2 * (1 + nu))
		l2m := lambda + 2*mu
		C := [][]float64{
			{l2m, lambda, lambda, 0, 0, 0},
			{lambda, l2m, lambda, 0, 0, 0},
			{lambda, lambda, l2m, 0, 0, 0},
			{0, 0, 0, mu, 0, 0},
			{0, 0, 0, 0, mu, 0},
			{0, 0, 0, 0, 0, mu},
		}
		return NewElastic(3, C)
	}
	return nil, errs.InvalidArg("material: Elastic dim must be 2 or 3, got %d", dim)
}
