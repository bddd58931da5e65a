// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/errs"
)

// Transport is a linear scalar-transport material: a D×D symmetric
// positive-definite conductivity/permittivity/diffusivity tensor K.
type Transport struct {
	Dim int
	K   *mat.Dense
}

// NewTransport validates and wraps a user-supplied D×D tensor.
func NewTransport(dim int, K [][]float64) (*Transport, error) {
	if dim != 2 && dim != 3 {
		return nil, errs.InvalidArg("material: Transport dim must be 2 or 3, got %d", dim)
	}
	m, err := denseFrom(K)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	if r != dim || c != dim {
		return nil, errs.InvalidArg("material: Transport K must be %dx%d, got %dx%d", dim, dim, r, c)
	}
	if !symmetric(m, 1e-9) {
		return nil, errs.InvalidArg("material: Transport K is not symmetric")
	}
	if !positiveDefinite(m) {
		return nil, errs.InvalidArg("material: Transport K is not positive definite")
	}
	return &Transport{Dim: dim, K: m}, nil
}

// NewTransportIsotropic builds K = k·I for a positive scalar constant k.
func NewTransportIsotropic(dim int, k float64) (*Transport, error) {
	if k <= 0 {
		return nil, errs.InvalidArg("material: isotropic transport constant k=%g must be positive", k)
	}
	K := make([][]float64, dim)
	for i := range K {
		K[i] = make([]float64, dim)
		K[i][i] = k
	}
	return NewTransport(dim, K)
}
