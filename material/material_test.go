// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_elastic_isotropic_2d_plane_stress(tst *testing.T) {
	chk.PrintTitle("material: elastic isotropic 2D plane stress")
	m, err := NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	G := 1.0 / (2 * (1 + 0.3))
	chk.Scalar(tst, "C22 (shear modulus)", 1e-14, m.C.At(2, 2), G)
	if !symmetric(m.C, 1e-12) {
		tst.Errorf("C is not symmetric")
	}
}

func Test_voigt_reuss_bounds(tst *testing.T) {
	chk.PrintTitle("material: Voigt/Reuss bounds")
	m, err := NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	densities := []float64{0.2, 0.5, 0.8, 1.0, 0.35}
	voigt := VoigtAverage(densities, m.C)
	reuss := ReussAverage(densities, m.C)
	trV := Trace(voigt)
	trR := Trace(reuss)
	if trR > trV+1e-12 {
		tst.Errorf("tr(Reuss)=%g > tr(Voigt)=%g", trR, trV)
	}
}

func Test_voigt_reuss_equal_for_solid(tst *testing.T) {
	chk.PrintTitle("material: Voigt=Reuss=C for solid (densities=1)")
	m, err := NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	densities := []float64{1, 1, 1, 1}
	voigt := VoigtAverage(densities, m.C)
	reuss := ReussAverage(densities, m.C)
	n, _ := m.C.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			chk.Scalar(tst, "voigt vs C", 1e-12, voigt.At(i, j), m.C.At(i, j))
			chk.Scalar(tst, "reuss vs C", 1e-12, reuss.At(i, j), m.C.At(i, j))
		}
	}
}

func Test_piezo_rejects_unstable_coupling(tst *testing.T) {
	chk.PrintTitle("material: Piezo rejects Schur-unstable coupling")
	el, err := NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	tr, err := NewTransportIsotropic(2, 1.0)
	if err != nil {
		tst.Fatalf("NewTransportIsotropic failed: %v", err)
	}
	hugeD := [][]float64{
		{100, 100, 100},
		{100, 100, 100},
	}
	if _, err := NewPiezo(el, tr, hugeD); err == nil {
		tst.Errorf("expected NewPiezo to reject a Schur-unstable coupling tensor")
	}
}

func Test_piezo_accepts_small_coupling(tst *testing.T) {
	chk.PrintTitle("material: Piezo accepts small, stable coupling")
	el, err := NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	tr, err := NewTransportIsotropic(2, 2.1)
	if err != nil {
		tst.Fatalf("NewTransportIsotropic failed: %v", err)
	}
	smallD := [][]float64{
		{0.01, 0.01, 0.01},
		{0.01, 0.01, 0.01},
	}
	if _, err := NewPiezo(el, tr, smallD); err != nil {
		tst.Errorf("expected a small coupling to satisfy the Schur-stability invariant, got: %v", err)
	}
}
