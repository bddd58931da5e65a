// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homogenize

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/policy"
	"github.com/cpmech/homogen/refelem"
)

func denseEqual(tst *testing.T, label string, got, want *mat.Dense, tol float64) {
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		tst.Fatalf("%s: dims %dx%d vs want %dx%d", label, gr, gc, wr, wc)
	}
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			chk.Scalar(tst, label, tol, got.At(i, j), want.At(i, j))
		}
	}
}

func isSymmetric(m *mat.Dense, tol float64) bool {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if absf(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isPositiveDefinite(m *mat.Dense) bool {
	sym := mat.NewSymDense(rowsOf(m), nil)
	n := rowsOf(m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.SetSym(i, j, m.At(i, j))
		}
	}
	var chol mat.Cholesky
	return chol.Factorize(sym)
}

func rowsOf(m *mat.Dense) int {
	r, _ := m.Dims()
	return r
}

// S1: Quad8 3x3, isotropic elastic, densities=1 -> C_bar equals the base
// tensor (the solid cell homogenizes to itself).
func Test_S1_elastic_solid_cell_recovers_base_tensor(tst *testing.T) {
	chk.PrintTitle("homogenize: S1 elastic solid cell recovers base C")
	g, err := grid.New(refelem.Quad8Kind, []int{3, 3}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	m, err := material.NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	pol := &policy.Elastic{Dim: 2, Mat: m}
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := s.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	denseEqual(tst, "C_bar vs base C", res.Tensor["C"], m.C, 1e-6)
}

// S2: densities ~ 0 (numerical floor) -> C_bar ~ 0.
func Test_S2_elastic_void_cell_vanishes(tst *testing.T) {
	chk.PrintTitle("homogenize: S2 elastic void cell vanishes")
	g, err := grid.New(refelem.Quad8Kind, []int{3, 3}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g.SetDensitiesZeros(); err != nil {
		tst.Fatalf("SetDensitiesZeros failed: %v", err)
	}
	m, err := material.NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	pol := &policy.Elastic{Dim: 2, Mat: m}
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := s.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	n, _ := res.Tensor["C"].Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if absf(res.Tensor["C"].At(i, j)) > 1e-6 {
				tst.Errorf("C_bar[%d][%d]=%g, expected ~0 for a void cell", i, j, res.Tensor["C"].At(i, j))
			}
		}
	}
}

// S3: Quad8 2x2 with random densities: C_bar must be symmetric, positive
// definite, respect the Voigt/Reuss bounds, and be invariant under a
// lattice-origin translation. The random seed pins the microstructure
// without hardcoding the resulting tensor (which this test cannot compute
// independently).
func Test_S3_elastic_random_density_properties(tst *testing.T) {
	chk.PrintTitle("homogenize: S3 elastic random density properties")
	const seed = 1234
	g, err := grid.New(refelem.Quad8Kind, []int{2, 2}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	m, err := material.NewElasticIsotropic(2, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	pol := &policy.Elastic{Dim: 2, Mat: m}
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := s.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	C := res.Tensor["C"]
	if !isSymmetric(C, 1e-8) {
		tst.Errorf("C_bar not symmetric")
	}
	if !isPositiveDefinite(C) {
		tst.Errorf("C_bar not positive definite")
	}
	voigt := material.VoigtAverage(g.Densities(), m.C)
	reuss := material.ReussAverage(g.Densities(), m.C)
	trC := material.Trace(C)
	trV := material.Trace(voigt)
	trR := material.Trace(reuss)
	if trC > trV+1e-6 {
		tst.Errorf("tr(C_bar)=%g exceeds Voigt bound %g", trC, trV)
	}
	if trC < trR-1e-6 {
		tst.Errorf("tr(C_bar)=%g below Reuss bound %g", trC, trR)
	}

	// translational invariance: a second solver built on a translated copy
	// of the same grid must homogenize to the same tensor.
	g2, err := grid.New(refelem.Quad8Kind, []int{2, 2}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g2.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	if err := g2.Translate([]int{1, 1}); err != nil {
		tst.Fatalf("Translate failed: %v", err)
	}
	pol2 := &policy.Elastic{Dim: 2, Mat: m}
	s2, err := New(g2, pol2)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res2, err := s2.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	denseEqual(tst, "C_bar translational invariance", res2.Tensor["C"], C, 1e-6)
}

// S4: Hex8 2x3x4, densities=1 -> C_bar equals the base 6x6 stiffness.
func Test_S4_elastic_3d_solid_cell(tst *testing.T) {
	chk.PrintTitle("homogenize: S4 3D elastic solid cell")
	g, err := grid.New(refelem.Hex8Kind, []int{2, 3, 4}, []float64{1, 1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	m, err := material.NewElasticIsotropic(3, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	pol := &policy.Elastic{Dim: 3, Mat: m}
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := s.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	denseEqual(tst, "C_bar vs base C (3D)", res.Tensor["C"], m.C, 1e-6)
}

// S5: Quad4 3x3 isotropic transport K=2.1*I, densities=1 -> K_bar = 2.1*I;
// and, on a second, independently-built solver over a randomly-seeded,
// non-uniform-density grid, translational invariance holds. A uniform
// density field would make the check trivial, so this builds two
// independent solvers over a heterogeneous microstructure, mirroring S3/S6.
func Test_S5_transport_solid_cell_and_translation(tst *testing.T) {
	chk.PrintTitle("homogenize: S5 transport solid cell and translation invariance")
	g, err := grid.New(refelem.Quad4Kind, []int{3, 3}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	m, err := material.NewTransportIsotropic(2, 2.1)
	if err != nil {
		tst.Fatalf("NewTransportIsotropic failed: %v", err)
	}
	pol := &policy.Transport{Dim: 2, Mat: m, Sign: 1}
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := s.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	K := res.Tensor["K"]
	chk.Scalar(tst, "K_bar[0][0]", 1e-6, K.At(0, 0), 2.1)
	chk.Scalar(tst, "K_bar[1][1]", 1e-6, K.At(1, 1), 2.1)
	chk.Scalar(tst, "K_bar[0][1]", 1e-6, K.At(0, 1), 0.0)

	const seed = 99
	g1, err := grid.New(refelem.Quad4Kind, []int{3, 3}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g1.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	pol1 := &policy.Transport{Dim: 2, Mat: m, Sign: 1}
	s1, err := New(g1, pol1)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res1, err := s1.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	g2, err := grid.New(refelem.Quad4Kind, []int{3, 3}, []float64{1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g2.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	if err := g2.Translate([]int{1, 2}); err != nil {
		tst.Fatalf("Translate failed: %v", err)
	}
	pol2 := &policy.Transport{Dim: 2, Mat: m, Sign: 1}
	s2, err := New(g2, pol2)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res2, err := s2.Solve(DefaultOptions())
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	denseEqual(tst, "K_bar translational invariance", res2.Tensor["K"], res1.Tensor["K"], 1e-6)
}

// S6: Hex20 2x2x2 piezoelectric with random densities and a small uniform
// (Schur-stable) coupling: c_bar and eps_bar must be symmetric and positive
// definite, c_bar must respect the Voigt/Reuss bounds and be
// translation-invariant; starving the solver of iterations must surface
// errs.SolverFailure.
func Test_S6_piezo_random_density_and_iteration_cap(tst *testing.T) {
	chk.PrintTitle("homogenize: S6 piezoelectric random density, iteration cap failure")
	const seed = 4242
	g, err := grid.New(refelem.Hex20Kind, []int{2, 2, 2}, []float64{1, 1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	el, err := material.NewElasticIsotropic(3, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	tr, err := material.NewTransportIsotropic(3, 1.5)
	if err != nil {
		tst.Fatalf("NewTransportIsotropic failed: %v", err)
	}
	d := make([][]float64, 3)
	for i := range d {
		d[i] = make([]float64, 6)
		for j := range d[i] {
			d[i][j] = 0.02
		}
	}
	piezoMat, err := material.NewPiezo(el, tr, d)
	if err != nil {
		tst.Fatalf("NewPiezo failed: %v", err)
	}
	pol := policy.NewPiezo(3, piezoMat)
	s, err := New(g, pol)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	opts := Options{MaxIterations: 2000, Tolerance: 1e-6, Fields: Total}
	res, err := s.Solve(opts)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	c := res.Tensor["c"]
	eps := res.Tensor["eps"]
	if !isSymmetric(c, 1e-6) {
		tst.Errorf("c_bar not symmetric")
	}
	if !isPositiveDefinite(c) {
		tst.Errorf("c_bar not positive definite")
	}
	if !isSymmetric(eps, 1e-6) {
		tst.Errorf("eps_bar not symmetric")
	}
	if !isPositiveDefinite(eps) {
		tst.Errorf("eps_bar not positive definite")
	}

	voigt := material.VoigtAverage(g.Densities(), el.C)
	reuss := material.ReussAverage(g.Densities(), el.C)
	trC, trV, trR := material.Trace(c), material.Trace(voigt), material.Trace(reuss)
	if trC > trV+1e-4 {
		tst.Errorf("tr(c_bar)=%g exceeds Voigt bound %g", trC, trV)
	}
	if trC < trR-1e-4 {
		tst.Errorf("tr(c_bar)=%g below Reuss bound %g", trC, trR)
	}

	g2, err := grid.New(refelem.Hex20Kind, []int{2, 2, 2}, []float64{1, 1, 1})
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	if err := g2.SetDensitiesRandom(seed); err != nil {
		tst.Fatalf("SetDensitiesRandom failed: %v", err)
	}
	if err := g2.Translate([]int{1, 1, 1}); err != nil {
		tst.Fatalf("Translate failed: %v", err)
	}
	pol2 := policy.NewPiezo(3, piezoMat)
	s2, err := New(g2, pol2)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res2, err := s2.Solve(opts)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	denseEqual(tst, "c_bar translational invariance", res2.Tensor["c"], c, 1e-4)

	starved := Options{MaxIterations: 1, Tolerance: 1e-12, Fields: Total}
	_, err = s.Solve(starved)
	if err == nil {
		tst.Fatalf("expected a solver failure when starved of iterations")
	}
	if !errs.Is(err, errs.SolverFailure) {
		tst.Errorf("expected SolverFailure, got %v", err)
	}
}
