// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/kernel"
	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/refelem"
)

func buildElasticOperator(tst *testing.T, kind refelem.Kind, res []int) (*Operator, int) {
	size := make([]float64, len(res))
	for i := range size {
		size[i] = 1
	}
	g, err := grid.New(kind, res, size)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	dim := g.Dim()
	mat0, err := material.NewElasticIsotropic(dim, 1.0, 0.3, true)
	if err != nil {
		tst.Fatalf("NewElasticIsotropic failed: %v", err)
	}
	k := &kernel.Elastic{Dim: dim, Mat: mat0}
	nodes, err := g.ElementNodes(0)
	if err != nil {
		tst.Fatalf("ElementNodes failed: %v", err)
	}
	kref, _, err := k.Build(g.RefElement(), nodes)
	if err != nil {
		tst.Fatalf("kernel Build failed: %v", err)
	}
	traits := &ElasticTraits{Dim: dim}
	op, err := New(g, traits, kref)
	if err != nil {
		tst.Fatalf("operator.New failed: %v", err)
	}
	return op, op.NumReducedDofs()
}

func Test_operator_apply_symmetric(tst *testing.T) {
	chk.PrintTitle("operator: Apply is symmetric")
	op, n := buildElasticOperator(tst, refelem.Quad4Kind, []int{3, 2})

	full := mat.NewDense(n, n, nil)
	x := make([]float64, n)
	y := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range x {
			x[i] = 0
		}
		x[j] = 1
		op.Apply(x, y)
		for i := 0; i < n; i++ {
			full.Set(i, j, y[i])
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			chk.Scalar(tst, "K[i][j]==K[j][i]", 1e-9, full.At(i, j), full.At(j, i))
		}
	}
}

func Test_operator_apply_psd(tst *testing.T) {
	chk.PrintTitle("operator: Apply is positive semidefinite")
	op, n := buildElasticOperator(tst, refelem.Quad4Kind, []int{2, 2})

	probes := [][]float64{
		ones(n),
		alternating(n),
		ramp(n),
	}
	y := make([]float64, n)
	for _, x := range probes {
		op.Apply(x, y)
		var dot float64
		for i := range x {
			dot += x[i] * y[i]
		}
		if dot < -1e-8 {
			tst.Errorf("x^T K x = %g, expected >= 0", dot)
		}
	}
}

func Test_operator_matches_assembled_matrix(tst *testing.T) {
	chk.PrintTitle("operator: Apply agrees with the matrix assembled by probing")
	op, n := buildElasticOperator(tst, refelem.Quad4Kind, []int{2, 2})

	// assemble the full matrix one basis vector at a time (a reference
	// path distinct from applying Apply directly to an arbitrary vector).
	full := mat.NewDense(n, n, nil)
	e := make([]float64, n)
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		op.Apply(e, col)
		for i := 0; i < n; i++ {
			full.Set(i, j, col[i])
		}
	}

	x := ramp(n)
	y := make([]float64, n)
	op.Apply(x, y)

	xv := mat.NewVecDense(n, x)
	var want mat.VecDense
	want.MulVec(full, xv)

	for i := 0; i < n; i++ {
		chk.Scalar(tst, "Apply(x) vs assembled-matrix * x", 1e-9, y[i], want.AtVec(i))
	}
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func alternating(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		if i%2 == 0 {
			v[i] = 1
		} else {
			v[i] = -1
		}
	}
	return v
}

func ramp(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i+1) / float64(n)
	}
	return v
}
