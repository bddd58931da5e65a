// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/homogen/grid"
	"github.com/cpmech/homogen/kernel"
	"github.com/cpmech/homogen/material"
	"github.com/cpmech/homogen/operator"
)

// Elastic is the linear-elasticity physics policy.
type Elastic struct {
	Dim int
	Mat *material.Elastic
}

func (p *Elastic) Kernel() kernel.Kernel   { return &kernel.Elastic{Dim: p.Dim, Mat: p.Mat} }
func (p *Elastic) Traits() operator.Traits { return &operator.ElasticTraits{Dim: p.Dim} }

// BuildMacroField builds X̄ with one row pair (2D) or triple (3D) per
// node: column q carries the displacement field whose B-matrix image is
// the unit macroscopic strain e_q.
func (p *Elastic) BuildMacroField(g *grid.Grid) (*mat.Dense, error) {
	numNodes := g.NumNodes()
	voigt := material.VoigtSize(p.Dim)
	X := mat.NewDense(numNodes*p.Dim, voigt, nil)
	for i := 0; i < numNodes; i++ {
		coords, err := g.Node(i)
		if err != nil {
			return nil, err
		}
		if p.Dim == 2 {
			x, y := coords[0], coords[1]
			X.Set(2*i, 0, x)
			X.Set(2*i+1, 1, y)
			X.Set(2*i, 2, y/2)
			X.Set(2*i+1, 2, x/2)
		} else {
			x, y, z := coords[0], coords[1], coords[2]
			X.Set(3*i, 0, x)
			X.Set(3*i+1, 1, y)
			X.Set(3*i+2, 2, z)
			X.Set(3*i, 3, y/2)
			X.Set(3*i+1, 3, x/2)
			X.Set(3*i, 4, z/2)
			X.Set(3*i+2, 4, x/2)
			X.Set(3*i+1, 5, z/2)
			X.Set(3*i+2, 5, y/2)
		}
	}
	return X, nil
}

func (p *Elastic) SplitTensor(mbar *mat.Dense) map[string]*mat.Dense {
	return map[string]*mat.Dense{"C": mbar}
}

func (p *Elastic) SplitNodalField(full []float64, numNodes int) map[string]*mat.Dense {
	u := mat.NewDense(numNodes, p.Dim, nil)
	for i := 0; i < numNodes; i++ {
		for d := 0; d < p.Dim; d++ {
			u.Set(i, d, full[i*p.Dim+d])
		}
	}
	return map[string]*mat.Dense{"u": u}
}
