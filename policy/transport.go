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

// Transport is the linear scalar-transport physics policy. Sign encodes
// the gradient-to-potential convention shared with the kernel's B-matrix.
type Transport struct {
	Dim  int
	Mat  *material.Transport
	Sign float64
}

func (p *Transport) Kernel() kernel.Kernel {
	return &kernel.Transport{Dim: p.Dim, Mat: p.Mat, Sign: p.Sign}
}
func (p *Transport) Traits() operator.Traits { return &operator.TransportTraits{} }

// BuildMacroField builds X̄ with row i = Sign·coords(i): the node-value
// field whose gradient, scaled by Sign, is the unit direction e_d.
func (p *Transport) BuildMacroField(g *grid.Grid) (*mat.Dense, error) {
	numNodes := g.NumNodes()
	X := mat.NewDense(numNodes, p.Dim, nil)
	for i := 0; i < numNodes; i++ {
		coords, err := g.Node(i)
		if err != nil {
			return nil, err
		}
		for d := 0; d < p.Dim; d++ {
			X.Set(i, d, p.Sign*coords[d])
		}
	}
	return X, nil
}

func (p *Transport) SplitTensor(mbar *mat.Dense) map[string]*mat.Dense {
	return map[string]*mat.Dense{"K": mbar}
}

func (p *Transport) SplitNodalField(full []float64, numNodes int) map[string]*mat.Dense {
	phi := mat.NewDense(numNodes, 1, nil)
	for i := 0; i < numNodes; i++ {
		phi.Set(i, 0, full[i])
	}
	return map[string]*mat.Dense{"phi": phi}
}
