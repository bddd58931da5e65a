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

// Piezo is the linear piezoelectric physics policy. The electric
// gradient-sign convention is fixed at −1 to match kernel.Piezo.
type Piezo struct {
	Dim       int
	Mat       *material.Piezo
	elastic   Elastic
	transport Transport
}

// NewPiezo builds the piezoelectric policy.
func NewPiezo(dim int, m *material.Piezo) *Piezo {
	return &Piezo{
		Dim:       dim,
		Mat:       m,
		elastic:   Elastic{Dim: dim, Mat: m.Elastic},
		transport: Transport{Dim: dim, Mat: m.Transport, Sign: -1},
	}
}

func (p *Piezo) Kernel() kernel.Kernel   { return &kernel.Piezo{Dim: p.Dim, Mat: p.Mat} }
func (p *Piezo) Traits() operator.Traits { return operator.NewPiezoTraits(p.Dim) }

// BuildMacroField builds the block-diagonal concatenation of the elastic
// and transport macroscopic fields, with zero off-diagonal blocks.
func (p *Piezo) BuildMacroField(g *grid.Grid) (*mat.Dense, error) {
	Xu, err := p.elastic.BuildMacroField(g)
	if err != nil {
		return nil, err
	}
	Xphi, err := p.transport.BuildMacroField(g)
	if err != nil {
		return nil, err
	}
	uRows, uCols := Xu.Dims()
	phiRows, phiCols := Xphi.Dims()
	X := mat.NewDense(uRows+phiRows, uCols+phiCols, nil)
	X.Slice(0, uRows, 0, uCols).(*mat.Dense).Copy(Xu)
	X.Slice(uRows, uRows+phiRows, uCols, uCols+phiCols).(*mat.Dense).Copy(Xphi)
	return X, nil
}

// SplitTensor splits M̄ into c̄ = M̄[:V,:V], ε̄ = −M̄[V:,V:], d̄ = −M̄[V:,:V].
func (p *Piezo) SplitTensor(mbar *mat.Dense) map[string]*mat.Dense {
	voigt := material.VoigtSize(p.Dim)
	n, _ := mbar.Dims()
	c := mat.DenseCopyOf(mbar.Slice(0, voigt, 0, voigt))
	eps := mat.DenseCopyOf(mbar.Slice(voigt, n, voigt, n))
	eps.Scale(-1, eps)
	d := mat.DenseCopyOf(mbar.Slice(voigt, n, 0, voigt))
	d.Scale(-1, d)
	return map[string]*mat.Dense{"c": c, "eps": eps, "d": d}
}

func (p *Piezo) SplitNodalField(full []float64, numNodes int) map[string]*mat.Dense {
	numU := numNodes * p.Dim
	u := mat.NewDense(numNodes, p.Dim, nil)
	for i := 0; i < numNodes; i++ {
		for d := 0; d < p.Dim; d++ {
			u.Set(i, d, full[i*p.Dim+d])
		}
	}
	phi := mat.NewDense(numNodes, 1, nil)
	for i := 0; i < numNodes; i++ {
		phi.Set(i, 0, full[numU+i])
	}
	return map[string]*mat.Dense{"u": u, "phi": phi}
}
