// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/homogen/errs"
	"github.com/cpmech/homogen/refelem"
)

// SetDensitiesFromSlice replaces the whole density array. The slice must be
// row-major (x fastest, then y, then z) with length NumElements(); each
// value must lie in [0,1] and is clamped up to NumericalZero if below it.
func (g *Grid) SetDensitiesFromSlice(rho []float64) error {
	if len(rho) != len(g.density) {
		return errs.InvalidArg("grid: density slice has length %d, want %d", len(rho), len(g.density))
	}
	for i, v := range rho {
		if v < 0 || v > 1 {
			return errs.InvalidArg("grid: density[%d]=%g out of range [0,1]", i, v)
		}
	}
	for i, v := range rho {
		if v < NumericalZero {
			v = NumericalZero
		}
		g.density[i] = v
	}
	return nil
}

// SetDensitiesConstant sets every element's density to rho.
func (g *Grid) SetDensitiesConstant(rho float64) error {
	rhos := make([]float64, len(g.density))
	for i := range rhos {
		rhos[i] = rho
	}
	return g.SetDensitiesFromSlice(rhos)
}

// SetDensitiesZeros sets every element's density to (effectively) zero.
func (g *Grid) SetDensitiesZeros() error { return g.SetDensitiesConstant(0) }

// SetDensitiesOnes sets every element's density to one (fully solid cell).
func (g *Grid) SetDensitiesOnes() error { return g.SetDensitiesConstant(1) }

// SetDensitiesRandom fills the density array with independent uniform draws
// in [0,1] from a seeded generator, for reproducible microstructures.
func (g *Grid) SetDensitiesRandom(seed int) error {
	rnd.Init(seed)
	rhos := make([]float64, len(g.density))
	for i := range rhos {
		rhos[i] = rnd.Float64()
	}
	return g.SetDensitiesFromSlice(rhos)
}

// DensityFunc is the density-from-function callback: given the physical
// coordinates of a quadrature point, it returns a density in [0,1].
type DensityFunc func(x []float64) float64

// SetDensitiesFromFunc sets each element's density to
//
//	∫ f(x) |detJ| dΩ̂ / measureₑ
//
// integrated over the reference element and transformed through the
// element's own nodes. It fails if any sampled value of f lies outside
// [0,1].
func (g *Grid) SetDensitiesFromFunc(f DensityFunc) error {
	rhos := make([]float64, g.NumElements())
	for e := 0; e < g.NumElements(); e++ {
		nodes, err := g.ElementNodes(e)
		if err != nil {
			return err
		}
		var integral, measure float64
		for _, ip := range g.elem.Quadrature() {
			N := g.elem.ShapeFunctions(ip.Xi)
			grad := g.elem.GradShapeFunctions(ip.Xi)
			_, _, detJ := refelem.Jacobian(grad, nodes)
			x := make([]float64, g.dim)
			for d := 0; d < g.dim; d++ {
				var s float64
				for k, n := range N {
					s += n * nodes.At(k, d)
				}
				x[d] = s
			}
			fx := f(x)
			if fx < 0 || fx > 1 {
				return errs.InvalidArg("grid: density function value %g at x=%v out of range [0,1]", fx, x)
			}
			w := ip.W * absf(detJ)
			integral += fx * w
			measure += w
		}
		rhos[e] = integral / measure
	}
	return g.SetDensitiesFromSlice(rhos)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
