// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "gonum.org/v1/gonum/mat"

// VoigtAverage returns the density-weighted arithmetic mean of base over a
// grid of elements sharing it (every element's tensor is ρᵢ·base): the
// upper bound on the homogenized tensor's trace.
func VoigtAverage(densities []float64, base *mat.Dense) *mat.Dense {
	mean := 0.0
	for _, rho := range densities {
		mean += rho
	}
	mean /= float64(len(densities))
	avg := mat.DenseCopyOf(base)
	avg.Scale(mean, avg)
	return avg
}

// ReussAverage returns the density-weighted harmonic mean of base: the
// lower bound on the homogenized tensor's trace.
func ReussAverage(densities []float64, base *mat.Dense) *mat.Dense {
	meanInv := 0.0
	for _, rho := range densities {
		meanInv += 1 / rho
	}
	meanInv /= float64(len(densities))
	avg := mat.DenseCopyOf(base)
	avg.Scale(1/meanInv, avg)
	return avg
}

// Trace returns the sum of diagonal entries of a square matrix.
func Trace(m *mat.Dense) float64 {
	n, _ := m.Dims()
	t := 0.0
	for i := 0; i < n; i++ {
		t += m.At(i, i)
	}
	return t
}
