// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

func (g *Grid) buildHex8() {
	nx, ny, nz := g.res[0], g.res[1], g.res[2]
	lx, ly, lz := g.size[0], g.size[1], g.size[2]
	dx, dy, dz := lx/float64(nx), ly/float64(ny), lz/float64(nz)

	g.numStd = (nx + 1) * (ny + 1) * (nz + 1)
	g.numPer = nx * ny * nz

	stdIdx := func(a, b, c int) int { return c*(nx+1)*(ny+1) + b*(nx+1) + a }
	perIdx := func(a, b, c int) int { return mod(c, nz)*nx*ny + mod(b, ny)*nx + mod(a, nx) }

	g.nodeCoords = make([][]float64, g.numStd)
	for c := 0; c <= nz; c++ {
		for b := 0; b <= ny; b++ {
			for a := 0; a <= nx; a++ {
				g.nodeCoords[stdIdx(a, b, c)] = []float64{float64(a) * dx, float64(b) * dy, float64(c) * dz}
			}
		}
	}

	ne := nx * ny * nz
	g.stdElems = make([][]int, ne)
	g.perElems = make([][]int, ne)
	for ek := 0; ek < nz; ek++ {
		for ej := 0; ej < ny; ej++ {
			for ei := 0; ei < nx; ei++ {
				e := ek*nx*ny + ej*nx + ei
				corners := [8][3]int{
					{ei, ej, ek}, {ei + 1, ej, ek}, {ei + 1, ej + 1, ek}, {ei, ej + 1, ek},
					{ei, ej, ek + 1}, {ei + 1, ej, ek + 1}, {ei + 1, ej + 1, ek + 1}, {ei, ej + 1, ek + 1},
				}
				std := make([]int, 8)
				per := make([]int, 8)
				for k, c := range corners {
					std[k] = stdIdx(c[0], c[1], c[2])
					per[k] = perIdx(c[0], c[1], c[2])
				}
				g.stdElems[e] = std
				g.perElems[e] = per
			}
		}
	}
}
