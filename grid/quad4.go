// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

func (g *Grid) buildQuad4() {
	nx, ny := g.res[0], g.res[1]
	lx, ly := g.size[0], g.size[1]
	dx, dy := lx/float64(nx), ly/float64(ny)

	g.numStd = (nx + 1) * (ny + 1)
	g.numPer = nx * ny

	stdIdx := func(a, b int) int { return b*(nx+1) + a }
	perIdx := func(a, b int) int { return mod(b, ny)*nx + mod(a, nx) }

	g.nodeCoords = make([][]float64, g.numStd)
	for b := 0; b <= ny; b++ {
		for a := 0; a <= nx; a++ {
			g.nodeCoords[stdIdx(a, b)] = []float64{float64(a) * dx, float64(b) * dy}
		}
	}

	ne := nx * ny
	g.stdElems = make([][]int, ne)
	g.perElems = make([][]int, ne)
	for ej := 0; ej < ny; ej++ {
		for ei := 0; ei < nx; ei++ {
			e := ej*nx + ei
			corners := [4][2]int{{ei, ej}, {ei + 1, ej}, {ei + 1, ej + 1}, {ei, ej + 1}}
			std := make([]int, 4)
			per := make([]int, 4)
			for k, c := range corners {
				std[k] = stdIdx(c[0], c[1])
				per[k] = perIdx(c[0], c[1])
			}
			g.stdElems[e] = std
			g.perElems[e] = per
		}
	}
}
