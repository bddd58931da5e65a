// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

func (g *Grid) buildQuad8() {
	nx, ny := g.res[0], g.res[1]
	lx, ly := g.size[0], g.size[1]
	dx, dy := lx/float64(nx), ly/float64(ny)

	numCorners := (nx + 1) * (ny + 1)
	numXmid := nx * (ny + 1)
	numYmid := (nx + 1) * ny
	g.numStd = numCorners + numXmid + numYmid
	g.numPer = 3 * nx * ny

	cornerStd := func(a, b int) int { return b*(nx+1) + a }
	xmidStd := func(i, b int) int { return numCorners + b*nx + i }
	ymidStd := func(a, j int) int { return numCorners + numXmid + j*(nx+1) + a }

	cornerPer := func(a, b int) int { return mod(b, ny)*nx + mod(a, nx) }
	xmidPer := func(i, b int) int { return nx*ny + mod(b, ny)*nx + i }
	ymidPer := func(a, j int) int { return 2*nx*ny + j*nx + mod(a, nx) }

	g.nodeCoords = make([][]float64, g.numStd)
	for b := 0; b <= ny; b++ {
		for a := 0; a <= nx; a++ {
			g.nodeCoords[cornerStd(a, b)] = []float64{float64(a) * dx, float64(b) * dy}
		}
	}
	for b := 0; b <= ny; b++ {
		for i := 0; i < nx; i++ {
			g.nodeCoords[xmidStd(i, b)] = []float64{(float64(i) + 0.5) * dx, float64(b) * dy}
		}
	}
	for j := 0; j < ny; j++ {
		for a := 0; a <= nx; a++ {
			g.nodeCoords[ymidStd(a, j)] = []float64{float64(a) * dx, (float64(j) + 0.5) * dy}
		}
	}

	ne := nx * ny
	g.stdElems = make([][]int, ne)
	g.perElems = make([][]int, ne)
	for ej := 0; ej < ny; ej++ {
		for ei := 0; ei < nx; ei++ {
			e := ej*nx + ei
			std := []int{
				cornerStd(ei, ej), cornerStd(ei+1, ej), cornerStd(ei+1, ej+1), cornerStd(ei, ej+1),
				xmidStd(ei, ej), ymidStd(ei+1, ej), xmidStd(ei, ej+1), ymidStd(ei, ej),
			}
			per := []int{
				cornerPer(ei, ej), cornerPer(ei+1, ej), cornerPer(ei+1, ej+1), cornerPer(ei, ej+1),
				xmidPer(ei, ej), ymidPer(ei+1, ej), xmidPer(ei, ej+1), ymidPer(ei, ej),
			}
			g.stdElems[e] = std
			g.perElems[e] = per
		}
	}
}
