// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

func (g *Grid) buildHex20() {
	nx, ny, nz := g.res[0], g.res[1], g.res[2]
	lx, ly, lz := g.size[0], g.size[1], g.size[2]
	dx, dy, dz := lx/float64(nx), ly/float64(ny), lz/float64(nz)

	numCorners := (nx + 1) * (ny + 1) * (nz + 1)
	numXmid := nx * (ny + 1) * (nz + 1)
	numYmid := (nx + 1) * ny * (nz + 1)
	g.numStd = numCorners + numXmid + numYmid + (nx+1)*(ny+1)*nz
	g.numPer = 4 * nx * ny * nz

	cornerStd := func(a, b, c int) int { return c*(nx+1)*(ny+1) + b*(nx+1) + a }
	xmidStd := func(i, b, c int) int { return numCorners + c*nx*(ny+1) + b*nx + i }
	ymidStd := func(a, j, c int) int { return numCorners + numXmid + c*(nx+1)*ny + j*(nx+1) + a }
	zmidStd := func(a, b, k int) int { return numCorners + numXmid + numYmid + k*(nx+1)*(ny+1) + b*(nx+1) + a }

	npxy := nx * ny * nz
	cornerPer := func(a, b, c int) int { return mod(c, nz)*nx*ny + mod(b, ny)*nx + mod(a, nx) }
	xmidPer := func(i, b, c int) int { return npxy + mod(c, nz)*nx*ny + mod(b, ny)*nx + i }
	ymidPer := func(a, j, c int) int { return 2*npxy + mod(c, nz)*nx*ny + j*nx + mod(a, nx) }
	zmidPer := func(a, b, k int) int { return 3*npxy + k*nx*ny + mod(b, ny)*nx + mod(a, nx) }

	g.nodeCoords = make([][]float64, g.numStd)
	for c := 0; c <= nz; c++ {
		for b := 0; b <= ny; b++ {
			for a := 0; a <= nx; a++ {
				g.nodeCoords[cornerStd(a, b, c)] = []float64{float64(a) * dx, float64(b) * dy, float64(c) * dz}
			}
		}
	}
	for c := 0; c <= nz; c++ {
		for b := 0; b <= ny; b++ {
			for i := 0; i < nx; i++ {
				g.nodeCoords[xmidStd(i, b, c)] = []float64{(float64(i) + 0.5) * dx, float64(b) * dy, float64(c) * dz}
			}
		}
	}
	for c := 0; c <= nz; c++ {
		for j := 0; j < ny; j++ {
			for a := 0; a <= nx; a++ {
				g.nodeCoords[ymidStd(a, j, c)] = []float64{float64(a) * dx, (float64(j) + 0.5) * dy, float64(c) * dz}
			}
		}
	}
	for k := 0; k < nz; k++ {
		for b := 0; b <= ny; b++ {
			for a := 0; a <= nx; a++ {
				g.nodeCoords[zmidStd(a, b, k)] = []float64{float64(a) * dx, float64(b) * dy, (float64(k) + 0.5) * dz}
			}
		}
	}

	combos := [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

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
				std := make([]int, 0, 20)
				per := make([]int, 0, 20)
				for _, c := range corners {
					std = append(std, cornerStd(c[0], c[1], c[2]))
					per = append(per, cornerPer(c[0], c[1], c[2]))
				}
				// x-mid edges: (eta,zeta) combos, xi free at ei
				for _, cc := range combos {
					b := ej
					if cc[0] == 1 {
						b = ej + 1
					}
					c := ek
					if cc[1] == 1 {
						c = ek + 1
					}
					std = append(std, xmidStd(ei, b, c))
					per = append(per, xmidPer(ei, b, c))
				}
				// y-mid edges: (xi,zeta) combos, eta free at ej
				for _, cc := range combos {
					a := ei
					if cc[0] == 1 {
						a = ei + 1
					}
					c := ek
					if cc[1] == 1 {
						c = ek + 1
					}
					std = append(std, ymidStd(a, ej, c))
					per = append(per, ymidPer(a, ej, c))
				}
				// z-mid edges: (xi,eta) combos, zeta free at ek
				for _, cc := range combos {
					a := ei
					if cc[0] == 1 {
						a = ei + 1
					}
					b := ej
					if cc[1] == 1 {
						b = ej + 1
					}
					std = append(std, zmidStd(a, b, ek))
					per = append(per, zmidPer(a, b, ek))
				}
				g.stdElems[e] = std
				g.perElems[e] = per
			}
		}
	}
}
