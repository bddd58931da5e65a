// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/homogen/density"
	"github.com/cpmech/homogen/errs"
)

// SetDensitiesFromCSV loads element densities from a CSV file via the
// density package's documented 2D convention (spec §4.2/§6). 3D grids are
// not supported: the CSV convention in the source lineage is 2D-only and
// this module does not invent a 3D extension (see DESIGN.md, Open Question
// 1).
func (g *Grid) SetDensitiesFromCSV(path string) error {
	if g.dim != 2 {
		return errs.InvalidArg("grid: CSV density loading is only defined for 2D grids")
	}
	rho, err := density.LoadCSV(path, g.res[0], g.res[1])
	if err != nil {
		return err
	}
	return g.SetDensitiesFromSlice(rho)
}
