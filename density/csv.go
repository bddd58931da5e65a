// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package density implements the external density-loader boundary: reading
// a rectangular numeric CSV grid into the row-major, x-fastest density
// layout the core expects. This is a file-format collaborator (spec §1/§6),
// not part of the homogenization core itself.
//
// No library in the retrieved example pack addresses CSV parsing, so this
// uses the standard library's encoding/csv — the one ambient concern in
// this module with no ecosystem analogue in the pack (see DESIGN.md).
package density

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/cpmech/homogen/errs"
)

// LoadCSV reads a CSV file with ny rows and nx comma-separated numeric
// columns, values in [0,1], row 0 of the file corresponding to the TOP row
// of the grid (origin at bottom-left). It returns the row-major, x-fastest
// density slice of length nx*ny that grid.Grid.SetDensitiesFromSlice
// expects. 3D grids are out of scope for this loader (see DESIGN.md).
func LoadCSV(path string, nx, ny int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.IO("density: cannot open %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errs.Parse("density: cannot parse %q: %v", path, err)
	}
	if len(records) != ny {
		return nil, errs.InvalidArg("density: %q has %d rows, want %d (=ny)", path, len(records), ny)
	}

	rho := make([]float64, nx*ny)
	for fileRow, rec := range records {
		if len(rec) != nx {
			return nil, errs.InvalidArg("density: %q row %d has %d columns, want %d (=nx)", path, fileRow, len(rec), nx)
		}
		// file row 0 is the TOP of the grid: grid row b = ny-1-fileRow
		b := ny - 1 - fileRow
		for a, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errs.Parse("density: %q row %d col %d: non-numeric cell %q", path, fileRow, a, cell)
			}
			if v < 0 || v > 1 {
				return nil, errs.InvalidArg("density: %q row %d col %d: value %g out of range [0,1]", path, fileRow, a, v)
			}
			rho[b*nx+a] = v
		}
	}
	return rho, nil
}
