// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/homogen/errs"
)

func writeCSV(tst *testing.T, body string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "density.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func Test_LoadCSV_top_row_convention(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV row-0-is-top convention")
	// file row 0 (top) = [0.1, 0.2]; file row 1 (bottom) = [0.3, 0.4]
	path := writeCSV(tst, "0.1,0.2\n0.3,0.4\n")
	rho, err := LoadCSV(path, 2, 2)
	if err != nil {
		tst.Fatalf("LoadCSV failed: %v", err)
	}
	// grid row b=0 (bottom) should hold the file's last row.
	chk.Scalar(tst, "rho[0] (bottom-left)", 1e-15, rho[0], 0.3)
	chk.Scalar(tst, "rho[1] (bottom-right)", 1e-15, rho[1], 0.4)
	chk.Scalar(tst, "rho[2] (top-left)", 1e-15, rho[2], 0.1)
	chk.Scalar(tst, "rho[3] (top-right)", 1e-15, rho[3], 0.2)
}

func Test_LoadCSV_wrong_row_count(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV rejects wrong row count")
	path := writeCSV(tst, "0.1,0.2\n")
	_, err := LoadCSV(path, 2, 2)
	if !errs.Is(err, errs.InvalidArgument) {
		tst.Errorf("expected InvalidArgument, got %v", err)
	}
}

func Test_LoadCSV_wrong_column_count(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV rejects wrong column count")
	path := writeCSV(tst, "0.1,0.2,0.3\n0.4,0.5,0.6\n")
	_, err := LoadCSV(path, 2, 2)
	if !errs.Is(err, errs.InvalidArgument) {
		tst.Errorf("expected InvalidArgument, got %v", err)
	}
}

func Test_LoadCSV_out_of_range_value(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV rejects out-of-range value")
	path := writeCSV(tst, "1.5,0.2\n0.3,0.4\n")
	_, err := LoadCSV(path, 2, 2)
	if !errs.Is(err, errs.InvalidArgument) {
		tst.Errorf("expected InvalidArgument, got %v", err)
	}
}

func Test_LoadCSV_non_numeric_cell(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV rejects non-numeric cell")
	path := writeCSV(tst, "abc,0.2\n0.3,0.4\n")
	_, err := LoadCSV(path, 2, 2)
	if !errs.Is(err, errs.ParseError) {
		tst.Errorf("expected ParseError, got %v", err)
	}
}

func Test_LoadCSV_missing_file(tst *testing.T) {
	chk.PrintTitle("density: LoadCSV rejects a missing file")
	_, err := LoadCSV(filepath.Join(tst.TempDir(), "nope.csv"), 2, 2)
	if !errs.Is(err, errs.IOError) {
		tst.Errorf("expected IOError, got %v", err)
	}
}
