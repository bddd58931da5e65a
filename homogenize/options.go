// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package homogenize drives the periodic-cell solve: for each
// macroscopic loading direction, it builds the macroscopic field,
// assembles the reduced source, solves the reduced system with
// preconditioned conjugate gradient, expands the correction back to the
// full standard-node field, and assembles the homogenized tensor by the
// Hill–Mandel lemma.
package homogenize

// FieldSave is a bitmask selecting which nodal field snapshots a solve
// retains in its result.
type FieldSave int

const (
	Total FieldSave = 1 << iota
	Macro
	Micro
)

// Has reports whether bit is set in f, using true bitwise AND.
func (f FieldSave) Has(bit FieldSave) bool { return f&bit != 0 }

// Options configures one solve: the PCG iteration cap and convergence
// tolerance, and which nodal fields to retain.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Fields        FieldSave
}

// DefaultOptions returns maxIterations=1000, tolerance=1e-6, Fields=Total.
func DefaultOptions() Options {
	return Options{MaxIterations: 1000, Tolerance: 1e-6, Fields: Total}
}
