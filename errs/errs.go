// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs implements the error taxonomy used across the homogenization
// engine. All operations surface failures as immediate, typed errors; there
// is no retry and no partial result on failure.
package errs

import "github.com/cpmech/gosl/io"

// Kind classifies a homogenization error.
type Kind int

const (
	// InvalidArgument marks constructor-time violations: non-positive
	// resolution/size, out-of-range material parameters, density outside
	// [0,1], mismatched sizes, a density-from-function value out of range.
	InvalidArgument Kind = iota

	// OutOfRange marks indexing a node or element beyond the grid.
	OutOfRange

	// IOError marks a file that cannot be opened or read.
	IOError

	// ParseError marks CSV content that is non-numeric or malformed.
	ParseError

	// GeometryError marks a degenerate (detJ == 0) or inverted (detJ < 0)
	// element detected inside a kernel.
	GeometryError

	// SolverFailure marks non-convergence or an internal numerical issue
	// in the iterative solver.
	SolverFailure
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfRange:
		return "OutOfRange"
	case IOError:
		return "IOError"
	case ParseError:
		return "ParseError"
	case GeometryError:
		return "GeometryError"
	case SolverFailure:
		return "SolverFailure"
	}
	return "Unknown"
}

// Error is the concrete error type returned by this module. It carries a
// Kind so callers can switch on failure category without parsing messages.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// new_ builds an *Error with a gosl/io-formatted message, mirroring the
// teacher's chk.Err("...", args...) idiom.
func new_(kind Kind, format string, prm ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(format, prm...)}
}

// InvalidArg returns an InvalidArgument error.
func InvalidArg(format string, prm ...interface{}) error { return new_(InvalidArgument, format, prm...) }

// OutOfRng returns an OutOfRange error.
func OutOfRng(format string, prm ...interface{}) error { return new_(OutOfRange, format, prm...) }

// IO returns an IOError.
func IO(format string, prm ...interface{}) error { return new_(IOError, format, prm...) }

// Parse returns a ParseError.
func Parse(format string, prm ...interface{}) error { return new_(ParseError, format, prm...) }

// Geometry returns a GeometryError.
func Geometry(format string, prm ...interface{}) error { return new_(GeometryError, format, prm...) }

// Solver returns a SolverFailure.
func Solver(format string, prm ...interface{}) error { return new_(SolverFailure, format, prm...) }

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
