// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homogenize

import "gonum.org/v1/gonum/mat"

// LoadingResult carries the requested nodal-field snapshots for one
// macroscopic loading direction, keyed by the policy's field names
// ("u", "phi", ...).
type LoadingResult struct {
	Total map[string]*mat.Dense
	Macro map[string]*mat.Dense
	Micro map[string]*mat.Dense
}

// Result is the outcome of one periodic-cell solve: the homogenized
// tensor(s), keyed by the policy's tensor names ("C", "K", "c"/"eps"/"d"),
// and one LoadingResult per macroscopic loading direction.
type Result struct {
	Tensor  map[string]*mat.Dense
	Loading []LoadingResult
}
