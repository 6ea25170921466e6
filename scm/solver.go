// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import "github.com/cpmech/gosl/chk"

// Solver implements the outer iterative solver (geometry/flow loop)
type Solver interface {
	Run(verbose bool) (err error)
}

// Summary records the outcome of a solver run
type Summary struct {
	Iters     int     // number of iterations performed
	Converged bool    // tolerances were met
	ResPos    float64 // last relative change of meridional velocity
	ResMf     float64 // last relative mass flow error among stations
	ResBet    float64 // last max |eq_bet|
	ResVu     float64 // last max |eq_vu|
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain) Solver)

// NewSolver allocates the solver named name acting on dom
func NewSolver(name string, dom *Domain) (Solver, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", name)
	}
	return alloc(dom), nil
}
