// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import "github.com/cpmech/gosl/io"

// Eval evaluates the residuals of the current state without updating it
type Eval struct {
	Dom *Domain
}

// add solver to factory
func init() {
	allocators["eval"] = func(dom *Domain) Solver { return &Eval{Dom: dom} }
}

// Run evaluates eq_bet and eq_vu at all points
func (o *Eval) Run(verbose bool) (err error) {
	err = o.Dom.Residuals()
	if err != nil {
		return
	}
	sum := &o.Dom.Sum
	sum.Iters = 1
	sum.Converged = true
	if verbose {
		io.Pf("> max |eq_bet| = %g  max |eq_vu| = %g\n", sum.ResBet, sum.ResVu)
	}
	return
}
