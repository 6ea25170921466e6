// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scm implements the streamline curvature method driver: it reads a case, computes
// the geometry of the grid, runs the outer iterations and writes the results
package scm

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/inp"
	"github.com/elac-safran/yams/out"
)

// Main holds all data for one streamline curvature simulation
type Main struct {
	Case    *inp.Case // case data
	Dom     *Domain   // grid, geometry and flow state
	Solver  Solver    // outer solver; e.g. "radeq" or "eval"
	ShowMsg bool      // show messages
	NoWrite bool      // do not write results files
}

// NewMain returns a new Main structure
//  Input:
//   casefilepath -- case (.json) filename including full path
//   verbose      -- show messages
func NewMain(casefilepath string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Case, err = inp.ReadCase(casefilepath, true)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Case (.json) file read\n")
		io.Pf("> Grid (.vts) file read: %d×%d points\n", o.Case.Grid.Ni, o.Case.Grid.Nj)
	}

	// allocate domain
	o.Dom, err = NewDomain(o.Case, verbose)
	if err != nil {
		return nil, err
	}

	// allocate solver
	o.Solver, err = NewSolver(o.Case.Solver.Type, o.Dom)
	if err != nil {
		return nil, err
	}
	return
}

// Run runs the simulation and writes the results
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %q solver\n", o.Case.Solver.Type)
	}

	// run
	return o.Solver.Run(o.ShowMsg)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit writes the results and prints the final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// write results even if the solver failed
	if !o.NoWrite {
		err = out.WriteVts(o.Dom.Grid, o.Case.DirOut, o.Case.Key)
		if err == nil && o.ShowMsg {
			io.Pf("> Results written to %s/%s.vts\n", o.Case.DirOut, o.Case.Key)
		}
	}

	// show final message
	if o.ShowMsg {
		sum := &o.Dom.Sum
		io.Pf("> Iterations = %d  max|eq_bet| = %g  max|eq_vu| = %g\n", sum.Iters, sum.ResBet, sum.ResVu)
		if prevErr == nil && err == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// previous error has precedence
	if prevErr != nil {
		err = prevErr
	}
	return
}
