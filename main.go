// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/scm"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.Pf("\nYams -- streamline curvature meridional flow solver\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"case filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// analysis data
	analysis, err := scm.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot initialise simulation:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
