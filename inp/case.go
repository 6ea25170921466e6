// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a case (.json) file and grid (.vts) files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/msh"
)

// Data holds global data for one case
type Data struct {
	Desc     string `json:"desc"`     // description of case
	GridFile string `json:"grid"`     // grid (.vts) file path; relative to case file unless AbsPath
	AbsPath  bool   `json:"abspath"`  // grid filename is given in absolute path
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/yams
	Strategy string `json:"strategy"` // differentiation strategy: "metric" or "index"
}

// SolverData holds data for the outer iterative solver
type SolverData struct {
	Type      string  `json:"type"`        // solver type; e.g. "radeq" or "eval"
	MaxGeom   int     `json:"max_geom"`    // max number of iterations
	Eps       float64 `json:"eps"`         // numerical perturbation
	TolRelMf  float64 `json:"tol_rel_mf"`  // relative tolerance on mass flow
	TolRelPos float64 `json:"tol_rel_pos"` // relative tolerance on meridional velocity updates
	Relax     float64 `json:"relax"`       // relaxation factor applied to updates; 0 < relax ≤ 1
}

// readTopLevel overrides solver data with the keys max_geom, eps, tol_rel_mf and
// tol_rel_pos given at the top level of a case file
func (o *SolverData) readTopLevel(b []byte) error {
	var flat struct {
		MaxGeom   *int     `json:"max_geom"`
		Eps       *float64 `json:"eps"`
		TolRelMf  *float64 `json:"tol_rel_mf"`
		TolRelPos *float64 `json:"tol_rel_pos"`
	}
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	if flat.MaxGeom != nil {
		o.MaxGeom = *flat.MaxGeom
	}
	if flat.Eps != nil {
		o.Eps = *flat.Eps
	}
	if flat.TolRelMf != nil {
		o.TolRelMf = *flat.TolRelMf
	}
	if flat.TolRelPos != nil {
		o.TolRelPos = *flat.TolRelPos
	}
	return nil
}

// InletData holds the uniform inlet state used to initialise the flow
type InletData struct {
	Vm  float64 `json:"vm"`  // meridional velocity
	Vu  float64 `json:"vu"`  // swirl velocity
	Tt  float64 `json:"tt"`  // total temperature
	Pt  float64 `json:"pt"`  // total pressure
	Ga  float64 `json:"ga"`  // ratio of specific heats
	Rg  float64 `json:"rg"`  // gas constant
	Mf  float64 `json:"mf"`  // mass flow; 0 means computed from the initial state
	Th  float64 `json:"th"`  // tangential blockage angle
	Eps float64 `json:"eps"` // blade lean angle
}

// Case holds all case data
type Case struct {

	// input
	Data   Data         `json:"data"`         // global data
	Solver SolverData   `json:"solver"`       // solver data
	Inlet  InletData    `json:"inlet"`        // inlet state
	Blades []*BladeInfo `json:"bld_info_lst"` // blade rows

	// derived
	Key    string    `json:"-"` // case key; e.g. duct01.json => duct01
	DirOut string    `json:"-"` // directory to save results
	Grid   *msh.Grid `json:"-"` // the grid
}

// ReadCase reads all case data from a .json file and loads the grid
//  Input:
//   casefilepath -- case file path
//   readGrid     -- also read the grid file
func ReadCase(casefilepath string, readGrid bool) (o *Case, err error) {

	// read file
	b, err := os.ReadFile(casefilepath)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", casefilepath, err)
	}

	// decode with defaults
	o = new(Case)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal case file %q:\n%v", casefilepath, err)
	}
	err = o.Solver.readTopLevel(b)
	if err != nil {
		return nil, chk.Err("cannot unmarshal case file %q:\n%v", casefilepath, err)
	}

	// key and output directory
	dir := os.ExpandEnv(filepath.Dir(casefilepath))
	o.Key = io.FnKey(filepath.Base(casefilepath))
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/yams/" + o.Key
	}

	// derived data
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("invalid case file %q:\n%v", casefilepath, err)
	}

	// grid
	if readGrid {
		if o.Data.GridFile == "" {
			return nil, chk.Err("case file %q does not define a grid file", casefilepath)
		}
		fn := o.Data.GridFile
		if !o.Data.AbsPath {
			fn = filepath.Join(dir, fn)
		}
		o.Grid, err = ReadVts(fn)
		if err != nil {
			return nil, err
		}
	}
	return
}

// SetDefault sets default values
func (o *Case) SetDefault() {
	o.Data.Strategy = dif.StrategyMetric
	o.Solver.Type = "radeq"
	o.Solver.MaxGeom = 200
	o.Solver.Eps = 1e-5
	o.Solver.TolRelMf = 1e-5
	o.Solver.TolRelPos = 1e-5
	o.Solver.Relax = 0.5
	o.Inlet.Ga = 1.4
	o.Inlet.Rg = 287.04
}

// PostProcess checks the just read data and computes derived values
func (o *Case) PostProcess() (err error) {
	if o.Data.Strategy != dif.StrategyMetric && o.Data.Strategy != dif.StrategyIndex {
		return chk.Err("strategy %q is invalid; use %q or %q", o.Data.Strategy, dif.StrategyMetric, dif.StrategyIndex)
	}
	if o.Solver.MaxGeom < 1 {
		return chk.Err("max_geom must be positive; %d is invalid", o.Solver.MaxGeom)
	}
	if o.Solver.TolRelMf <= 0 || o.Solver.TolRelPos <= 0 {
		return chk.Err("tolerances must be positive: tol_rel_mf=%g tol_rel_pos=%g", o.Solver.TolRelMf, o.Solver.TolRelPos)
	}
	if o.Solver.Relax <= 0 || o.Solver.Relax > 1 {
		return chk.Err("relax must be in (0,1]; %g is invalid", o.Solver.Relax)
	}

	// blades are indexed by iB
	sort.Slice(o.Blades, func(a, b int) bool { return o.Blades[a].IB < o.Blades[b].IB })
	for k, bld := range o.Blades {
		if bld.IB != k {
			return chk.Err("blade indices must be 0,1,...,%d; found iB=%d", len(o.Blades)-1, bld.IB)
		}
		err = bld.PostProcess()
		if err != nil {
			return
		}
	}
	return
}

// GetInfo writes formatted information
func (o *Case) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// ApplyBlades sets the rotation speed and blade tag of all points of g in the range of
// each blade row. Points outside blade rows keep ω = 0 and iB = -1
func (o *Case) ApplyBlades(g *msh.Grid) error {
	for _, bld := range o.Blades {
		if bld.I2 >= g.Ni {
			return chk.Err("blade %q: i2=%d is out of grid with ni=%d", bld.Name, bld.I2, g.Ni)
		}
		for i := bld.I1; i <= bld.I2; i++ {
			for j := 0; j < g.Nj; j++ {
				p := g.At(i, j)
				p.IB = bld.IB
				p.Omg = bld.Omg
			}
		}
	}
	return nil
}
