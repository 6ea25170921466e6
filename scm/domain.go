// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/ana"
	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/eqn"
	"github.com/elac-safran/yams/geo"
	"github.com/elac-safran/yams/inp"
	"github.com/elac-safran/yams/msh"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Domain holds the grid, its geometry and the flow state of one case
type Domain struct {

	// input
	Case    *inp.Case    // [from Main] case data
	Grid    *msh.Grid    // grid with flow state
	Met     *msh.Metrics // metrics; nil with the "index" strategy
	Differ  dif.Differ   // differentiation strategy
	ShowMsg bool         // show messages

	// state
	Mf     float64   // target mass flow
	ResBet []float64 // [ni*nj] eq_bet @ all points
	ResVu  []float64 // [ni*nj] eq_vu @ all points
	Sum    Summary   // summary of last solver run
}

// NewDomain allocates a new domain, computes the geometry and sets the initial state
func NewDomain(c *inp.Case, verbose bool) (o *Domain, err error) {
	if c.Grid == nil {
		return nil, chk.Err("case %q has no grid", c.Key)
	}
	o = &Domain{Case: c, Grid: c.Grid, ShowMsg: verbose}
	err = c.ApplyBlades(o.Grid)
	if err != nil {
		return
	}
	err = o.SetGeometry()
	if err != nil {
		return
	}
	err = o.SetIniVals()
	return
}

// SetGeometry computes abscissas, metrics, angles, curvature and span fractions. It must be
// called again whenever the grid coordinates change
func (o *Domain) SetGeometry() (err error) {
	o.Differ, o.Met, err = geo.Setup(o.Grid, o.Case.Data.Strategy)
	if err != nil {
		return chk.Err("cannot compute geometry:\n%v", err)
	}
	o.SetSpan()
	if o.ShowMsg {
		io.Pf("> Geometry of %d×%d grid computed with %q strategy\n", o.Grid.Ni, o.Grid.Nj, o.Case.Data.Strategy)
	}
	return
}

// SetSpan sets the span fraction q = l/l_shroud at all points
func (o *Domain) SetSpan() {
	g := o.Grid
	for i := 0; i < g.Ni; i++ {
		span := g.At(i, g.Nj-1).L
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			if span > 0 {
				p.Q = p.L / span
			} else {
				p.Q = 0
			}
		}
	}
}

// SetIniVals sets the uniform inlet state at all points, the blade kinematics and the
// target mass flow
func (o *Domain) SetIniVals() error {
	in := &o.Case.Inlet
	if in.Ga <= 1 || in.Rg <= 0 || in.Tt <= 0 || in.Pt <= 0 {
		return chk.Err("inlet state is invalid: ga=%g rg=%g tt=%g pt=%g", in.Ga, in.Rg, in.Tt, in.Pt)
	}
	if in.Vm <= eqn.VmMin {
		return chk.Err("inlet meridional velocity must be greater than %g; vm=%g", eqn.VmMin, in.Vm)
	}
	var gas ana.PerfectGas
	gas.Init(in.Ga, in.Rg)
	ts, ps, rho := gas.Static(in.Tt, in.Pt, math.Hypot(in.Vm, in.Vu))
	if ts <= 0 {
		return chk.Err("inlet velocity is too large: static temperature = %g", ts)
	}
	o.Grid.Apply(func(p *msh.Point) {
		p.Vm = in.Vm
		p.Vu = in.Vu
		p.Bet = math.Atan2(in.Vu-p.Omg*p.Y, in.Vm)
		p.Eps = in.Eps
		p.Th = in.Th
		p.Ga = gas.Ga
		p.Cp = gas.Cp
		p.Tt = in.Tt
		p.Pt = in.Pt
		p.Ts = ts
		p.Ps = ps
		p.Rho = rho
		p.H = gas.Cp * in.Tt
		p.S = 0
	})
	o.SetKinematics()

	// mass flow
	o.Mf = in.Mf
	if o.Mf <= 0 {
		o.Mf = o.MassFlow(0)
	}
	if o.Mf <= 0 {
		return chk.Err("mass flow must be positive; mf=%g", o.Mf)
	}
	if o.ShowMsg {
		io.Pf("> Initial state set: mf = %g\n", o.Mf)
	}
	return nil
}

// SetKinematics sets swirl and relative flow angles consistent with the current Vm.
// Outside blade rows, r・Vu is conserved along streamlines. Inside blade rows:
//   DIRECT          -- β is kept and Vu = ω・r + Vm・tanβ
//   DESIGN_BETA_OUT -- β = b_out(q) from the stacking line to the exit; Vu as DIRECT
//   DESIGN_PHI      -- Vu is transported as outside blade rows
// Rothalpy is updated afterwards. Stations are processed in order
func (o *Domain) SetKinematics() {
	g := o.Grid
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			bld := o.blade(p.IB)
			mode := inp.ModeDesignPhi
			if bld != nil {
				mode = bld.Mode
			}
			switch {
			case bld != nil && mode == inp.ModeDesignBetaOut && i >= bld.Is:
				p.Bet = bld.BetaOut(p.Q)
				p.Vu = p.Omg*p.Y + p.Vm*math.Tan(p.Bet)
			case bld != nil && mode != inp.ModeDesignPhi:
				p.Vu = p.Omg*p.Y + p.Vm*math.Tan(p.Bet)
			default:
				if i > 0 && p.Y > 0 {
					p.Vu = eqn.RVu(g.At(i-1, j)) / p.Y
				}
				p.Bet = math.Atan2(p.Vu-p.Omg*p.Y, p.Vm)
			}
			p.I = eqn.Rothalpy(p)
		}
	}
}

// MassFlow computes the mass flow through station i
func (o *Domain) MassFlow(i int) float64 {
	g := o.Grid
	l := make([]float64, g.Nj)
	mf := make([]float64, g.Nj)
	for j := 0; j < g.Nj; j++ {
		p := g.At(i, j)
		l[j] = p.L
		mf[j] = eqn.MassFlow(p)
	}
	return integrate.Trapezoidal(l, mf)
}

// Residuals refreshes the streamwise caches and evaluates eq_bet and eq_vu at all points.
// The grid is not modified apart from the caches
func (o *Domain) Residuals() (err error) {
	g := o.Grid
	err = eqn.CheckFlowAngle(g)
	if err != nil {
		return
	}
	err = eqn.UpdateCaches(g, o.Differ)
	if err != nil {
		return
	}
	if len(o.ResBet) != len(g.Pts) {
		o.ResBet = make([]float64, len(g.Pts))
		o.ResVu = make([]float64, len(g.Pts))
	}
	err = g.ForEachRow(true, func(i int) error {
		for j := 0; j < g.Nj; j++ {
			c := eqn.Assemble(g, o.Differ, i, j)
			Vm := g.At(i, j).Vm
			o.ResBet[i*g.Nj+j] = c.Bet().Eval(Vm)
			o.ResVu[i*g.Nj+j] = c.Vu().Eval(Vm)
		}
		return nil
	})
	if err != nil {
		return
	}
	o.Sum.ResBet = floats.Norm(o.ResBet, math.Inf(1))
	o.Sum.ResVu = floats.Norm(o.ResVu, math.Inf(1))
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// blade returns the blade row with index ib or nil
func (o *Domain) blade(ib int) *inp.BladeInfo {
	if ib < 0 || ib >= len(o.Case.Blades) {
		return nil
	}
	return o.Case.Blades[ib]
}
