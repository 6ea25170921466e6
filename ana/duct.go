// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/elac-safran/yams/msh"
)

// AnnularDuct defines a straight annular duct between two radii
//
//   Rs  o-----o-----o-----o-----o   shroud  (j = nj-1)
//       |     |     |     |     |
//       o-----o-----o-----o-----o
//       |     |     |     |     |
//   Rh  o-----o-----o-----o-----o   hub     (j = 0)
//      X0                      X1
//       i = 0 ───────────▶ i = ni-1
//
type AnnularDuct struct {
	X0 float64 // inlet axial position
	X1 float64 // outlet axial position
	Rh float64 // hub radius
	Rs float64 // shroud radius
}

// Grid returns a ni×nj grid of the duct with evenly spaced stations and streamlines
func (o AnnularDuct) Grid(ni, nj int) (g *msh.Grid) {
	if o.X1 <= o.X0 || o.Rs <= o.Rh || o.Rh < 0 {
		chk.Panic("invalid annular duct: X0=%g X1=%g Rh=%g Rs=%g", o.X0, o.X1, o.Rh, o.Rs)
	}
	X := utl.LinSpace(o.X0, o.X1, ni)
	R := utl.LinSpace(o.Rh, o.Rs, nj)
	g = msh.NewGrid(ni, nj)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			g.Set(i, j, X[i], R[j])
			g.At(i, j).Q = float64(j) / float64(nj-1)
		}
	}
	return
}

// Bend defines a duct whose streamlines are concentric circular arcs centred at the
// origin. The flow turns clockwise from θ0 to θ1 (θ0 > θ1) between radii Rh and Rs;
// thus the curvature of a streamline with radius ρ is -1/ρ.
type Bend struct {
	Th0 float64 // initial angle
	Th1 float64 // final angle
	Rh  float64 // inner radius
	Rs  float64 // outer radius
}

// Grid returns a ni×nj grid of the bend
func (o Bend) Grid(ni, nj int) (g *msh.Grid) {
	if o.Th0 <= o.Th1 || o.Rs <= o.Rh || o.Rh <= 0 {
		chk.Panic("invalid bend: Th0=%g Th1=%g Rh=%g Rs=%g", o.Th0, o.Th1, o.Rh, o.Rs)
	}
	T := utl.LinSpace(o.Th0, o.Th1, ni)
	R := utl.LinSpace(o.Rh, o.Rs, nj)
	g = msh.NewGrid(ni, nj)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			g.Set(i, j, R[j]*math.Cos(T[i]), R[j]*math.Sin(T[i]))
		}
	}
	return
}

// Phi returns the streamline slope @ angular position θ
func (o Bend) Phi(θ float64) float64 {
	return θ - math.Pi/2
}

// Curvature returns the streamline curvature @ radius ρ
func (o Bend) Curvature(ρ float64) float64 {
	return -1.0 / ρ
}

// flow states /////////////////////////////////////////////////////////////////////////////////////

// UniformFlow defines a uniform axial flow of a perfect gas without swirl
type UniformFlow struct {
	Vm  float64 // meridional velocity
	Tt  float64 // total temperature
	Pt  float64 // total pressure
	Ga  float64 // ratio of specific heats; 0 means 1.4
	Rg  float64 // gas constant; 0 means 287.04
	S   float64 // entropy
	Omg float64 // rotation speed (used for rothalpy only)
}

// Set sets the flow state at all points of g
func (o UniformFlow) Set(g *msh.Grid) {
	o.set(g, func(p *msh.Point) float64 { return 0 })
}

// set sets the flow state using vu(p) as swirl distribution
func (o UniformFlow) set(g *msh.Grid, vu msh.Field) {
	var gas PerfectGas
	gas.Init(o.Ga, o.Rg)
	g.Apply(func(p *msh.Point) {
		p.Vm = o.Vm
		p.Vu = vu(p)
		p.Bet = math.Atan2(p.Vu-o.Omg*p.Y, o.Vm)
		p.Omg = o.Omg
		p.Ga = gas.Ga
		p.Cp = gas.Cp
		p.Tt = o.Tt
		p.Pt = o.Pt
		p.Ts, p.Ps, p.Rho = gas.Static(o.Tt, o.Pt, math.Hypot(p.Vm, p.Vu))
		p.H = gas.Cp * o.Tt
		p.I = p.H - o.Omg*p.Y*p.Vu
		p.S = o.S
	})
}

// FreeVortex defines a uniform flow with a free vortex swirl Vu = C/r
type FreeVortex struct {
	UniformFlow
	C float64 // circulation constant r・Vu
}

// Set sets the flow state at all points of g. Points on the axis get no swirl
func (o FreeVortex) Set(g *msh.Grid) {
	o.set(g, func(p *msh.Point) float64 {
		if p.Y <= 0 {
			return 0
		}
		return o.C / p.Y
	})
}
