// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eqn implements the coefficients of the radial equilibrium and swirl transport
// equations of the streamline curvature method (Novak and Hearsey, 1977)
package eqn

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/msh"
)

// D computes the curvature and blade lean coefficient
//   D = cos²β・(cos(φ+γ)・κ - tanβ/r・∂(r・tanβ)/∂l + tanε/r・∂(r・tanβ)/∂m)
func D(g *msh.Grid, d dif.Differ, i, j int) float64 {
	p := g.At(i, j)
	return dcoef(p, NewTrig(p), d.Dl(g, i, j, RTanBeta))
}

// E computes the Coriolis coefficient
//   E = 2・ω・cos²β・(tanε・sinφ - cosγ・tanβ)
func E(p *msh.Point) float64 {
	return ecoef(p, NewTrig(p))
}

// F computes the rothalpy and entropy gradients coefficient
//   F = cos²β・(∂I/∂l - Ts・∂s/∂l) + (cosβ・sin(φ+γ) + tanε・sinβ)・cosβ・(∂(Vm²/2)/∂m + cos²β・Ts・∂s/∂m)
func F(g *msh.Grid, d dif.Differ, i, j int) float64 {
	p := g.At(i, j)
	return fcoef(p, NewTrig(p), d.Dl(g, i, j, I), d.Dl(g, i, j, S))
}

// G computes the curvature coefficient of the swirl equation
//   G = cos(φ+γ)・κ
func G(p *msh.Point) float64 {
	return p.Cgp * p.Cur
}

// J computes the blade lean and swirl gradient coefficient
//   J = tanε/r・∂(r・Vu)/∂m
func J(p *msh.Point) float64 {
	return overR(math.Tan(p.Eps), p.Y) * p.DrVuDm
}

// K computes the enthalpy, entropy and swirl transport coefficient
//   K = ∂H/∂l - Ts・∂s/∂l - Vu/r・∂(r・Vu)/∂l + sin(φ+γ)・∂(Vm²/2)/∂m + (cosβ'・sin(φ+γ) + tanε・sinβ')・Ts・cosβ'・∂s/∂m
// where β' = atan2(Vu, Vm) is the absolute flow angle. It panics if |β'| ≥ π/2
func K(g *msh.Grid, d dif.Differ, i, j int) float64 {
	p := g.At(i, j)
	return kcoef(p, d.Dl(g, i, j, H), d.Dl(g, i, j, S), d.Dl(g, i, j, RVu))
}

// Coefs holds all coefficients of one point
type Coefs struct {
	D, E, F float64 // radial equilibrium: D・Vm² + E・Vm + F
	G, J, K float64 // swirl transport:    G・Vm² + J・Vm + K
}

// Assemble computes all coefficients @ (i,j) sharing trigonometric values and gradients
func Assemble(g *msh.Grid, d dif.Differ, i, j int) (o Coefs) {
	p := g.At(i, j)
	t := NewTrig(p)
	dSdl := d.Dl(g, i, j, S)
	o.D = dcoef(p, t, d.Dl(g, i, j, RTanBeta))
	o.E = ecoef(p, t)
	o.F = fcoef(p, t, d.Dl(g, i, j, I), dSdl)
	o.G = G(p)
	o.J = overR(t.Te, p.Y) * p.DrVuDm
	o.K = kcoef(p, d.Dl(g, i, j, H), dSdl, d.Dl(g, i, j, RVu))
	return
}

// Bet returns the radial equilibrium quadratic in Vm
func (o Coefs) Bet() Quadratic { return Quadratic{o.D, o.E, o.F} }

// Vu returns the swirl transport quadratic in Vm
func (o Coefs) Vu() Quadratic { return Quadratic{o.G, o.J, o.K} }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func dcoef(p *msh.Point, t Trig, drtbDl float64) float64 {
	d1 := p.Cgp * p.Cur
	d2 := -overR(t.Tb, p.Y) * drtbDl
	d3 := overR(t.Te, p.Y) * p.DrtbDm
	return t.Cb * t.Cb * (d1 + d2 + d3)
}

func ecoef(p *msh.Point, t Trig) float64 {
	return 2.0 * p.Omg * t.Cb * t.Cb * (t.Te*t.Sp - t.Cg*t.Tb)
}

func fcoef(p *msh.Point, t Trig, dIdl, dSdl float64) float64 {
	f1 := t.Cb * t.Cb * (dIdl - p.Ts*dSdl)
	f2 := t.Cb*p.Sgp + t.Te*t.Sb
	f3 := t.Cb * (p.DsqVmDm2 + t.Cb*t.Cb*p.Ts*p.DsDm)
	return f1 + f2*f3
}

func kcoef(p *msh.Point, dHdl, dSdl, drVudl float64) float64 {
	β := AbsoluteAngle(p)
	if math.Abs(β) >= math.Pi/2 {
		chk.Panic("flow angle β = %g out of (-π/2, π/2) @ (x=%g, y=%g): Vm=%g, Vu=%g", β, p.X, p.Y, p.Vm, p.Vu)
	}
	sb, cb := math.Sincos(β)
	te := math.Tan(p.Eps)
	k1 := dHdl - p.Ts*dSdl
	k2 := -overR(p.Vu, p.Y) * drVudl
	k3 := p.Sgp * p.DsqVmDm2
	k4 := (cb*p.Sgp + te*sb) * p.Ts * cb * p.DsDm
	return k1 + k2 + k3 + k4
}
