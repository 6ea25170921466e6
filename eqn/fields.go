// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"math"

	"github.com/elac-safran/yams/msh"
)

// Rg is the gas constant of air [J/(kg・K)]
const Rg = 287.04

// SqVm2 returns Vm²/2
func SqVm2(p *msh.Point) float64 { return 0.5 * p.Vm * p.Vm }

// MassFlow returns the mass flow density through a quasi-orthogonal
//   ρ・Vm・cos(φ+γ)・(2π - θ)・r
func MassFlow(p *msh.Point) float64 {
	return p.Vm * p.Rho * p.Cgp * (2*math.Pi - p.Th) * p.Y
}

// I returns the rothalpy
func I(p *msh.Point) float64 { return p.I }

// H returns the total enthalpy
func H(p *msh.Point) float64 { return p.H }

// S returns the entropy
func S(p *msh.Point) float64 { return p.S }

// RVu returns r・Vu
func RVu(p *msh.Point) float64 { return p.Y * p.Vu }

// RTanBeta returns r・tan(β)
func RTanBeta(p *msh.Point) float64 { return p.Y * math.Tan(p.Bet) }

// Mm returns the meridional Mach number
func Mm(p *msh.Point) float64 { return p.Vm / math.Sqrt(p.Ga*Rg*p.Ts) }

// Vm returns the meridional velocity
func Vm(p *msh.Point) float64 { return p.Vm }

// Wu returns the relative tangential velocity Vu - ω・r
func Wu(p *msh.Point) float64 { return p.Vu - p.Omg*p.Y }

// RWu returns r・Wu
func RWu(p *msh.Point) float64 { return Wu(p) * p.Y }

// Rothalpy returns H - ω・r・Vu computed from the current state
func Rothalpy(p *msh.Point) float64 { return p.H - p.Omg*p.Y*p.Vu }
