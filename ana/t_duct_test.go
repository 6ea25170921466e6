// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_duct01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct01. straight annular duct")

	g := AnnularDuct{X0: 1, X1: 2, Rh: 0.2, Rs: 0.6}.Grid(5, 3)
	chk.Int(tst, "ni", g.Ni, 5)
	chk.Int(tst, "nj", g.Nj, 3)
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			chk.Float64(tst, "x", 1e-15, p.X, 1+0.25*float64(i))
			chk.Float64(tst, "y", 1e-15, p.Y, 0.2+0.2*float64(j))
			chk.Float64(tst, "q", 1e-15, p.Q, 0.5*float64(j))
		}
	}

	defer func() {
		if recover() == nil {
			tst.Errorf("duct with Rs < Rh must panic")
		}
	}()
	AnnularDuct{X0: 0, X1: 1, Rh: 0.6, Rs: 0.2}.Grid(3, 3)
}

func Test_duct02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct02. bend")

	b := Bend{Th0: math.Pi / 2, Th1: 0, Rh: 1, Rs: 2}
	g := b.Grid(3, 2)
	chk.Float64(tst, "x(0,0)", 1e-15, g.At(0, 0).X, 0)
	chk.Float64(tst, "y(0,0)", 1e-15, g.At(0, 0).Y, 1)
	chk.Float64(tst, "x(2,1)", 1e-15, g.At(2, 1).X, 2)
	chk.Float64(tst, "y(2,1)", 1e-15, g.At(2, 1).Y, 0)
	chk.Float64(tst, "x(1,1)", 1e-15, g.At(1, 1).X, math.Sqrt2)
	chk.Float64(tst, "φ(π/2)", 1e-17, b.Phi(math.Pi/2), 0)
	chk.Float64(tst, "κ(2)", 1e-17, b.Curvature(2), -0.5)
}

func Test_flow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow01. uniform flow and free vortex")

	g := AnnularDuct{X0: 0, X1: 1, Rh: 0.5, Rs: 1}.Grid(2, 3)
	UniformFlow{Vm: 100, Tt: 300, Pt: 1e5, Omg: 50}.Set(g)
	cp := 1.4 * 287.04 / 0.4
	ts := 300 - 100*100/(2*cp)
	for _, p := range g.Pts {
		chk.Float64(tst, "Vu", 1e-17, p.Vu, 0)
		chk.Float64(tst, "cp", 1e-12, p.Cp, cp)
		chk.Float64(tst, "Ts", 1e-12, p.Ts, ts)
		chk.Float64(tst, "ρ", 1e-14, p.Rho, p.Ps/(287.04*ts))
		chk.Float64(tst, "H", 1e-9, p.H, cp*300)
		chk.Float64(tst, "I", 1e-9, p.I, p.H)
		chk.Float64(tst, "β", 1e-15, p.Bet, math.Atan2(-50*p.Y, 100))
	}

	FreeVortex{UniformFlow: UniformFlow{Vm: 100, Tt: 300, Pt: 1e5, Ga: 1.4}, C: 30}.Set(g)
	for _, p := range g.Pts {
		chk.Float64(tst, "r・Vu", 1e-13, p.Y*p.Vu, 30)
	}

	h := AnnularDuct{X0: 0, X1: 1, Rh: 0, Rs: 1}.Grid(2, 2)
	FreeVortex{UniformFlow: UniformFlow{Vm: 100, Tt: 300, Pt: 1e5}, C: 30}.Set(h)
	chk.Float64(tst, "Vu @ axis", 1e-17, h.At(0, 0).Vu, 0)
}

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01. perfect gas")

	var air PerfectGas
	air.Init(0, 0)
	io.Pforan("dry air: γ = %g  R = %g  cp = %g\n", air.Ga, air.R, air.Cp)
	chk.Float64(tst, "γ", 1e-17, air.Ga, 1.4)
	chk.Float64(tst, "R", 1e-17, air.R, 287.04)
	chk.Float64(tst, "cp", 1e-12, air.Cp, 1004.64)

	ts, ps, rho := air.Static(288.15, 101325, 0)
	chk.Float64(tst, "Ts @ rest", 1e-17, ts, 288.15)
	chk.Float64(tst, "Ps @ rest", 1e-17, ps, 101325)
	chk.Float64(tst, "ρ @ rest", 1e-15, rho, 101325/(287.04*288.15))

	// isentropic relation
	ts, ps, _ = air.Static(300, 1e5, 150)
	chk.Float64(tst, "Ts", 1e-12, ts, 300-150*150/(2*1004.64))
	chk.Float64(tst, "Pt/Ps", 1e-12, 1e5/ps, math.Pow(300/ts, 3.5))
}
