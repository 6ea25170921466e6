// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dif

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/msh"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// quadratic returns f(m,l) = a + b・m + c・l + d・m² + e・l² + k・m・l stored in field Vm
func quadratic(p *msh.Point) float64 {
	m, l := p.M, p.L
	return 1.5 - 2*m + 3*l + 0.7*m*m - 1.1*l*l + 0.4*m*l
}

func dqdm(m, l float64) float64 { return -2 + 1.4*m + 0.4*l }
func dqdl(m, l float64) float64 { return 3 - 2.2*l + 0.4*m }

// uniformGrid returns a grid with m = x = i・dm and l = y = j・dl and its identity-like metrics
func uniformGrid(ni, nj int, dm, dl float64) (g *msh.Grid, met *msh.Metrics) {
	g = msh.NewGrid(ni, nj)
	met = msh.NewMetrics(g)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			p := g.At(i, j)
			p.X, p.Y = float64(i)*dm, float64(j)*dl
			p.M, p.L = p.X, p.Y
			mp := met.At(i, j)
			mp.X1Ksi = dm * float64(ni-1)
			mp.X2Eth = dl * float64(nj-1)
			mp.J = mp.X1Ksi * mp.X2Eth
			mp.KsiX1 = 1.0 / mp.X1Ksi
			mp.EthX2 = 1.0 / mp.X2Eth
		}
	}
	return
}

func Test_dif01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif01. exact derivatives of quadratics on uniform grids")

	ni, nj := 6, 5
	g, met := uniformGrid(ni, nj, 0.2, 0.35)
	dKsi, dEth := met.Steps()
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			p := g.At(i, j)
			am, al := dqdm(p.M, p.L), dqdl(p.M, p.L)
			chk.Float64(tst, io.Sf("D1O2I   (%d,%d)", i, j), 1e-12, D1O2I(g, i, j, quadratic, msh.M), am)
			chk.Float64(tst, io.Sf("D1O2J   (%d,%d)", i, j), 1e-12, D1O2J(g, i, j, quadratic, msh.L), al)
			chk.Float64(tst, io.Sf("D1O2Dx1 (%d,%d)", i, j), 1e-12, D1O2Dx1(g, met, i, j, dKsi, dEth, quadratic), am)
			chk.Float64(tst, io.Sf("D1O2Dx2 (%d,%d)", i, j), 1e-12, D1O2Dx2(g, met, i, j, dKsi, dEth, quadratic), al)
		}
	}
}

func Test_dif02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif02. non-uniform spacing")

	ni, nj := 5, 4
	g := msh.NewGrid(ni, nj)
	ms := []float64{0, 0.1, 0.35, 0.5, 1.2}
	ls := []float64{0, 0.4, 0.5, 0.9}
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			p := g.At(i, j)
			p.M, p.L = ms[i], ls[j]
		}
	}
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			p := g.At(i, j)
			chk.Float64(tst, io.Sf("∂f/∂m(%d,%d)", i, j), 1e-12, D1O2I(g, i, j, quadratic, msh.M), dqdm(p.M, p.L))
			chk.Float64(tst, io.Sf("∂f/∂l(%d,%d)", i, j), 1e-12, D1O2J(g, i, j, quadratic, msh.L), dqdl(p.M, p.L))
		}
	}
}

func Test_dif03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dif03. computational derivatives and stencils")

	g := msh.NewGrid(4, 2)
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			g.At(i, j).Vm = float64(i*i) + 10*float64(j)
		}
	}
	vm := func(p *msh.Point) float64 { return p.Vm }
	h := 1.0 / 3.0
	chk.Float64(tst, "ξ forward", 1e-14, DKsi(g, 0, 0, h, vm), 0)
	chk.Float64(tst, "ξ central", 1e-14, DKsi(g, 1, 0, h, vm), 2*3)
	chk.Float64(tst, "ξ central", 1e-14, DKsi(g, 2, 1, h, vm), 4*3)
	chk.Float64(tst, "ξ backward", 1e-14, DKsi(g, 3, 1, h, vm), 6*3)

	// two points only: first order difference
	chk.Float64(tst, "η two points", 1e-14, DEth(g, 2, 0, 1, vm), 10)
	chk.Float64(tst, "η two points", 1e-14, DEth(g, 2, 1, 1, vm), 10)
}

func Test_differ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("differ01. strategies")

	g, met := uniformGrid(5, 5, 0.25, 0.1)
	d, err := New(StrategyIndex, nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	dm, err := New(StrategyMetric, met)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			chk.Float64(tst, "Dm", 1e-12, d.Dm(g, i, j, quadratic), dm.Dm(g, i, j, quadratic))
			chk.Float64(tst, "Dl", 1e-12, d.Dl(g, i, j, quadratic), dm.Dl(g, i, j, quadratic))
		}
	}
	md := dm.(*Metric)
	chk.Float64(tst, "dKsi", 1e-17, md.DKsi, 0.25)
	chk.Float64(tst, "dEth", 1e-17, md.DEth, 0.25)

	if _, err = New(StrategyMetric, nil); err == nil {
		tst.Errorf("metric strategy without metrics should fail\n")
		return
	}
	if _, err = New("spectral", met); err == nil {
		tst.Errorf("unknown strategy should fail\n")
	}
}
