// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/msh"
)

// VmMin is the meridional velocity below which the absolute flow angle is taken as zero
const VmMin = 1e-4

// Quadratic holds the coefficients of A・x² + B・x + C
type Quadratic struct {
	A, B, C float64
}

// Eval evaluates the quadratic @ x
func (o Quadratic) Eval(x float64) float64 {
	return (o.A*x+o.B)*x + o.C
}

// Roots returns the real roots in ascending order. n is the number of roots: 0, 1 or 2.
// If A is zero, the linear equation is solved; if A and B are zero, n = 0.
func (o Quadratic) Roots() (x1, x2 float64, n int) {
	if o.A == 0 {
		if o.B == 0 {
			return 0, 0, 0
		}
		x1 = -o.C / o.B
		return x1, x1, 1
	}
	Δ := o.B*o.B - 4*o.A*o.C
	switch {
	case Δ < 0:
		return 0, 0, 0
	case Δ == 0:
		x1 = -o.B / (2 * o.A)
		return x1, x1, 1
	}
	// stable form avoiding cancellation
	q := -0.5 * (o.B + math.Copysign(math.Sqrt(Δ), o.B))
	x1, x2 = q/o.A, o.C/q
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return x1, x2, 2
}

// EqBet evaluates the radial equilibrium residual D・Vm² + E・Vm + F @ (i,j)
func EqBet(g *msh.Grid, d dif.Differ, i, j int) float64 {
	p := g.At(i, j)
	Vm := p.Vm
	return D(g, d, i, j)*Vm*Vm + E(p)*Vm + F(g, d, i, j)
}

// EqVu evaluates the swirl transport residual G・Vm² + J・Vm + K @ (i,j)
func EqVu(g *msh.Grid, d dif.Differ, i, j int) float64 {
	p := g.At(i, j)
	Vm := p.Vm
	return G(p)*Vm*Vm + J(p)*Vm + K(g, d, i, j)
}

// AbsoluteAngle returns atan2(Vu, Vm), or zero if |Vm| ≤ VmMin
func AbsoluteAngle(p *msh.Point) float64 {
	if math.Abs(p.Vm) > VmMin {
		return math.Atan2(p.Vu, p.Vm)
	}
	return 0
}

// CheckFlowAngle returns an error if the absolute flow angle of any point is outside
// (-π/2, π/2); i.e. the meridional flow is reversed
func CheckFlowAngle(g *msh.Grid) error {
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			β := AbsoluteAngle(g.At(i, j))
			if math.Abs(β) >= math.Pi/2 {
				return chk.Err("flow angle β = %g @ (%d,%d) is out of (-π/2, π/2)", β, i, j)
			}
		}
	}
	return nil
}

// UpdateCaches computes the streamwise derivatives used by the coefficients:
//   ∂(r・tanβ)/∂m, ∂(Vm²/2)/∂m, ∂s/∂m and ∂(r・Vu)/∂m
// Note: cache fields are written only; thus rows may be processed in parallel
func UpdateCaches(g *msh.Grid, d dif.Differ) error {
	return g.ForEachRow(true, func(i int) error {
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			p.DrtbDm = d.Dm(g, i, j, RTanBeta)
			p.DsqVmDm2 = d.Dm(g, i, j, SqVm2)
			p.DsDm = d.Dm(g, i, j, S)
			p.DrVuDm = d.Dm(g, i, j, RVu)
		}
		return nil
	})
}
