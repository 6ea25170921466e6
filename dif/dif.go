// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dif implements second-order finite difference operators on structured grids
package dif

import "github.com/elac-safran/yams/msh"

// D1O2I computes ∂f/∂x along the i direction @ (i,j) using x as independent variable.
// A three-point stencil is used: central in the interior, forward @ i=0 and backward
// @ i=Ni-1. The stencils are exact for quadratics in x even with non-uniform spacing.
func D1O2I(g *msh.Grid, i, j int, f, x msh.Field) float64 {
	at := func(k int) *msh.Point { return g.At(k, j) }
	return d1o2(g.Ni, i, at, f, x)
}

// D1O2J computes ∂f/∂x along the j direction @ (i,j). See D1O2I
func D1O2J(g *msh.Grid, i, j int, f, x msh.Field) float64 {
	at := func(k int) *msh.Point { return g.At(i, k) }
	return d1o2(g.Nj, j, at, f, x)
}

// DKsi computes ∂f/∂ξ @ (i,j) with uniform step dKsi along i
func DKsi(g *msh.Grid, i, j int, dKsi float64, f msh.Field) float64 {
	at := func(k int) *msh.Point { return g.At(k, j) }
	return d1o2uniform(g.Ni, i, dKsi, at, f)
}

// DEth computes ∂f/∂η @ (i,j) with uniform step dEth along j
func DEth(g *msh.Grid, i, j int, dEth float64, f msh.Field) float64 {
	at := func(k int) *msh.Point { return g.At(i, k) }
	return d1o2uniform(g.Nj, j, dEth, at, f)
}

// D1O2Dx1 computes ∂f/∂x1 @ (i,j) using the grid metrics:
//   ∂f/∂x1 = ∂f/∂ξ・∂ξ/∂x1 + ∂f/∂η・∂η/∂x1
func D1O2Dx1(g *msh.Grid, met *msh.Metrics, i, j int, dKsi, dEth float64, f msh.Field) float64 {
	mp := met.At(i, j)
	return DKsi(g, i, j, dKsi, f)*mp.KsiX1 + DEth(g, i, j, dEth, f)*mp.EthX1
}

// D1O2Dx2 computes ∂f/∂x2 @ (i,j) using the grid metrics:
//   ∂f/∂x2 = ∂f/∂ξ・∂ξ/∂x2 + ∂f/∂η・∂η/∂x2
func D1O2Dx2(g *msh.Grid, met *msh.Metrics, i, j int, dKsi, dEth float64, f msh.Field) float64 {
	mp := met.At(i, j)
	return DKsi(g, i, j, dKsi, f)*mp.KsiX2 + DEth(g, i, j, dEth, f)*mp.EthX2
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// d1o2 differentiates along one grid line of n points
func d1o2(n, k int, at func(k int) *msh.Point, f, x msh.Field) float64 {
	switch {
	case n < 2:
		return 0
	case n == 2:
		a, b := at(0), at(1)
		return (f(b) - f(a)) / (x(b) - x(a))
	}
	var a, b, c int
	switch k {
	case 0:
		a, b, c = 0, 1, 2
	case n - 1:
		a, b, c = n-3, n-2, n-1
	default:
		a, b, c = k-1, k, k+1
	}
	pa, pb, pc := at(a), at(b), at(c)
	return lagrange3(x(at(k)), x(pa), x(pb), x(pc), f(pa), f(pb), f(pc))
}

// lagrange3 returns the derivative @ t of the parabola through (xa,fa), (xb,fb) and (xc,fc)
func lagrange3(t, xa, xb, xc, fa, fb, fc float64) float64 {
	return fa*(2*t-xb-xc)/((xa-xb)*(xa-xc)) +
		fb*(2*t-xa-xc)/((xb-xa)*(xb-xc)) +
		fc*(2*t-xa-xb)/((xc-xa)*(xc-xb))
}

// d1o2uniform differentiates along one grid line of n points with uniform step h
func d1o2uniform(n, k int, h float64, at func(k int) *msh.Point, f msh.Field) float64 {
	switch {
	case n < 2:
		return 0
	case n == 2:
		return (f(at(1)) - f(at(0))) / h
	}
	switch k {
	case 0:
		return (-3*f(at(0)) + 4*f(at(1)) - f(at(2))) / (2 * h)
	case n - 1:
		return (3*f(at(n-1)) - 4*f(at(n-2)) + f(at(n-3))) / (2 * h)
	}
	return (f(at(k+1)) - f(at(k-1))) / (2 * h)
}
