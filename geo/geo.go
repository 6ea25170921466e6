// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo derives the differential geometry of meridional grids
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/msh"
)

// Abscissas computes the arc lengths m (along i) and l (along j) of all points.
//   m(0,j) = 0    m(i,j) = m(i-1,j) + |P(i,j) - P(i-1,j)|
//   l(i,0) = 0    l(i,j) = l(i,j-1) + |P(i,j) - P(i,j-1)|
func Abscissas(g *msh.Grid) {
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			if i == 0 {
				p.M = 0
			} else {
				q := g.At(i-1, j)
				p.M = q.M + msh.Distance(p, q)
			}
			if j == 0 {
				p.L = 0
			} else {
				q := g.At(i, j-1)
				p.L = q.L + msh.Distance(p, q)
			}
		}
	}
}

// Angles computes the streamline slope φ, the span line slope γ and cos(φ+γ), sin(φ+γ)
//   φ = atan2(∂y/∂m, ∂x/∂m)
//   γ = atan2(∂x/∂l, ∂y/∂l)
// Note: abscissas (and metrics, if d uses them) must be available
func Angles(g *msh.Grid, d dif.Differ) error {
	return g.ForEachRow(true, func(i int) error {
		for j := 0; j < g.Nj; j++ {
			drdm := d.Dm(g, i, j, msh.Y)
			dzdm := d.Dm(g, i, j, msh.X)
			drdl := d.Dl(g, i, j, msh.Y)
			dzdl := d.Dl(g, i, j, msh.X)
			p := g.At(i, j)
			p.Phi = math.Atan2(drdm, dzdm)
			p.Gam = math.Atan2(dzdl, drdl)
			p.Cgp = math.Cos(p.Phi + p.Gam)
			p.Sgp = math.Sin(p.Phi + p.Gam)
		}
		return nil
	})
}

// Curvature computes the streamline curvature ∂φ/∂m at interior stations. The first and
// last stations are linearly extrapolated:
//   cur(0)    = 2・cur(1)    - cur(2)
//   cur(ni-1) = 2・cur(ni-2) - cur(ni-3)
// Note: angles must be available
func Curvature(g *msh.Grid, d dif.Differ) error {
	ni, nj := g.Size()
	if ni < 3 {
		return chk.Err("curvature requires at least 3 stations; ni=%d is invalid", ni)
	}
	err := g.ForEachRow(true, func(i int) error {
		if i == 0 || i == ni-1 {
			return nil
		}
		for j := 0; j < nj; j++ {
			g.At(i, j).Cur = d.Dm(g, i, j, msh.Phi)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for j := 0; j < nj; j++ {
		g.At(0, j).Cur = Extrapolate(g.At(1, j).Cur, g.At(2, j).Cur)
		g.At(ni-1, j).Cur = Extrapolate(g.At(ni-2, j).Cur, g.At(ni-3, j).Cur)
	}
	return nil
}

// Extrapolate returns the linear extrapolation 2a - b of the nearest value a and the
// next one b
func Extrapolate(a, b float64) float64 {
	return 2.0*a - b
}

// Compute runs the full geometry pipeline: abscissas, metrics (if d is a *dif.Metric),
// angles and curvature. Each pass finishes over the whole grid before the next starts.
func Compute(g *msh.Grid, d dif.Differ) (err error) {
	if g.Ni < 3 || g.Nj < 3 {
		return chk.Err("grid must have at least 3×3 points; %d×%d is invalid", g.Ni, g.Nj)
	}
	Abscissas(g)
	if md, ok := d.(*dif.Metric); ok {
		if !md.Met.Matches(g) {
			return chk.Err("metrics (%d×%d) do not match grid (%d×%d)", md.Met.Ni, md.Met.Nj, g.Ni, g.Nj)
		}
		err = ComputeMetrics(g, md.Met, msh.M, msh.L)
		if err != nil {
			return
		}
	}
	err = Angles(g, d)
	if err != nil {
		return
	}
	return Curvature(g, d)
}

// Setup allocates the differentiation strategy (and metrics if needed) and computes the
// geometry of g
//  Input:
//   strategy -- "index" or "metric"
//  Output:
//   d   -- the differ to be used with g afterwards
//   met -- metrics; nil with the "index" strategy
func Setup(g *msh.Grid, strategy string) (d dif.Differ, met *msh.Metrics, err error) {
	if strategy == dif.StrategyMetric {
		met = msh.NewMetrics(g)
	}
	d, err = dif.New(strategy, met)
	if err != nil {
		return
	}
	err = Compute(g, d)
	return
}
