// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dif

import (
	"github.com/cpmech/gosl/chk"
	"github.com/elac-safran/yams/msh"
)

// Differ computes first derivatives along the streamwise (m) and spanwise (l) abscissas
type Differ interface {
	Dm(g *msh.Grid, i, j int, f msh.Field) float64 // ∂f/∂m @ (i,j)
	Dl(g *msh.Grid, i, j int, f msh.Field) float64 // ∂f/∂l @ (i,j)
}

// Index differentiates along grid lines using the abscissas as independent variables.
// Suitable for orthogonal grids only
type Index struct{}

// Dm implements Differ
func (o Index) Dm(g *msh.Grid, i, j int, f msh.Field) float64 {
	return D1O2I(g, i, j, f, msh.M)
}

// Dl implements Differ
func (o Index) Dl(g *msh.Grid, i, j int, f msh.Field) float64 {
	return D1O2J(g, i, j, f, msh.L)
}

// Metric differentiates in the computational space and maps the result with the grid
// metrics. Required for non-orthogonal grids
type Metric struct {
	Met  *msh.Metrics // grid metrics with x1 = m and x2 = l
	DKsi float64      // computational step along i
	DEth float64      // computational step along j
}

// NewMetric returns a Metric differ using met
func NewMetric(met *msh.Metrics) *Metric {
	dKsi, dEth := met.Steps()
	return &Metric{Met: met, DKsi: dKsi, DEth: dEth}
}

// Dm implements Differ
func (o *Metric) Dm(g *msh.Grid, i, j int, f msh.Field) float64 {
	return D1O2Dx1(g, o.Met, i, j, o.DKsi, o.DEth, f)
}

// Dl implements Differ
func (o *Metric) Dl(g *msh.Grid, i, j int, f msh.Field) float64 {
	return D1O2Dx2(g, o.Met, i, j, o.DKsi, o.DEth, f)
}

// strategies //////////////////////////////////////////////////////////////////////////////////////

// Strategy names
const (
	StrategyIndex  = "index"
	StrategyMetric = "metric"
)

// New returns the Differ corresponding to a strategy name. met is only used (and
// required) by the "metric" strategy
func New(strategy string, met *msh.Metrics) (Differ, error) {
	switch strategy {
	case StrategyIndex:
		return Index{}, nil
	case StrategyMetric:
		if met == nil {
			return nil, chk.Err("metric strategy requires grid metrics")
		}
		return NewMetric(met), nil
	}
	return nil, chk.Err("cannot find differentiation strategy named %q", strategy)
}
