// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// MetricsPoint holds the transformation between the computational coordinates (ξ,η) and
// the physical curvilinear coordinates (x1,x2) at one node. Usually x1 = m and x2 = l.
//
//          / ∂x1/∂ξ  ∂x1/∂η \              / ∂ξ/∂x1  ∂ξ/∂x2 \
//    Jac = |                 |    Jac⁻¹ =  |                 |
//          \ ∂x2/∂ξ  ∂x2/∂η /              \ ∂η/∂x1  ∂η/∂x2 /
//
type MetricsPoint struct {
	X1Ksi float64 // ∂x1/∂ξ
	X1Eth float64 // ∂x1/∂η
	X2Ksi float64 // ∂x2/∂ξ
	X2Eth float64 // ∂x2/∂η
	J     float64 // det(Jac)
	KsiX1 float64 // ∂ξ/∂x1
	EthX1 float64 // ∂η/∂x1
	KsiX2 float64 // ∂ξ/∂x2
	EthX2 float64 // ∂η/∂x2
}

// Metrics holds one MetricsPoint per grid node
type Metrics struct {
	Ni  int            // number of stations
	Nj  int            // number of streamlines
	Pts []MetricsPoint // [Ni*Nj] row-major
}

// NewMetrics allocates metrics matching the dimensions of g
func NewMetrics(g *Grid) *Metrics {
	return &Metrics{Ni: g.Ni, Nj: g.Nj, Pts: make([]MetricsPoint, g.Ni*g.Nj)}
}

// At returns the metrics @ (i,j)
func (o *Metrics) At(i, j int) *MetricsPoint {
	return &o.Pts[i*o.Nj+j]
}

// Steps returns the uniform computational steps dξ = 1/(Ni-1) and dη = 1/(Nj-1)
func (o *Metrics) Steps() (dKsi, dEth float64) {
	return 1.0 / float64(o.Ni-1), 1.0 / float64(o.Nj-1)
}

// Matches tells whether the metrics were allocated for grid g
func (o *Metrics) Matches(g *Grid) bool {
	return o.Ni == g.Ni && o.Nj == g.Nj
}
