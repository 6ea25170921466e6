// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqn

import (
	"math"

	"github.com/elac-safran/yams/msh"
)

// Trig holds trigonometric values of one point
type Trig struct {
	Cb float64 // cos(β)
	Sb float64 // sin(β)
	Tb float64 // tan(β)
	Te float64 // tan(ε)
	Sp float64 // sin(φ)
	Cg float64 // cos(γ)
}

// NewTrig computes the trigonometric values of p
func NewTrig(p *msh.Point) (o Trig) {
	o.Sb, o.Cb = math.Sincos(p.Bet)
	o.Tb = math.Tan(p.Bet)
	o.Te = math.Tan(p.Eps)
	o.Sp = math.Sin(p.Phi)
	o.Cg = math.Cos(p.Gam)
	return
}

// overR returns v/r or zero on the axis
func overR(v, r float64) float64 {
	if r > 0 {
		return v / r
	}
	return 0
}
