// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// PerfectGas handles the properties of a calorically perfect gas
type PerfectGas struct {
	Ga float64 // ratio of specific heats
	R  float64 // specific gas constant [J/(kg・K)]
	Cp float64 // specific heat at constant pressure [J/(kg・K)]
}

// Init initialises data. Zero values select the properties of dry air
func (o *PerfectGas) Init(ga, r float64) {
	if ga == 0 {
		ga = 1.4
	}
	if r == 0 {
		r = 287.04
	}
	o.Ga = ga
	o.R = r
	o.Cp = ga * r / (ga - 1.0)
}

// Static returns the static temperature, pressure and density of a flow with total
// temperature tt, total pressure pt and velocity magnitude v
func (o PerfectGas) Static(tt, pt, v float64) (ts, ps, rho float64) {
	ts = tt - v*v/(2.0*o.Cp)
	ps = pt * math.Pow(ts/tt, o.Ga/(o.Ga-1.0))
	rho = ps / (o.R * ts)
	return
}
