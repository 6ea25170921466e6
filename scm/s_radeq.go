// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/eqn"
	"github.com/elac-safran/yams/msh"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// RadEq solves the radial equilibrium along each station. eq_bet is the span-wise
// gradient of Vm²/2; thus, at each iteration, Vm² is integrated from hub to shroud
// starting at the current hub value and the profile is rescaled to the target mass flow.
// Updates are relaxed and the loop stops when both the relative change of Vm and the
// relative mass flow error fall below the tolerances.
type RadEq struct {
	Dom *Domain

	// workspace
	vmNew []float64 // [ni*nj] new meridional velocities
	errMf []float64 // [ni] relative mass flow errors before rescaling
}

// add solver to factory
func init() {
	allocators["radeq"] = func(dom *Domain) Solver { return &RadEq{Dom: dom} }
}

// Run runs the iterations
func (o *RadEq) Run(verbose bool) (err error) {

	// workspace
	dom := o.Dom
	g := dom.Grid
	slv := &dom.Case.Solver
	o.vmNew = make([]float64, len(g.Pts))
	o.errMf = make([]float64, g.Ni)
	sum := &dom.Sum

	// iterations
	for it := 0; it < slv.MaxGeom; it++ {

		// residuals; read-only pass
		err = dom.Residuals()
		if err != nil {
			return
		}

		// integrate along stations
		err = g.ForEachRow(true, o.station)
		if err != nil {
			return
		}

		// update Vm
		vref := math.Max(floats.Norm(o.vmNew, math.Inf(1)), eqn.VmMin)
		var dvm float64
		for k := range g.Pts {
			p := &g.Pts[k]
			δ := slv.Relax * (o.vmNew[k] - p.Vm)
			dvm = math.Max(dvm, math.Abs(δ))
			p.Vm += δ
		}
		dom.SetKinematics()

		// check convergence
		sum.Iters = it + 1
		sum.ResPos = dvm / vref
		sum.ResMf = floats.Max(o.errMf)
		if verbose {
			io.Pf("%4d : |ΔVm|/Vm = %12.6e  |Δmf|/mf = %12.6e  max|eq_bet| = %12.6e\n", it, sum.ResPos, sum.ResMf, sum.ResBet)
		}
		if sum.ResPos < slv.TolRelPos && sum.ResMf < slv.TolRelMf {
			sum.Converged = true
			return dom.Residuals()
		}
	}
	return chk.Err("radial equilibrium did not converge after %d iterations: |ΔVm|/Vm = %g, |Δmf|/mf = %g", slv.MaxGeom, sum.ResPos, sum.ResMf)
}

// station integrates Vm² along station i and rescales it to the target mass flow. Only
// the workspace of row i is written
func (o *RadEq) station(i int) error {
	dom := o.Dom
	g := dom.Grid
	nj := g.Nj
	vm := o.vmNew[i*nj : (i+1)*nj]
	res := dom.ResBet[i*nj : (i+1)*nj]

	// Vm² from hub to shroud
	l := make([]float64, nj)
	mf := make([]float64, nj)
	sq := g.At(i, 0).Vm * g.At(i, 0).Vm
	for j := 0; j < nj; j++ {
		p := g.At(i, j)
		l[j] = p.L
		if j > 0 {
			sq += (res[j-1] + res[j]) * (l[j] - l[j-1])
		}
		vm[j] = math.Sqrt(math.Max(sq, eqn.VmMin*eqn.VmMin))
		mf[j] = flux(p, vm[j])
	}

	// rescale to target mass flow
	m := integrate.Trapezoidal(l, mf)
	if m <= 0 {
		return chk.Err("mass flow through station %d is not positive: %g", i, m)
	}
	o.errMf[i] = math.Abs(m-dom.Mf) / dom.Mf
	floats.Scale(dom.Mf/m, vm)
	return nil
}

// flux returns the mass flow density @ p if the meridional velocity were vm
func flux(p *msh.Point, vm float64) float64 {
	q := *p
	q.Vm = vm
	return eqn.MassFlow(&q)
}
