// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the structured meridional grid and its metrics
package msh

import (
	"math"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Point holds the geometry and flow state at one grid node
type Point struct {

	// coordinates
	X float64 // axial coordinate
	Y float64 // radial coordinate (≥ 0). Y == 0 is the rotation axis

	// geometry (computed by geo)
	M   float64 // abscissa along i (streamwise)
	L   float64 // abscissa along j (spanwise)
	Phi float64 // streamline slope
	Gam float64 // span line slope
	Cgp float64 // cos(Phi+Gam)
	Sgp float64 // sin(Phi+Gam)
	Cur float64 // streamline curvature dPhi/dm

	// flow state (from the iterative solver)
	Vm  float64 // meridional velocity
	Vu  float64 // tangential (swirl) velocity
	Bet float64 // relative flow angle
	Eps float64 // blade lean angle
	Omg float64 // rotation speed of the local blade row
	Th  float64 // tangential blockage angle

	// thermodynamic state
	Ts  float64 // static temperature
	Ps  float64 // static pressure
	Tt  float64 // total temperature
	Pt  float64 // total pressure
	Rho float64 // density
	H   float64 // total enthalpy
	I   float64 // rothalpy
	S   float64 // entropy
	Ga  float64 // ratio of specific heats
	Cp  float64 // specific heat at constant pressure
	Q   float64 // span fraction

	// tags
	IB int     // blade row index; -1 means no blade
	K  float64 // user tag read along with coordinates

	// streamwise derivative caches
	DrtbDm   float64 // d(r・tanβ)/dm
	DsqVmDm2 float64 // d(Vm²/2)/dm
	DsDm     float64 // ds/dm
	DrVuDm   float64 // d(r・Vu)/dm
}

// Field extracts a scalar value from a grid point
type Field func(p *Point) float64

// Grid holds a Ni×Nj structured grid. i runs along the streamwise direction (m) and
// j along the spanwise direction (l)
type Grid struct {
	Ni  int     // number of streamwise stations
	Nj  int     // number of streamlines
	Pts []Point // [Ni*Nj] points, row-major
}

// NewGrid allocates a new grid with all blade tags unset
func NewGrid(ni, nj int) (o *Grid) {
	if ni < 1 || nj < 1 {
		chk.Panic("cannot allocate grid with ni=%d and nj=%d", ni, nj)
	}
	o = &Grid{Ni: ni, Nj: nj, Pts: make([]Point, ni*nj)}
	for k := range o.Pts {
		o.Pts[k].IB = -1
	}
	return
}

// At returns the point @ (i,j)
func (o *Grid) At(i, j int) *Point {
	return &o.Pts[i*o.Nj+j]
}

// Size returns the dimensions of the grid
func (o *Grid) Size() (ni, nj int) {
	return o.Ni, o.Nj
}

// Set sets the coordinates of point (i,j)
func (o *Grid) Set(i, j int, x, y float64) {
	p := o.At(i, j)
	p.X, p.Y = x, y
}

// Apply calls fcn for all points
func (o *Grid) Apply(fcn func(p *Point)) {
	for k := range o.Pts {
		fcn(&o.Pts[k])
	}
}

// Limits returns the range of a field over the whole grid
func (o *Grid) Limits(f Field) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for k := range o.Pts {
		v := f(&o.Pts[k])
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return
}

// ForEachRow runs fcn(i) for all stations i. With parallel == true, rows are processed
// concurrently and fcn must only write fields of row i. The first error is returned
// after all rows are done.
func (o *Grid) ForEachRow(parallel bool, fcn func(i int) error) error {
	if !parallel {
		for i := 0; i < o.Ni; i++ {
			if err := fcn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < o.Ni; i++ {
		g.Go(func() error { return fcn(i) })
	}
	return g.Wait()
}

// Distance returns the Euclidean distance between two points in the (x,y) plane
func Distance(a, b *Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// geometry fields /////////////////////////////////////////////////////////////////////////////////

// X returns the axial coordinate
func X(p *Point) float64 { return p.X }

// Y returns the radial coordinate
func Y(p *Point) float64 { return p.Y }

// M returns the streamwise abscissa
func M(p *Point) float64 { return p.M }

// L returns the spanwise abscissa
func L(p *Point) float64 { return p.L }

// Phi returns the streamline slope
func Phi(p *Point) float64 { return p.Phi }

// Gam returns the span line slope
func Gam(p *Point) float64 { return p.Gam }

// Cur returns the streamline curvature
func Cur(p *Point) float64 { return p.Cur }
