// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results to VTK XML files
package out

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/inp"
	"github.com/elac-safran/yams/msh"
)

// Output holds a named field written to results files
type Output struct {
	Name string    // name of data array
	Fcn  msh.Field // the field
}

// deg converts an angle field to degrees
func deg(f msh.Field) msh.Field {
	return func(p *msh.Point) float64 { return f(p) * 180.0 / math.Pi }
}

// Outputs lists the fields written by WriteVts, in order
var Outputs = []Output{
	{"Vm", func(p *msh.Point) float64 { return p.Vm }},
	{"Vu", func(p *msh.Point) float64 { return p.Vu }},
	{"V", func(p *msh.Point) float64 { return math.Hypot(p.Vm, p.Vu) }},
	{"bet", deg(func(p *msh.Point) float64 { return p.Bet })},
	{"Tt", func(p *msh.Point) float64 { return p.Tt }},
	{"Pt", func(p *msh.Point) float64 { return p.Pt }},
	{"Ts", func(p *msh.Point) float64 { return p.Ts }},
	{"Ps", func(p *msh.Point) float64 { return p.Ps }},
	{"s", func(p *msh.Point) float64 { return p.S }},
	{"rho", func(p *msh.Point) float64 { return p.Rho }},
	{"H", func(p *msh.Point) float64 { return p.H }},
	{"q", func(p *msh.Point) float64 { return p.Q }},
	{"cur", msh.Cur},
	{"gam", deg(msh.Gam)},
	{"phi", deg(msh.Phi)},
	{"r", msh.Y},
	{"z", msh.X},
	{"cp", func(p *msh.Point) float64 { return p.Cp }},
	{"ga", func(p *msh.Point) float64 { return p.Ga }},
	{"k", func(p *msh.Point) float64 { return p.K }},
}

// WriteVts writes the grid and all Outputs to <dirout>/<fnkey>.vts. The directory is
// created if needed
func WriteVts(g *msh.Grid, dirout, fnkey string) (err error) {
	b, err := EncodeVts(g)
	if err != nil {
		return
	}
	fn := fnkey + ".vts"
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write %q to %q:\n%v", fn, dirout, r)
		}
	}()
	io.WriteFileD(dirout, fn, bytes.NewBuffer(b))
	return
}

// EncodeVts returns the contents of a .vts file with the grid and all Outputs. Points are
// ordered with i running fastest
func EncodeVts(g *msh.Grid) ([]byte, error) {
	ext := io.Sf("0 %d 0 %d 0 0", g.Ni-1, g.Nj-1)
	vf := inp.VtkFile{
		Type:      "StructuredGrid",
		Version:   "0.1",
		ByteOrder: "LittleEndian",
		Grid: inp.VtkStructGrid{
			WholeExtent: ext,
			Piece:       inp.VtkPiece{Extent: ext},
		},
	}
	piece := &vf.Grid.Piece

	// coordinates
	piece.Points = inp.VtkDataArray{Type: "Float64", Ncomps: 3, Format: "ascii"}
	piece.Points.Data = ascii(g, func(buf []byte, p *msh.Point) []byte {
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		return append(buf, " 0"...)
	})

	// tags
	piece.PointData = append(piece.PointData, inp.VtkDataArray{
		Type:   "Int32",
		Name:   "iB",
		Format: "ascii",
		Data: ascii(g, func(buf []byte, p *msh.Point) []byte {
			return strconv.AppendInt(buf, int64(p.IB), 10)
		}),
	})

	// fields
	for _, o := range Outputs {
		f := o.Fcn
		piece.PointData = append(piece.PointData, inp.VtkDataArray{
			Type:   "Float64",
			Name:   o.Name,
			Format: "ascii",
			Data: ascii(g, func(buf []byte, p *msh.Point) []byte {
				return strconv.AppendFloat(buf, f(p), 'g', -1, 64)
			}),
		})
	}

	b, err := xml.MarshalIndent(&vf, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(b, '\n')...), nil
}

// ascii formats one value per point, one streamline (fixed j) per line
func ascii(g *msh.Grid, fmtp func(buf []byte, p *msh.Point) []byte) string {
	var buf []byte
	for j := 0; j < g.Nj; j++ {
		buf = append(buf, '\n')
		for i := 0; i < g.Ni; i++ {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = fmtp(buf, g.At(i, j))
		}
	}
	return string(append(buf, '\n'))
}
