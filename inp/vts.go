// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/elac-safran/yams/msh"
)

// VtkFile holds the contents of a VTK XML structured grid (.vts) file. Only the ASCII
// format is supported
type VtkFile struct {
	XMLName   xml.Name      `xml:"VTKFile"`
	Type      string        `xml:"type,attr"`
	Version   string        `xml:"version,attr"`
	ByteOrder string        `xml:"byte_order,attr"`
	Grid      VtkStructGrid `xml:"StructuredGrid"`
}

// VtkStructGrid holds the structured grid element
type VtkStructGrid struct {
	WholeExtent string   `xml:"WholeExtent,attr"`
	Piece       VtkPiece `xml:"Piece"`
}

// VtkPiece holds one piece of a structured grid
type VtkPiece struct {
	Extent    string         `xml:"Extent,attr"`
	PointData []VtkDataArray `xml:"PointData>DataArray"`
	Points    VtkDataArray   `xml:"Points>DataArray"`
}

// VtkDataArray holds one data array
type VtkDataArray struct {
	Type   string `xml:"type,attr"`
	Name   string `xml:"Name,attr,omitempty"`
	Ncomps int    `xml:"NumberOfComponents,attr,omitempty"`
	Format string `xml:"format,attr"`
	Data   string `xml:",chardata"`
}

// Values parses the ASCII data
func (o *VtkDataArray) Values() (vals []float64, err error) {
	if o.Format != "ascii" {
		return nil, chk.Err("data array %q: format %q is not supported; use ascii", o.Name, o.Format)
	}
	fields := strings.Fields(o.Data)
	vals = make([]float64, len(fields))
	for k, f := range fields {
		vals[k], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, chk.Err("data array %q: cannot parse value #%d:\n%v", o.Name, k, err)
		}
	}
	return
}

// Dims returns the number of points along i and j given by the extent. The grid must be
// two-dimensional; i.e. the third extent must be "0 0"
func (o *VtkPiece) Dims() (ni, nj int, err error) {
	ext := strings.Fields(o.Extent)
	if len(ext) != 6 {
		return 0, 0, chk.Err("extent %q is invalid", o.Extent)
	}
	var e [6]int
	for k, s := range ext {
		e[k], err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, chk.Err("extent %q is invalid:\n%v", o.Extent, err)
		}
	}
	if e[4] != e[5] {
		return 0, 0, chk.Err("only 2D structured grids are supported; extent = %q", o.Extent)
	}
	return e[1] - e[0] + 1, e[3] - e[2] + 1, nil
}

// FindArray returns the point data array named name or nil
func (o *VtkPiece) FindArray(name string) *VtkDataArray {
	for k := range o.PointData {
		if o.PointData[k].Name == name {
			return &o.PointData[k]
		}
	}
	return nil
}

// ReadVts reads a grid from a .vts file. Points are ordered with i running fastest. The
// optional point arrays "iB" and "k" set the blade tag and the k value of each point
func ReadVts(fn string) (g *msh.Grid, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read grid file %q:\n%v", fn, err)
	}
	g, err = DecodeVts(b)
	if err != nil {
		return nil, chk.Err("cannot decode grid file %q:\n%v", fn, err)
	}
	return
}

// DecodeVts decodes the contents of a .vts file. See ReadVts
func DecodeVts(b []byte) (g *msh.Grid, err error) {
	var vf VtkFile
	err = xml.Unmarshal(b, &vf)
	if err != nil {
		return
	}
	if vf.Type != "StructuredGrid" {
		return nil, chk.Err("VTK file type %q is not StructuredGrid", vf.Type)
	}
	piece := &vf.Grid.Piece
	ni, nj, err := piece.Dims()
	if err != nil {
		return
	}
	if ni < 1 || nj < 1 {
		return nil, chk.Err("grid dimensions %d×%d are invalid", ni, nj)
	}
	npts := ni * nj

	// coordinates
	X, err := piece.Points.Values()
	if err != nil {
		return
	}
	ncomps := piece.Points.Ncomps
	if ncomps == 0 {
		ncomps = 3
	}
	if ncomps < 2 || len(X) != npts*ncomps {
		return nil, chk.Err("points array has %d values; %d points with %d components were expected", len(X), npts, ncomps)
	}

	// tags
	var IB, K []float64
	if arr := piece.FindArray("iB"); arr != nil {
		if IB, err = arr.Values(); err != nil {
			return
		}
		if len(IB) != npts {
			return nil, chk.Err("iB array has %d values; %d were expected", len(IB), npts)
		}
	}
	if arr := piece.FindArray("k"); arr != nil {
		if K, err = arr.Values(); err != nil {
			return
		}
		if len(K) != npts {
			return nil, chk.Err("k array has %d values; %d were expected", len(K), npts)
		}
	}

	// set grid
	g = msh.NewGrid(ni, nj)
	id := 0
	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			g.Set(i, j, X[id*ncomps], X[id*ncomps+1])
			p := g.At(i, j)
			if IB != nil {
				p.IB = int(IB[id])
			}
			if K != nil {
				p.K = K[id]
			}
			id++
		}
	}
	return
}
