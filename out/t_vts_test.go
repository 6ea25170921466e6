// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/elac-safran/yams/ana"
	"github.com/elac-safran/yams/inp"
	"github.com/elac-safran/yams/msh"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vts01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vts01. write and read grid")

	g := ana.AnnularDuct{X0: -0.1, X1: 0.3, Rh: 0.25, Rs: 0.5}.Grid(4, 3)
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			p := g.At(i, j)
			p.K = float64(10*i + j)
			if i == 2 {
				p.IB = 3
			}
		}
	}

	dirout := filepath.Join(os.TempDir(), "yams", "out")
	err := WriteVts(g, dirout, "vts01")
	if err != nil {
		tst.Errorf("WriteVts failed:\n%v", err)
		return
	}
	h, err := inp.ReadVts(filepath.Join(dirout, "vts01.vts"))
	if err != nil {
		tst.Errorf("ReadVts failed:\n%v", err)
		return
	}

	chk.Int(tst, "ni", h.Ni, g.Ni)
	chk.Int(tst, "nj", h.Nj, g.Nj)
	for i := 0; i < g.Ni; i++ {
		for j := 0; j < g.Nj; j++ {
			a, b := g.At(i, j), h.At(i, j)
			chk.Float64(tst, io.Sf("x(%d,%d)", i, j), 1e-17, b.X, a.X)
			chk.Float64(tst, io.Sf("y(%d,%d)", i, j), 1e-17, b.Y, a.Y)
			chk.Float64(tst, io.Sf("k(%d,%d)", i, j), 1e-17, b.K, a.K)
			chk.Int(tst, io.Sf("iB(%d,%d)", i, j), b.IB, a.IB)
		}
	}
}

func Test_vts02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vts02. output arrays")

	g := ana.AnnularDuct{X0: 0, X1: 1, Rh: 0.5, Rs: 1}.Grid(3, 3)
	ana.FreeVortex{
		UniformFlow: ana.UniformFlow{Vm: 30, Tt: 300, Pt: 1e5, Ga: 1.4},
		C:           20,
	}.Set(g)
	g.Apply(func(p *msh.Point) { p.Gam = math.Pi / 6 })

	b, err := EncodeVts(g)
	if err != nil {
		tst.Errorf("EncodeVts failed:\n%v", err)
		return
	}
	io.Pforan("%s", b)

	var vf inp.VtkFile
	err = xml.Unmarshal(b, &vf)
	if err != nil {
		tst.Errorf("Unmarshal failed:\n%v", err)
		return
	}
	piece := &vf.Grid.Piece
	chk.Int(tst, "number of arrays", len(piece.PointData), len(Outputs)+1)
	for _, o := range Outputs {
		if piece.FindArray(o.Name) == nil {
			tst.Errorf("array %q is missing", o.Name)
		}
	}

	values := func(name string) []float64 {
		vals, err := piece.FindArray(name).Values()
		if err != nil {
			tst.Fatalf("cannot parse %q:\n%v", name, err)
		}
		return vals
	}
	r, gam, V, q := values("r"), values("gam"), values("V"), values("q")
	for k := range r {
		chk.Float64(tst, "gam [deg]", 1e-13, gam[k], 30)
		chk.Float64(tst, "V", 1e-12, V[k], math.Hypot(30, 20/r[k]))
	}
	chk.Array(tst, "q", 1e-15, q, []float64{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1})
}

func Test_vts03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vts03. write to invalid directory")

	// a regular file cannot hold subdirectories
	blocker := filepath.Join(tst.TempDir(), "blocker")
	err := os.WriteFile(blocker, []byte("x"), 0644)
	if err != nil {
		tst.Errorf("cannot create file:\n%v", err)
		return
	}

	g := ana.AnnularDuct{X0: 0, X1: 1, Rh: 0.5, Rs: 1}.Grid(3, 3)
	err = WriteVts(g, filepath.Join(blocker, "results"), "vts03")
	if err == nil {
		tst.Errorf("WriteVts must fail when the directory cannot be created")
		return
	}
	io.Pforan("%v\n", err)
}
