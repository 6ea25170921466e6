// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"errors"
	"math"

	"github.com/elac-safran/yams/dif"
	"github.com/elac-safran/yams/msh"
	"gonum.org/v1/gonum/mat"
)

// ComputeMetrics computes the transformation between computational coordinates (ξ,η)
// and the physical coordinates x1 = fx1(p), x2 = fx2(p) at all nodes. An exactly
// singular Jacobian yields NaN inverse metrics.
// Note: fields read by fx1 and fx2 (e.g. abscissas) must be available
func ComputeMetrics(g *msh.Grid, met *msh.Metrics, fx1, fx2 msh.Field) error {
	dKsi, dEth := met.Steps()
	return g.ForEachRow(true, func(i int) error {
		jac := mat.NewDense(2, 2, nil)
		var inv mat.Dense
		for j := 0; j < g.Nj; j++ {
			mp := met.At(i, j)
			mp.X1Ksi = dif.DKsi(g, i, j, dKsi, fx1)
			mp.X1Eth = dif.DEth(g, i, j, dEth, fx1)
			mp.X2Ksi = dif.DKsi(g, i, j, dKsi, fx2)
			mp.X2Eth = dif.DEth(g, i, j, dEth, fx2)
			jac.Set(0, 0, mp.X1Ksi)
			jac.Set(0, 1, mp.X1Eth)
			jac.Set(1, 0, mp.X2Ksi)
			jac.Set(1, 1, mp.X2Eth)
			mp.J = mat.Det(jac)
			if singular(inv.Inverse(jac)) {
				nan := math.NaN()
				mp.KsiX1, mp.KsiX2, mp.EthX1, mp.EthX2 = nan, nan, nan, nan
				continue
			}
			mp.KsiX1 = inv.At(0, 0)
			mp.KsiX2 = inv.At(0, 1)
			mp.EthX1 = inv.At(1, 0)
			mp.EthX2 = inv.At(1, 1)
		}
		return nil
	})
}

// singular tells whether err reports an exactly singular matrix. Ill-conditioned
// matrices still have a usable inverse
func singular(err error) bool {
	if err == nil {
		return false
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return math.IsInf(float64(cond), 1)
	}
	return true
}
