// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"
)

// BladeMode defines how a blade row enters the meridional solution
type BladeMode int

// blade modes
const (
	ModeDirect        BladeMode = iota // blade angles are imposed
	ModeDesignBetaOut                  // exit relative angle is imposed along span
	ModeDesignPhi                      // exit swirl is designed from streamline slope
)

// modeNames maps names to modes
var modeNames = map[string]BladeMode{
	"DIRECT":          ModeDirect,
	"DESIGN_BETA_OUT": ModeDesignBetaOut,
	"DESIGN_PHI":      ModeDesignPhi,
}

// ParseBladeMode returns the mode named name (case insensitive). Unknown names give
// ModeDirect and ok = false
func ParseBladeMode(name string) (mode BladeMode, ok bool) {
	mode, ok = modeNames[strings.ToUpper(strings.TrimSpace(name))]
	return
}

// String returns the name of the mode
func (o BladeMode) String() string {
	for name, mode := range modeNames {
		if mode == o {
			return name
		}
	}
	return "DIRECT"
}

// MarshalJSON implements json.Marshaler
func (o BladeMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler. Unknown names fall back to DIRECT
func (o *BladeMode) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return chk.Err("blade mode must be a string:\n%v", err)
	}
	*o, _ = ParseBladeMode(name)
	return nil
}

// BladeInfo holds data of one blade row
type BladeInfo struct {

	// input
	Name string    `json:"name"`  // name of blade row
	IB   int       `json:"iB"`    // index of blade row
	I1   int       `json:"i1"`    // first station of blade row
	I2   int       `json:"i2"`    // last station of blade row
	Is   int       `json:"is"`    // station of stacking line
	Omg  float64   `json:"omg"`   // rotation speed [rad/s]
	Mode BladeMode `json:"mode"`  // operating mode
	Span []float64 `json:"span"`  // span fractions where BOut is given; strictly increasing
	BOut []float64 `json:"b_out"` // exit relative flow angle [rad] @ span fractions

	// derived
	betaOut interp.Predictor // BOut(span)
}

// PostProcess checks data and fits the span-wise exit angle
func (o *BladeInfo) PostProcess() error {
	if o.I1 < 0 || o.I2 < o.I1 || o.Is < o.I1 || o.Is > o.I2 {
		return chk.Err("blade %q: invalid station range i1=%d, i2=%d, is=%d", o.Name, o.I1, o.I2, o.Is)
	}
	n := len(o.Span)
	if len(o.BOut) != n {
		return chk.Err("blade %q: span and b_out must have the same length; %d != %d", o.Name, n, len(o.BOut))
	}
	for k := 1; k < n; k++ {
		if o.Span[k] <= o.Span[k-1] {
			return chk.Err("blade %q: span must be strictly increasing", o.Name)
		}
	}
	switch {
	case n == 0:
		o.betaOut = interp.Constant(0)
		return nil
	case n == 1:
		o.betaOut = interp.Constant(o.BOut[0])
		return nil
	case n == 2:
		var pl interp.PiecewiseLinear
		pl.Fit(o.Span, o.BOut)
		o.betaOut = pl
		return nil
	}
	var nc interp.NaturalCubic
	if err := nc.Fit(o.Span, o.BOut); err != nil {
		return chk.Err("blade %q: cannot fit b_out:\n%v", o.Name, err)
	}
	o.betaOut = &nc
	return nil
}

// BetaOut returns the exit relative flow angle @ span fraction q. Values outside
// [Span[0], Span[n-1]] are clamped to the end values
func (o *BladeInfo) BetaOut(q float64) float64 {
	if o.betaOut == nil {
		chk.Panic("blade %q: BetaOut requires PostProcess", o.Name)
	}
	if n := len(o.Span); n > 1 {
		q = math.Max(o.Span[0], math.Min(o.Span[n-1], q))
	}
	return o.betaOut.Predict(q)
}

// Contains tells whether station i belongs to this blade row
func (o *BladeInfo) Contains(i int) bool {
	return i >= o.I1 && i <= o.I2
}
