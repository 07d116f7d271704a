// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PennyCrack computes Sneddon's solution to a penny-shaped crack in an infinite linear elastic
// medium opened by a uniform pressure (or, equivalently, by a remote tension normal to it)
//
//               p
//         ↑  ↑  ↑  ↑  ↑
//     ----=============----       crack of radius a
//         ↓  ↓  ↓  ↓  ↓
//               p
type PennyCrack struct {
	// input
	a float64 // radius
	p float64 // pressure (positive opens the crack)
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *PennyCrack) Init(prms dbf.Params) (err error) {

	// default values
	o.a = 1
	o.p = 1
	o.E = 1
	o.ν = 0.25

	// parameters
	for _, p := range prms {
		switch p.N {
		case "a":
			o.a = p.V
		case "p":
			o.p = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		default:
			return chk.Err("PennyCrack: parameter named %q is invalid", p.N)
		}
	}
	if o.a <= 0 || o.E <= 0 {
		return chk.Err("PennyCrack: radius and Young's modulus must be positive. a=%g, E=%g", o.a, o.E)
	}
	return
}

// Opening returns the total opening (displacement jump) at distance r from the centre
func (o *PennyCrack) Opening(r float64) float64 {
	if r >= o.a {
		return 0
	}
	return 8 * (1 - o.ν*o.ν) * o.p * math.Sqrt(o.a*o.a-r*r) / (math.Pi * o.E)
}

// MaxOpening returns the opening at the centre
func (o *PennyCrack) MaxOpening() float64 { return o.Opening(0) }

// Volume returns the volume of the opened crack
func (o *PennyCrack) Volume() float64 {
	return 16 * (1 - o.ν*o.ν) * o.p * o.a * o.a * o.a / (3 * o.E)
}

// StressIntensity returns the mode I stress intensity factor along the crack front
func (o *PennyCrack) StressIntensity() float64 {
	return 2 * o.p * math.Sqrt(o.a/math.Pi)
}

// CheckOpening checks computed openings w at distances r from the centre. The tolerance is
// relative to the maximum opening
func (o *PennyCrack) CheckOpening(tst *testing.T, r, w []float64, tol float64) {
	w0 := o.MaxOpening()
	for i, ri := range r {
		wa := o.Opening(ri)
		if chk.Verbose {
			io.Pf("r = %8.5f  w = %12.8f  wana = %12.8f  err = %8.2e\n", ri, w[i], wa, math.Abs(w[i]-wa)/w0)
		}
		chk.Float64(tst, io.Sf("w(%.4f)/w0", ri), tol, w[i]/w0, wa/w0)
	}
}
