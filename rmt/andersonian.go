// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rmt

import (
	"math"

	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Andersonian implements an Andersonian stress regime: one principal stress is vertical and
// the other two are horizontal
type Andersonian struct {
	Sh       float64 // minimum horizontal stress
	SH       float64 // maximum horizontal stress
	Sv       float64 // vertical stress
	Theta    float64 // azimuth of SH, in degrees, from north (+y) towards east (+x)
	Gradient bool    // values are per unit depth; i.e. multiplied by |z|
}

// newAndersonian reads h, H, v, theta and gradient (≠0 means true)
func newAndersonian(prms dbf.Params) (Remote, error) {
	o := new(Andersonian)
	for _, p := range prms {
		switch p.N {
		case "h", "Sh":
			o.Sh = p.V
		case "H", "SH":
			o.SH = p.V
		case "v", "Sv":
			o.Sv = p.V
		case "theta":
			o.Theta = p.V
		case "gradient":
			o.Gradient = p.V != 0
		default:
			return nil, chk.Err("andersonian: parameter named %q is invalid", p.N)
		}
	}
	return o, nil
}

// StressAt implements Remote
func (o *Andersonian) StressAt(p r3.Vec) geo.Sym {
	t := o.Theta * math.Pi / 180.0
	s, c := math.Sin(t), math.Cos(t)
	σ := geo.Sym{
		o.SH*s*s + o.Sh*c*c,   // xx
		(o.SH - o.Sh) * s * c, // xy
		0,                     // xz
		o.SH*c*c + o.Sh*s*s,   // yy
		0,                     // yz
		o.Sv,                  // zz
	}
	if o.Gradient {
		return σ.Scale(math.Abs(p.Z))
	}
	return σ
}
