// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements an isotropic linear elastic medium
type LinElast struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return NewLinElast(1, 0.25, 0) }
}

// NewLinElast returns a new medium
func NewLinElast(E, ν, ρ float64) *LinElast {
	return &LinElast{E: E, Nu: ν, Rho: ρ}
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E", "young":
			o.E = p.V
		case "nu", "poisson":
			o.Nu = p.V
		case "rho", "density":
			o.Rho = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is invalid", p.N)
		}
	}
	return o.Check()
}

// Check checks the elastic constants
func (o *LinElast) Check() error {
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: Poisson's coefficient must be in (-1, 0.5). ν = %g is invalid", o.Nu)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 1},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "rho", V: 0},
	}
}

// GetRho returns density
func (o *LinElast) GetRho() float64 { return o.Rho }

// Poisson returns ν
func (o *LinElast) Poisson() float64 { return o.Nu }

// Shear returns μ = E / (2 (1 + ν))
func (o *LinElast) Shear() float64 { return o.E / (2 * (1 + o.Nu)) }

// Lame returns the first Lamé parameter λ = 2 μ ν / (1 - 2 ν)
func (o *LinElast) Lame() float64 { return 2 * o.Shear() * o.Nu / (1 - 2*o.Nu) }

// Bulk returns K = E / (3 (1 - 2 ν))
func (o *LinElast) Bulk() float64 { return o.E / (3 * (1 - 2*o.Nu)) }

// Stress returns σ = 2 μ ε + λ tr(ε) I
func (o *LinElast) Stress(ε geo.Sym) geo.Sym {
	return ε.Scale(2 * o.Shear()).Add(geo.Iso(o.Lame() * ε.Trace()))
}

// Strain returns ε = ((1 + ν) σ - ν tr(σ) I) / E
func (o *LinElast) Strain(σ geo.Sym) geo.Sym {
	return σ.Scale((1 + o.Nu) / o.E).Add(geo.Iso(-o.Nu * σ.Trace() / o.E))
}
