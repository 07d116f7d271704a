// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gobem/mdl/solid"
	"github.com/cpmech/gosl/fun/dbf"
)

// MaterialData holds the elastic medium data
type MaterialData struct {
	Model   string     `json:"model"   yaml:"model"`   // name of model; e.g. "lin-elast"
	Young   float64    `json:"young"   yaml:"young"`   // Young's modulus
	Poisson float64    `json:"poisson" yaml:"poisson"` // Poisson's coefficient
	Density float64    `json:"density" yaml:"density"` // density
	Prms    dbf.Params `json:"prms"    yaml:"prms"`    // parameters; overrides young, poisson and density
}

// SetDefault sets defaults values
func (o *MaterialData) SetDefault() {
	o.Model = "lin-elast"
	o.Young = 1
	o.Poisson = 0.25
}

// MatPrms returns the parameters of the elastic medium
func (o *MaterialData) MatPrms() dbf.Params {
	if len(o.Prms) > 0 {
		return o.Prms
	}
	return dbf.Params{
		&dbf.P{N: "E", V: o.Young},
		&dbf.P{N: "nu", V: o.Poisson},
		&dbf.P{N: "rho", V: o.Density},
	}
}

// GetModel allocates and initialises the elastic medium
func (o *MaterialData) GetModel() (mdl solid.Model, err error) {
	mdl, err = solid.New(o.Model)
	if err != nil {
		return
	}
	err = mdl.Init(o.MatPrms())
	return
}
