// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solid implements models for the elastic medium surrounding the boundary elements
package solid

import (
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for elastic media
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	GetRho() float64            // returns density
	Shear() float64             // shear modulus μ
	Poisson() float64           // Poisson's coefficient ν
	Stress(ε geo.Sym) geo.Sym   // σ = D:ε
	Strain(σ geo.Sym) geo.Sym   // ε = C:σ
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
