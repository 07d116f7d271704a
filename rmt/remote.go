// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rmt implements remote (far-field) stress providers. Remote stresses act on the whole
// medium and are superposed with the perturbation caused by the dislocations. Tension is positive
package rmt

import (
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Remote defines remote stress providers. Implementations must be pure and reentrant since
// they are called concurrently
type Remote interface {
	StressAt(p r3.Vec) geo.Sym
}

// New allocates a remote by name ("uniform" or "andersonian") initialised with prms
func New(name string, prms dbf.Params) (Remote, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("remote %q is not available", name)
	}
	return allocator(prms)
}

// allocators holds all available remotes
var allocators = map[string]func(prms dbf.Params) (Remote, error){
	"uniform":     newUniform,
	"andersonian": newAndersonian,
}

// StressAt returns the sum of the stresses of all remotes at p
func StressAt(rs []Remote, p r3.Vec) (σ geo.Sym) {
	for _, r := range rs {
		σ = σ.Add(r.StressAt(p))
	}
	return
}

// Traction returns the remote traction vector at p on the plane with unit normal n
func Traction(r Remote, p, n r3.Vec) r3.Vec {
	return r.StressAt(p).Dot(n)
}

// User wraps a function of position ///////////////////////////////////////////////////////////

// User is a remote defined by a user function
type User struct {
	fcn func(x, y, z float64) geo.Sym
}

// NewUser returns a new user remote. A nil function gives zero stresses
func NewUser(f func(x, y, z float64) geo.Sym) *User {
	return &User{fcn: f}
}

// SetFunction replaces the function
func (o *User) SetFunction(f func(x, y, z float64) geo.Sym) { o.fcn = f }

// StressAt implements Remote
func (o *User) StressAt(p r3.Vec) geo.Sym {
	if o.fcn == nil {
		return geo.Sym{}
	}
	return o.fcn(p.X, p.Y, p.Z)
}

// Uniform /////////////////////////////////////////////////////////////////////////////////////

// Uniform is a constant remote stress
type Uniform struct {
	Sig geo.Sym
}

// StressAt implements Remote
func (o Uniform) StressAt(p r3.Vec) geo.Sym { return o.Sig }

// newUniform reads the components sxx, sxy, sxz, syy, syz and szz
func newUniform(prms dbf.Params) (Remote, error) {
	var o Uniform
	for _, p := range prms {
		switch p.N {
		case "sxx":
			o.Sig[0] = p.V
		case "sxy":
			o.Sig[1] = p.V
		case "sxz":
			o.Sig[2] = p.V
		case "syy":
			o.Sig[3] = p.V
		case "syz":
			o.Sig[4] = p.V
		case "szz":
			o.Sig[5] = p.V
		default:
			return nil, chk.Err("uniform: parameter named %q is invalid", p.N)
		}
	}
	return o, nil
}

// Sum adds up several remotes
type Sum []Remote

// StressAt implements Remote
func (o Sum) StressAt(p r3.Vec) geo.Sym { return StressAt(o, p) }

// Funcs ///////////////////////////////////////////////////////////////////////////////////////

// Funcs is a remote whose components (xx, xy, xz, yy, yz, zz) are given by functions of
// position. Nil functions mean zero
type Funcs [6]dbf.T

// StressAt implements Remote
func (o Funcs) StressAt(p r3.Vec) (σ geo.Sym) {
	x := []float64{p.X, p.Y, p.Z}
	for i, f := range o {
		if f != nil {
			σ[i] = f.F(0, x)
		}
	}
	return
}
