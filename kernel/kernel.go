// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the elastic fields of triangular dislocations (TD) with constant
// Burgers vector in a homogeneous isotropic full-space or half-space, following the
// artefact-free solution of Nikkhoo and Walter (2015), Geophys. J. Int. 201, 1119-1141.
//
// A TD is the superposition of three pairs of angular dislocations plus the jump given by the
// Burgers function. In the half-space (z <= 0, traction-free at z = 0) the field is the sum of
// the TD, its image with respect to z = 0 and a harmonic free surface correction.
//
// Burgers vectors are given in the local frame of the source as (dip, strike, normal) and
// represent the displacement jump u⁺ - u⁻ across the element, where the + face is the one the
// normal points to. A positive normal component is an opening
package kernel

import (
	"github.com/cpmech/gobem/geo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel evaluates displacements, strains and stresses of triangular dislocations
type Kernel struct {
	Mu        float64 // shear modulus
	Nu        float64 // Poisson's coefficient
	HalfSpace bool    // traction-free surface at z = 0
}

// New returns a new kernel
func New(μ, ν float64, halfSpace bool) *Kernel {
	return &Kernel{Mu: μ, Nu: ν, HalfSpace: halfSpace}
}

// Lambda returns the first Lamé parameter
func (o *Kernel) Lambda() float64 { return 2 * o.Mu * o.Nu / (1 - 2*o.Nu) }

// Displ returns the displacement at x due to the Burgers vector b (dip, strike, normal) of td
func (o *Kernel) Displ(x r3.Vec, td *TD, b [3]float64) r3.Vec {
	ds, ss, ts := b[0], b[1], b[2]
	u := td.displFS(x, ss, ds, ts, o.Nu)
	if o.HalfSpace {
		u = r3.Add(u, td.image.displFS(x, ss, ds, ts, o.Nu))
		u = r3.Add(u, td.displHar(x, ss, ds, ts, o.Nu))
	}
	return u
}

// Strain returns the strain at x due to the Burgers vector b (dip, strike, normal) of td
func (o *Kernel) Strain(x r3.Vec, td *TD, b [3]float64) geo.Sym {
	ds, ss, ts := b[0], b[1], b[2]
	ε := td.strainFS(x, ss, ds, ts, o.Nu)
	if o.HalfSpace {
		ε = ε.Add(td.image.strainFS(x, ss, ds, ts, o.Nu))
		ε = ε.Add(td.strainHar(x, ss, ds, ts, o.Nu))
	}
	return ε
}

// Stress returns the stress at x due to the Burgers vector b (dip, strike, normal) of td
func (o *Kernel) Stress(x r3.Vec, td *TD, b [3]float64) geo.Sym {
	return o.Hooke(o.Strain(x, td, b))
}

// Hooke returns σ = 2 μ ε + λ tr(ε) I
func (o *Kernel) Hooke(ε geo.Sym) geo.Sym {
	return ε.Scale(2 * o.Mu).Add(geo.Iso(o.Lambda() * ε.Trace()))
}

// Traction returns the traction at the centroid of dst, on the plane of dst and in its local
// frame (dip, strike, normal), due to the Burgers vector b of src
func (o *Kernel) Traction(dst, src *TD, b [3]float64) [3]float64 {
	σ := o.Stress(dst.Centroid, src, b)
	return dst.ToLocal(σ.Dot(dst.Vn))
}

// Influence returns the influence coefficients of src upon dst: C[k][m] is the traction along
// the local axis k of dst due to a unit Burgers vector along the local axis m of src. With
// dst == src it returns the (finite) self-influence
func (o *Kernel) Influence(dst, src *TD) (C [3][3]float64) {
	for m := 0; m < 3; m++ {
		var b [3]float64
		b[m] = 1
		t := o.Traction(dst, src, b)
		for k := 0; k < 3; k++ {
			C[k][m] = t[k]
		}
	}
	return
}
