// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// relative area below which a triangle is taken as degenerate
const degenerateTol = 1e-14

// Triangle holds the connectivity and the derived local frame of a planar element.
//
//	Normal = unit((P2-P1) × (P3-P1))
//	Strike = unit(ez × Normal)   or   ey·Normal.z if the triangle is horizontal
//	Dip    = Normal × Strike
//
// Local components are always ordered as (dip, strike, normal)
type Triangle struct {
	Verts    [3]int  // vertex indices into the owning surface
	Centroid r3.Vec  // centroid
	Normal   r3.Vec  // unit normal
	Strike   r3.Vec  // unit strike vector (horizontal)
	Dip      r3.Vec  // unit dip vector
	Area     float64 // area
}

// Frame returns the normal, strike and dip unit vectors of the triangle p1,p2,p3
func Frame(p1, p2, p3 r3.Vec) (normal, strike, dip r3.Vec) {
	normal = r3.Unit(r3.Cross(r3.Sub(p2, p1), r3.Sub(p3, p1)))
	strike = r3.Cross(r3.Vec{Z: 1}, normal)
	if r3.Norm(strike) == 0 {
		strike = r3.Vec{Y: normal.Z}
	}
	strike = r3.Unit(strike)
	dip = r3.Cross(normal, strike)
	return
}

// update computes the derived quantities
func (o *Triangle) update(p1, p2, p3 r3.Vec) error {
	c := r3.Cross(r3.Sub(p2, p1), r3.Sub(p3, p1))
	lmax := math.Max(r3.Norm2(r3.Sub(p2, p1)), math.Max(r3.Norm2(r3.Sub(p3, p2)), r3.Norm2(r3.Sub(p1, p3))))
	twiceArea := r3.Norm(c)
	if twiceArea == 0 || twiceArea <= degenerateTol*lmax {
		return fmt.Errorf("%w: triangle %v has zero area", ErrInvalidGeometry, o.Verts)
	}
	o.Area = twiceArea / 2
	o.Centroid = r3.Scale(1.0/3.0, r3.Add(p1, r3.Add(p2, p3)))
	o.Normal, o.Strike, o.Dip = Frame(p1, p2, p3)
	return nil
}

// ToLocal returns the components of v along (dip, strike, normal)
func (o *Triangle) ToLocal(v r3.Vec) [3]float64 {
	return [3]float64{r3.Dot(o.Dip, v), r3.Dot(o.Strike, v), r3.Dot(o.Normal, v)}
}

// ToGlobal returns the global vector with local components b = (dip, strike, normal)
func (o *Triangle) ToGlobal(b [3]float64) r3.Vec {
	return r3.Add(r3.Scale(b[0], o.Dip), r3.Add(r3.Scale(b[1], o.Strike), r3.Scale(b[2], o.Normal)))
}

// Axis returns the unit vector of local axis i (0:dip, 1:strike, 2:normal)
func (o *Triangle) Axis(i int) r3.Vec {
	switch i {
	case 0:
		return o.Dip
	case 1:
		return o.Strike
	}
	return o.Normal
}
