// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "gonum.org/v1/gonum/spatial/r3"

// Sym holds a symmetric 3x3 tensor (stress or strain) as [xx, xy, xz, yy, yz, zz]
type Sym [6]float64

// NewSym returns the symmetric part of m
func NewSym(m [3][3]float64) Sym {
	return Sym{
		m[0][0],
		(m[0][1] + m[1][0]) / 2,
		(m[0][2] + m[2][0]) / 2,
		m[1][1],
		(m[1][2] + m[2][1]) / 2,
		m[2][2],
	}
}

// Iso returns v·I
func Iso(v float64) Sym { return Sym{v, 0, 0, v, 0, v} }

func (o Sym) XX() float64 { return o[0] }
func (o Sym) XY() float64 { return o[1] }
func (o Sym) XZ() float64 { return o[2] }
func (o Sym) YY() float64 { return o[3] }
func (o Sym) YZ() float64 { return o[4] }
func (o Sym) ZZ() float64 { return o[5] }

// Mat returns the full matrix
func (o Sym) Mat() [3][3]float64 {
	return [3][3]float64{
		{o[0], o[1], o[2]},
		{o[1], o[3], o[4]},
		{o[2], o[4], o[5]},
	}
}

// Trace returns xx + yy + zz
func (o Sym) Trace() float64 { return o[0] + o[3] + o[5] }

// Add returns o + b
func (o Sym) Add(b Sym) (c Sym) {
	for i := 0; i < 6; i++ {
		c[i] = o[i] + b[i]
	}
	return
}

// Scale returns s·o
func (o Sym) Scale(s float64) (c Sym) {
	for i := 0; i < 6; i++ {
		c[i] = s * o[i]
	}
	return
}

// Dot returns o·n; the traction vector when o is a stress and n a unit normal
func (o Sym) Dot(n r3.Vec) r3.Vec {
	return r3.Vec{
		X: o[0]*n.X + o[1]*n.Y + o[2]*n.Z,
		Y: o[1]*n.X + o[3]*n.Y + o[4]*n.Z,
		Z: o[2]*n.X + o[4]*n.Y + o[5]*n.Z,
	}
}

// Rotate returns R·o·Rᵀ where the columns of R are e0, e1 and e2. Rotate maps
// components given in the frame {e0,e1,e2} to the global frame
func (o Sym) Rotate(e0, e1, e2 r3.Vec) Sym {
	R := [3][3]float64{
		{e0.X, e1.X, e2.X},
		{e0.Y, e1.Y, e2.Y},
		{e0.Z, e1.Z, e2.Z},
	}
	T := o.Mat()
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					out[i][j] += R[i][k] * R[j][l] * T[k][l]
				}
			}
		}
	}
	return Sym{out[0][0], out[0][1], out[0][2], out[1][1], out[1][2], out[2][2]}
}
