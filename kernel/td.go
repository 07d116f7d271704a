// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"github.com/cpmech/gobem/geo"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	planeTol = 1e-12 // |x|/Size below which a point lies in the plane of a TD
	edgeTol  = 1e-10 // normal shift, relative to Size, of points lying on an edge
	fdStep   = 1e-3  // finite difference step, relative to Size, of the harmonic strains
)

// TD holds a triangular dislocation. Its coordinate system (TDCS) has the origin at P2 and
// axes x (normal), y (strike) and z (dip)
type TD struct {
	P1, P2, P3 r3.Vec  // vertices
	Vn, Vs, Vd r3.Vec  // normal, strike and dip unit vectors
	Centroid   r3.Vec  // centroid
	Size       float64 // longest edge

	// TDCS
	p1, p3        r3.Vec  // vertices 1 and 3 (vertex 2 is at the origin)
	e12, e13, e23 r3.Vec  // unit side vectors
	A, B, C       float64 // interior angles at vertices 1, 2 and 3

	image *TD // image with respect to z = 0
}

// NewTD returns a new triangular dislocation with vertices p1, p2 and p3
func NewTD(p1, p2, p3 r3.Vec) *TD {
	o := newTD(p1, p2, p3)
	mirror := func(p r3.Vec) r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: -p.Z} }
	o.image = newTD(mirror(p1), mirror(p2), mirror(p3))
	return o
}

func newTD(p1, p2, p3 r3.Vec) (o *TD) {
	o = &TD{P1: p1, P2: p2, P3: p3}
	o.Vn, o.Vs, o.Vd = geo.Frame(p1, p2, p3)
	o.Centroid = r3.Scale(1.0/3.0, r3.Add(p1, r3.Add(p2, p3)))
	o.Size = math.Max(r3.Norm(r3.Sub(p2, p1)), math.Max(r3.Norm(r3.Sub(p3, p2)), r3.Norm(r3.Sub(p1, p3))))
	o.p1 = o.toLocal(r3.Sub(p1, p2))
	o.p3 = o.toLocal(r3.Sub(p3, p2))
	o.e12 = r3.Unit(r3.Scale(-1, o.p1))
	o.e13 = r3.Unit(r3.Sub(o.p3, o.p1))
	o.e23 = r3.Unit(o.p3)
	o.A = math.Acos(r3.Dot(o.e12, o.e13))
	o.B = math.Acos(-r3.Dot(o.e12, o.e23))
	o.C = math.Acos(r3.Dot(o.e23, o.e13))
	return
}

// toLocal returns the TDCS components of the global vector v
func (o *TD) toLocal(v r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(o.Vn, v), Y: r3.Dot(o.Vs, v), Z: r3.Dot(o.Vd, v)}
}

// toGlobal returns the global vector with TDCS components v
func (o *TD) toGlobal(v r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(v.X, o.Vn), r3.Add(r3.Scale(v.Y, o.Vs), r3.Scale(v.Z, o.Vd)))
}

// ToLocal returns the components of v along (dip, strike, normal)
func (o *TD) ToLocal(v r3.Vec) [3]float64 {
	return [3]float64{r3.Dot(o.Vd, v), r3.Dot(o.Vs, v), r3.Dot(o.Vn, v)}
}

// Burgers returns the global Burgers vector with components b = (dip, strike, normal)
func (o *TD) Burgers(b [3]float64) r3.Vec {
	return r3.Add(r3.Scale(b[0], o.Vd), r3.Add(r3.Scale(b[1], o.Vs), r3.Scale(b[2], o.Vn)))
}

// position returns the TDCS coordinates of X and the configuration of the angular
// dislocations. Points in the plane of the TD are snapped onto it and points on an edge are
// shifted along the normal and evaluated in configuration I
func (o *TD) position(X r3.Vec) (x, y, z float64, config int) {
	l := o.toLocal(r3.Sub(X, o.P2))
	x, y, z = l.X, l.Y, l.Z
	if math.Abs(x) < planeTol*o.Size {
		x = 0
	}
	config = o.mode(x, y, z)
	if config == 0 {
		x = edgeTol * o.Size
		config = 1
	}
	return
}

// mode returns 1 (configuration I) or -1 (configuration II) depending on the position of the
// projection of (x,y,z) onto the TD plane. It returns 0 for points on an edge within the plane
func (o *TD) mode(x, y, z float64) int {
	p1y, p1z, p3y, p3z := o.p1.Y, o.p1.Z, o.p3.Y, o.p3.Z
	den := -p3z*(p1y-p3y) + p3y*(p1z-p3z)
	a := (-p3z*(y-p3y) + p3y*(z-p3z)) / den
	b := ((p3z-p1z)*(y-p3y) + (p1y-p3y)*(z-p3z)) / den
	c := 1 - a - b
	t := 1
	if (a <= 0 && b > c && c > a) || (b <= 0 && c > a && a > b) || (c <= 0 && a > b && b > c) {
		t = -1
	}
	if (a == 0 && b >= 0 && c >= 0) || (a >= 0 && b == 0 && c >= 0) || (a >= 0 && b >= 0 && c == 0) {
		t = 0
	}
	if t == 0 && x != 0 {
		t = 1
	}
	return t
}

// legs returns the apexes and leg directions of the three angular dislocation pairs
func (o *TD) legs(config int) (apex, side [3]r3.Vec, angle [3]float64) {
	apex = [3]r3.Vec{o.p1, {}, o.p3}
	angle = [3]float64{o.A, o.B, o.C}
	if config == 1 {
		side = [3]r3.Vec{r3.Scale(-1, o.e13), o.e12, o.e23}
	} else {
		side = [3]r3.Vec{o.e13, r3.Scale(-1, o.e12), r3.Scale(-1, o.e23)}
	}
	return
}

// burgersFunc returns the solid angle term of the TD displacements at (x,y,z). It vanishes in
// the plane of the TD, which yields the mean of both faces
func (o *TD) burgersFunc(x, y, z float64) float64 {
	if x == 0 {
		return 0
	}
	a := r3.Vec{X: -x, Y: o.p1.Y - y, Z: o.p1.Z - z}
	b := r3.Vec{X: -x, Y: -y, Z: -z}
	c := r3.Vec{X: -x, Y: o.p3.Y - y, Z: o.p3.Z - z}
	na, nb, nc := r3.Norm(a), r3.Norm(b), r3.Norm(c)
	num := r3.Dot(a, r3.Cross(b, c))
	den := na*nb*nc + r3.Dot(a, b)*nc + r3.Dot(a, c)*nb + r3.Dot(b, c)*na
	return -2 * math.Atan2(num, den) / (4 * math.Pi)
}

// displFS returns the full-space displacements at X due to strike-slip ss, dip-slip ds and
// tensile-slip ts
func (o *TD) displFS(X r3.Vec, ss, ds, ts, nu float64) r3.Vec {
	bx, by, bz := ts, ss, ds
	x, y, z, config := o.position(X)
	apex, side, angle := o.legs(config)
	var u r3.Vec
	for i := 0; i < 3; i++ {
		du, dv, dw := tdSetupD(x, y, z, angle[i], bx, by, bz, nu, apex[i], side[i])
		u = r3.Add(u, r3.Vec{X: du, Y: dv, Z: dw})
	}
	Fi := o.burgersFunc(x, y, z)
	u = r3.Add(u, r3.Vec{X: bx * Fi, Y: by * Fi, Z: bz * Fi})
	return o.toGlobal(u)
}

// strainFS returns the full-space strains at X due to strike-slip ss, dip-slip ds and
// tensile-slip ts
func (o *TD) strainFS(X r3.Vec, ss, ds, ts, nu float64) geo.Sym {
	bx, by, bz := ts, ss, ds
	x, y, z, config := o.position(X)
	apex, side, angle := o.legs(config)
	var ε [3][3]float64
	for n := 0; n < 3; n++ {
		e := tdSetupS(x, y, z, angle[n], bx, by, bz, nu, apex[n], side[n])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				ε[i][j] += e[i][j]
			}
		}
	}
	return geo.NewSym(ε).Rotate(o.Vn, o.Vs, o.Vd)
}

// displHar returns the free surface correction of the half-space displacements
func (o *TD) displHar(X r3.Vec, ss, ds, ts, nu float64) r3.Vec {
	bX := r3.Add(r3.Scale(ts, o.Vn), r3.Add(r3.Scale(ss, o.Vs), r3.Scale(ds, o.Vd)))
	u := angSetupFSC(X, bX, o.P1, o.P2, nu)
	u = r3.Add(u, angSetupFSC(X, bX, o.P2, o.P3, nu))
	return r3.Add(u, angSetupFSC(X, bX, o.P3, o.P1, nu))
}

// strainHar returns the free surface correction of the half-space strains. The correction is
// harmonic in z <= 0 and smooth across z = 0; its gradient is computed with fourth-order
// central differences
func (o *TD) strainHar(X r3.Vec, ss, ds, ts, nu float64) geo.Sym {
	h := fdStep * o.Size
	at := func(j int, d float64) r3.Vec {
		Y := X
		switch j {
		case 0:
			Y.X += d
		case 1:
			Y.Y += d
		default:
			Y.Z += d
		}
		return o.displHar(Y, ss, ds, ts, nu)
	}
	var G [3][3]float64
	for j := 0; j < 3; j++ {
		a, b, c, d := at(j, -2*h), at(j, -h), at(j, h), at(j, 2*h)
		g := r3.Scale(1/(12*h), r3.Add(r3.Sub(a, d), r3.Scale(8, r3.Sub(c, b))))
		G[0][j], G[1][j], G[2][j] = g.X, g.Y, g.Z
	}
	return geo.NewSym(G)
}

// tdSetupD transforms (x,y,z) and the slip into the system of the angular dislocation pair with
// apex tri and leg direction side, and returns the displacements in TDCS
func tdSetupD(x, y, z, alpha, bx, by, bz, nu float64, tri, side r3.Vec) (u, v, w float64) {
	a00, a01, a10, a11 := side.Z, -side.Y, side.Y, side.Z
	y1 := a00*(y-tri.Y) + a01*(z-tri.Z)
	z1 := a10*(y-tri.Y) + a11*(z-tri.Z)
	by1 := a00*by + a01*bz
	bz1 := a10*by + a11*bz
	u, v0, w0 := angDisDisp(x, y1, z1, -math.Pi+alpha, bx, by1, bz1, nu)
	v = a00*v0 + a10*w0
	w = a01*v0 + a11*w0
	return
}

// tdSetupS is the strain counterpart of tdSetupD
func tdSetupS(x, y, z, alpha, bx, by, bz, nu float64, tri, side r3.Vec) (ε [3][3]float64) {
	a00, a01, a10, a11 := side.Z, -side.Y, side.Y, side.Z
	y1 := a00*(y-tri.Y) + a01*(z-tri.Z)
	z1 := a10*(y-tri.Y) + a11*(z-tri.Z)
	by1 := a00*by + a01*bz
	bz1 := a10*by + a11*bz
	exx, eyy, ezz, exy, exz, eyz := angDisStrain(x, y1, z1, -math.Pi+alpha, bx, by1, bz1, nu)
	T := [3][3]float64{{exx, exy, exz}, {exy, eyy, eyz}, {exz, eyz, ezz}}

	// ADCS → TDCS: ε = Mᵀ·T·M
	M := [3][3]float64{{1, 0, 0}, {0, a00, a01}, {0, a10, a11}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					ε[i][j] += M[k][i] * M[l][j] * T[k][l]
				}
			}
		}
	}
	return
}
