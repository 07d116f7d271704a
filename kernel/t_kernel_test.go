// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

func vec(v r3.Vec) []float64 { return []float64{v.X, v.Y, v.Z} }

// numStrain computes the strain at x by differentiating the displacements numerically
func numStrain(ker *Kernel, x r3.Vec, td *TD, b [3]float64, h float64) geo.Sym {
	var G [3][3]float64
	for j := 0; j < 3; j++ {
		at := func(d float64) r3.Vec {
			y := x
			switch j {
			case 0:
				y.X += d
			case 1:
				y.Y += d
			default:
				y.Z += d
			}
			return ker.Displ(y, td, b)
		}
		g := r3.Scale(1/(12*h), r3.Add(r3.Sub(at(-2*h), at(2*h)), r3.Scale(8, r3.Sub(at(h), at(-h)))))
		G[0][j], G[1][j], G[2][j] = g.X, g.Y, g.Z
	}
	return geo.NewSym(G)
}

func Test_self01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("self01")

	// E = 1, ν = 0.25
	ker := New(0.4, 0.25, false)
	td := NewTD(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
	C := ker.Influence(td, td)
	io.Pforan("C = %v\n", C)
	chk.Array(tst, "C[dip]", 1e-12, C[0][:], []float64{-0.6557891357195175, 0.03443309556944647, 0})
	chk.Array(tst, "C[strike]", 1e-12, C[1][:], []float64{0.03443309556944644, -0.6557891357195174, 0})
	chk.Array(tst, "C[normal]", 1e-12, C[2][:], []float64{0, 0, -0.7494732979651628})

	// the centroid computed from the surface must give the same values
	s, _ := geo.NewSurface([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, []int{0, 1, 2})
	chk.Array(tst, "centroid", 1e-15, vec(td.Centroid), vec(s.Triangle(0).Centroid))
	t := s.Triangle(0)
	chk.Array(tst, "normal", 1e-15, vec(td.Vn), vec(t.Normal))
	chk.Array(tst, "strike", 1e-15, vec(td.Vs), vec(t.Strike))
	chk.Array(tst, "dip", 1e-15, vec(td.Vd), vec(t.Dip))
}

func Test_grad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grad01")

	rnd.Init(1234)
	td := NewTD(r3.Vec{X: -1, Y: -1, Z: -5}, r3.Vec{X: 1, Y: -1, Z: -5}, r3.Vec{X: -1, Y: 1, Z: -4})
	for _, hs := range []bool{false, true} {
		ker := New(1, 0.25, hs)
		for _, b := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.3, -0.7, 0.2}} {
			for k := 0; k < 10; k++ {
				x := r3.Vec{X: rnd.Float64(-4, 4), Y: rnd.Float64(-4, 4), Z: rnd.Float64(-9, -0.5)}
				if math.Abs(r3.Dot(td.Vn, r3.Sub(x, td.P2))) < 0.2 {
					continue // close to the plane of the TD
				}
				ε := ker.Strain(x, td, b)
				εnum := numStrain(ker, x, td, b, 1e-4)
				tol := 1e-7 * math.Max(floats.Norm(ε[:], math.Inf(1)), 1e-3)
				chk.Array(tst, io.Sf("ε(hs=%v) @ %.3f", hs, vec(x)), tol, ε[:], εnum[:])
			}
		}
	}
}

func Test_jump01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jump01")

	ker := New(1, 0.3, false)
	td := NewTD(r3.Vec{X: -1, Y: -1, Z: -5}, r3.Vec{X: 1, Y: -1, Z: -5}, r3.Vec{X: -1, Y: 1, Z: -4})
	b := [3]float64{0.5, -1, 0.25}
	δ := 1e-9
	up := ker.Displ(r3.Add(td.Centroid, r3.Scale(δ, td.Vn)), td, b)
	dn := ker.Displ(r3.Sub(td.Centroid, r3.Scale(δ, td.Vn)), td, b)
	mid := ker.Displ(td.Centroid, td, b)
	chk.Array(tst, "u⁺ - u⁻", 1e-7, vec(r3.Sub(up, dn)), vec(td.Burgers(b)))
	chk.Array(tst, "u(plane) = (u⁺ + u⁻)/2", 1e-7, vec(mid), vec(r3.Scale(0.5, r3.Add(up, dn))))

	// strains are continuous across the element
	εup := ker.Strain(r3.Add(td.Centroid, r3.Scale(δ, td.Vn)), td, b)
	εdn := ker.Strain(r3.Sub(td.Centroid, r3.Scale(δ, td.Vn)), td, b)
	chk.Array(tst, "ε⁺ = ε⁻", 1e-6, εup[:], εdn[:])
}

func Test_continuity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("continuity01")

	// crossing the plane of the TD away from the element
	zt := -2.0
	td := NewTD(r3.Vec{Z: zt}, r3.Vec{X: 1, Z: zt}, r3.Vec{Y: 1, Z: zt})
	for _, hs := range []bool{false, true} {
		ker := New(1, 0.25, hs)
		b := [3]float64{1, 1, 1}
		var uprev r3.Vec
		var σprev geo.Sym
		for i, dz := range []float64{-1e-6, -1e-9, 0, 1e-9, 1e-6} {
			x := r3.Vec{X: 3, Y: 2, Z: zt + dz}
			u := ker.Displ(x, td, b)
			σ := ker.Stress(x, td, b)
			if math.IsNaN(u.X+u.Y+u.Z) || math.IsNaN(floats.Sum(σ[:])) {
				tst.Errorf("halfspace=%v: NaN found @ dz = %g", hs, dz)
				return
			}
			if i > 0 {
				chk.Array(tst, io.Sf("halfspace=%v: u @ dz=%g", hs, dz), 1e-5, vec(u), vec(uprev))
				chk.Array(tst, io.Sf("halfspace=%v: σ @ dz=%g", hs, dz), 1e-7, σ[:], σprev[:])
			}
			uprev, σprev = u, σ
		}
	}
}

func Test_edges01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("edges01")

	ker := New(1, 0.25, false)
	td := NewTD(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})
	b := [3]float64{1, -1, 1}
	for _, x := range []r3.Vec{
		{X: 0.5},         // mid-edge
		{X: 0.5, Y: 0.5}, // mid-edge
		{Y: 0.25},        // on edge
		{X: 1},           // vertex
		{X: 2},           // edge extension
		{X: -1, Y: -1},   // in plane, outside
	} {
		u := ker.Displ(x, td, b)
		σ := ker.Stress(x, td, b)
		io.Pforan("x = %v  u = %v\n", vec(x), vec(u))
		for _, v := range append(vec(u), σ[:]...) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("invalid value @ %v: u = %v σ = %v", vec(x), vec(u), σ)
				return
			}
		}
	}
}

func Test_decay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decay01")

	// a dislocation loop behaves as a force dipole: u ~ 1/R², σ ~ 1/R³
	ker := New(1, 0.25, false)
	td := NewTD(r3.Vec{X: -1, Y: -1, Z: -5}, r3.Vec{X: 1, Y: -1, Z: -5}, r3.Vec{X: -1, Y: 1, Z: -4})
	dir := r3.Unit(r3.Vec{X: 1, Y: 2, Z: -3})
	for _, b := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		R := 1e3
		x1 := r3.Add(td.Centroid, r3.Scale(R, dir))
		x2 := r3.Add(td.Centroid, r3.Scale(2*R, dir))
		u1, u2 := ker.Displ(x1, td, b), ker.Displ(x2, td, b)
		σ1, σ2 := ker.Stress(x1, td, b), ker.Stress(x2, td, b)
		ru := r3.Norm(u2) / r3.Norm(u1)
		rσ := floats.Norm(σ2[:], 2) / floats.Norm(σ1[:], 2)
		io.Pforan("b = %v: |u(2R)|/|u(R)| = %v  |σ(2R)|/|σ(R)| = %v\n", b, ru, rσ)
		chk.Float64(tst, "u ratio", 5e-3, ru, 0.25)
		chk.Float64(tst, "σ ratio", 5e-3, rσ, 0.125)
	}
}

func Test_halfspace01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace01")

	td := NewTD(r3.Vec{X: -1, Y: -1, Z: -5}, r3.Vec{X: 1, Y: -1, Z: -5}, r3.Vec{X: -1, Y: 1, Z: -4})
	fs := New(1, 0.25, false)
	hs := New(1, 0.25, true)
	for _, b := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		for _, x := range []r3.Vec{{X: 0.5, Y: 0.3}, {X: 4, Y: -5}, {X: -7, Y: 2}} {
			tfs := fs.Stress(x, td, b).Dot(r3.Vec{Z: 1})
			ths := hs.Stress(x, td, b).Dot(r3.Vec{Z: 1})
			io.Pforan("b = %v: |t(full)| = %.3e  |t(half)| = %.3e\n", b, r3.Norm(tfs), r3.Norm(ths))
			chk.Array(tst, "traction-free surface", 1e-8, vec(ths), []float64{0, 0, 0})
		}
	}
}

func Test_halfspace02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace02")

	// far from the free surface the half-space solution tends to the full-space one
	p1, p2, p3 := r3.Vec{X: -1, Y: -1, Z: -5}, r3.Vec{X: 1, Y: -1, Z: -5}, r3.Vec{X: -1, Y: 1, Z: -4}
	deep := r3.Vec{Z: -1e4}
	td := NewTD(r3.Add(p1, deep), r3.Add(p2, deep), r3.Add(p3, deep))
	fs := New(1, 0.25, false)
	hs := New(1, 0.25, true)
	b := [3]float64{0.2, 1, -0.5}
	x := r3.Add(td.Centroid, r3.Vec{X: 1.5, Y: -0.5, Z: 0.7})
	chk.Array(tst, "u", 1e-8, vec(hs.Displ(x, td, b)), vec(fs.Displ(x, td, b)))
	σfs, σhs := fs.Stress(x, td, b), hs.Stress(x, td, b)
	chk.Array(tst, "σ", 1e-8, σhs[:], σfs[:])
}
