// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the postprocessing of BEM solutions: displacements, strains and
// stresses anywhere in the medium, face displacements and residuals on the surfaces, and
// writers of result files
package out

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gobem/bem"
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/kernel"
	"github.com/cpmech/gobem/rmt"
	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrOutsideMedium is returned when a point above the free surface of a half-space is queried
var ErrOutsideMedium = errors.New("point is outside the medium")

// Post evaluates the fields of a solved model
type Post struct {
	NbCores int // number of goroutines of batched queries; 0 means all cpus
	model   *bem.Model
}

// source is a solved triangular dislocation
type source struct {
	td *kernel.TD
	b  [3]float64
}

// New returns a new postprocessor of model m
func New(m *bem.Model) *Post {
	return &Post{model: m}
}

// DisplAt returns the displacement at p. Remote stresses add no displacement since they
// define it only up to a rigid body motion
func (o *Post) DisplAt(p r3.Vec) (r3.Vec, error) {
	srcs, ker, err := o.prepare()
	if err != nil {
		return r3.Vec{}, err
	}
	if err = o.inside(p); err != nil {
		return r3.Vec{}, err
	}
	return displ(ker, srcs, p), nil
}

// StrainAt returns the strain at p including the strain of the remote stresses
func (o *Post) StrainAt(p r3.Vec) (geo.Sym, error) {
	srcs, ker, err := o.prepare()
	if err != nil {
		return geo.Sym{}, err
	}
	if err = o.inside(p); err != nil {
		return geo.Sym{}, err
	}
	return o.strain(ker, srcs, p), nil
}

// StressAt returns the stress at p including the remote stresses
func (o *Post) StressAt(p r3.Vec) (geo.Sym, error) {
	srcs, ker, err := o.prepare()
	if err != nil {
		return geo.Sym{}, err
	}
	if err = o.inside(p); err != nil {
		return geo.Sym{}, err
	}
	return o.stress(ker, srcs, p), nil
}

// Displ returns the displacements at the points with flat coordinates x0,y0,z0, x1,y1,z1, ...
// The result holds ux,uy,uz of each point in the same order
func (o *Post) Displ(points []float64) ([]float64, error) {
	return o.batch(points, 3, func(ker *kernel.Kernel, srcs []source, p r3.Vec, res []float64) {
		u := displ(ker, srcs, p)
		res[0], res[1], res[2] = u.X, u.Y, u.Z
	})
}

// Strain returns the strains (xx,xy,xz,yy,yz,zz) at the points with flat coordinates
func (o *Post) Strain(points []float64) ([]float64, error) {
	return o.batch(points, 6, func(ker *kernel.Kernel, srcs []source, p r3.Vec, res []float64) {
		ε := o.strain(ker, srcs, p)
		copy(res, ε[:])
	})
}

// Stress returns the stresses (xx,xy,xz,yy,yz,zz) at the points with flat coordinates
func (o *Post) Stress(points []float64) ([]float64, error) {
	return o.batch(points, 6, func(ker *kernel.Kernel, srcs []source, p r3.Vec, res []float64) {
		σ := o.stress(ker, srcs, p)
		copy(res, σ[:])
	})
}

// Burgers returns the mean displacement of both faces of surface s at the centroids
func (o *Post) Burgers(s int) ([]r3.Vec, error) {
	return o.faces(s, 0)
}

// BurgersPlus returns the displacement of the face pointed to by the normal (u⁺ = ū + b/2)
// at the centroids of surface s
func (o *Post) BurgersPlus(s int) ([]r3.Vec, error) {
	return o.faces(s, 0.5)
}

// BurgersMinus returns the displacement of the face opposite to the normal (u⁻ = ū - b/2) at
// the centroids of surface s
func (o *Post) BurgersMinus(s int) ([]r3.Vec, error) {
	return o.faces(s, -0.5)
}

// ResidualTractions returns, for each triangle of surface s and each local axis (dip, strike,
// normal), the total traction at the centroid minus the prescribed one. On slip axes it
// returns the Burgers component minus the prescribed slip
func (o *Post) ResidualTractions(s int) ([][3]float64, error) {
	srcs, ker, err := o.prepare()
	if err != nil {
		return nil, err
	}
	surf, err := o.surface(s)
	if err != nil {
		return nil, err
	}
	res := make([][3]float64, surf.NbTriangles())
	err = o.forEach(len(res), func(i int) error {
		td := kernel.NewTD(surf.TriangleVerts(i))
		c := td.Centroid
		σ := o.stress(ker, srcs, c)
		t := td.ToLocal(σ.Dot(td.Vn))
		b := surf.Burgers(i)
		x := []float64{c.X, c.Y, c.Z}
		for _, a := range bc.Axes {
			cond, err := surf.Bcs.Get(i, a)
			if err != nil {
				return err
			}
			if cond.Kind == bc.Slip {
				res[i][a] = b[a] - cond.At(x)
			} else {
				res[i][a] = t[a] - cond.At(x)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// prepare collects the solved triangles with a non-zero Burgers vector
func (o *Post) prepare() (srcs []source, ker *kernel.Kernel, err error) {
	if !o.model.Solved() {
		return nil, nil, bem.ErrNotSolved
	}
	for _, s := range o.model.Surfaces {
		for i := 0; i < s.NbTriangles(); i++ {
			b := s.Burgers(i)
			if b == [3]float64{} {
				continue
			}
			srcs = append(srcs, source{kernel.NewTD(s.TriangleVerts(i)), b})
		}
	}
	return srcs, o.model.Kernel(), nil
}

// inside checks whether p belongs to the medium
func (o *Post) inside(p r3.Vec) error {
	if o.model.HalfSpace && p.Z > 0 {
		return fmt.Errorf("%w: z = %g is above the free surface", ErrOutsideMedium, p.Z)
	}
	return nil
}

// surface returns surface s
func (o *Post) surface(s int) (*geo.Surface, error) {
	if s < 0 || s >= len(o.model.Surfaces) {
		return nil, chk.Err("surface index %d is out of range [0, %d)", s, len(o.model.Surfaces))
	}
	return o.model.Surfaces[s], nil
}

// faces returns ū + α b at the centroids of surface s
func (o *Post) faces(s int, α float64) ([]r3.Vec, error) {
	srcs, ker, err := o.prepare()
	if err != nil {
		return nil, err
	}
	surf, err := o.surface(s)
	if err != nil {
		return nil, err
	}
	res := make([]r3.Vec, surf.NbTriangles())
	err = o.forEach(len(res), func(i int) error {
		t := surf.Triangle(i)
		u := displ(ker, srcs, t.Centroid)
		res[i] = r3.Add(u, r3.Scale(α, t.ToGlobal(surf.Burgers(i))))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// batch evaluates f at all points concurrently. Each call of f fills ncomp values
func (o *Post) batch(points []float64, ncomp int, f func(ker *kernel.Kernel, srcs []source, p r3.Vec, res []float64)) ([]float64, error) {
	if len(points)%3 != 0 {
		return nil, chk.Err("number of coordinates (%d) must be a multiple of 3", len(points))
	}
	srcs, ker, err := o.prepare()
	if err != nil {
		return nil, err
	}
	npts := len(points) / 3
	for i := 0; i < npts; i++ {
		if err = o.inside(r3.Vec{X: points[3*i], Y: points[3*i+1], Z: points[3*i+2]}); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	res := make([]float64, ncomp*npts)
	err = o.forEach(npts, func(i int) error {
		f(ker, srcs, r3.Vec{X: points[3*i], Y: points[3*i+1], Z: points[3*i+2]}, res[ncomp*i:ncomp*(i+1)])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// forEach runs f(i) for i in [0, n) with at most NbCores goroutines
func (o *Post) forEach(n int, f func(i int) error) error {
	ncores := o.NbCores
	if ncores < 1 {
		ncores = runtime.NumCPU()
	}
	var g errgroup.Group
	g.SetLimit(max(ncores, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error { return f(i) })
	}
	return g.Wait()
}

// strain returns the strain at p: the sum over sources plus the remote strain
func (o *Post) strain(ker *kernel.Kernel, srcs []source, p r3.Vec) geo.Sym {
	ε := perturbation(ker, srcs, p)
	return ε.Add(o.model.Material.Strain(rmt.StressAt(o.model.Remotes, p)))
}

// stress returns the stress at p: the sum over sources plus the remote stress
func (o *Post) stress(ker *kernel.Kernel, srcs []source, p r3.Vec) geo.Sym {
	σ := ker.Hooke(perturbation(ker, srcs, p))
	return σ.Add(rmt.StressAt(o.model.Remotes, p))
}

// displ sums the displacements at p due to all sources
func displ(ker *kernel.Kernel, srcs []source, p r3.Vec) (u r3.Vec) {
	for _, s := range srcs {
		u = r3.Add(u, ker.Displ(p, s.td, s.b))
	}
	return
}

// perturbation sums the strains at p due to all sources
func perturbation(ker *kernel.Kernel, srcs []source, p r3.Vec) (ε geo.Sym) {
	for _, s := range srcs {
		ε = ε.Add(ker.Strain(p, s.td, s.b))
	}
	return
}
