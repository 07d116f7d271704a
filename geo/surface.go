// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements the geometry of triangulated surfaces: points, triangles with their
// local frames, surfaces and symmetric tensors
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidGeometry is returned for malformed point/index arrays and degenerate triangles
var ErrInvalidGeometry = errors.New("invalid geometry")

// Surface holds an ordered list of points and an ordered list of triangles referencing them.
// It also owns the boundary conditions of its triangles and, after a solve, the solved
// Burgers vectors (displacement discontinuities) in the local frames of the triangles
type Surface struct {
	points    []r3.Vec
	triangles []Triangle

	// boundary conditions
	Bcs *bc.Registry

	// solution
	burgers [][3]float64
	solved  bool
}

// NewSurface creates a surface from flat coordinates (x0,y0,z0, x1,y1,z1, ...) and flat
// triangle vertex indices (a0,b0,c0, a1,b1,c1, ...)
func NewSurface(coords []float64, indices []int) (o *Surface, err error) {
	if len(coords)%3 != 0 {
		return nil, fmt.Errorf("%w: number of coordinates (%d) is not a multiple of 3", ErrInvalidGeometry, len(coords))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: number of indices (%d) is not a multiple of 3", ErrInvalidGeometry, len(indices))
	}
	np, nt := len(coords)/3, len(indices)/3
	o = new(Surface)
	o.points = make([]r3.Vec, np)
	for i := 0; i < np; i++ {
		o.points[i] = r3.Vec{X: coords[3*i], Y: coords[3*i+1], Z: coords[3*i+2]}
	}
	o.triangles = make([]Triangle, nt)
	for i := 0; i < nt; i++ {
		t := &o.triangles[i]
		for j := 0; j < 3; j++ {
			k := indices[3*i+j]
			if k < 0 || k >= np {
				return nil, fmt.Errorf("%w: index %d of triangle %d is out of range [0,%d)", ErrInvalidGeometry, k, i, np)
			}
			t.Verts[j] = k
		}
		if err = t.update(o.vertices(t)); err != nil {
			return nil, err
		}
	}
	o.Bcs = bc.NewRegistry(nt)
	o.burgers = make([][3]float64, nt)
	return
}

// NbPoints returns the number of points
func (o *Surface) NbPoints() int { return len(o.points) }

// NbTriangles returns the number of triangles
func (o *Surface) NbTriangles() int { return len(o.triangles) }

// Point returns point i
func (o *Surface) Point(i int) r3.Vec { return o.points[i] }

// Triangle returns triangle i
func (o *Surface) Triangle(i int) *Triangle { return &o.triangles[i] }

// TriangleVerts returns the three vertices of triangle i
func (o *Surface) TriangleVerts(i int) (p1, p2, p3 r3.Vec) {
	return o.vertices(&o.triangles[i])
}

func (o *Surface) vertices(t *Triangle) (p1, p2, p3 r3.Vec) {
	return o.points[t.Verts[0]], o.points[t.Verts[1]], o.points[t.Verts[2]]
}

// Vertices returns a flat copy of the point coordinates
func (o *Surface) Vertices() []float64 {
	res := make([]float64, 0, 3*len(o.points))
	for _, p := range o.points {
		res = append(res, p.X, p.Y, p.Z)
	}
	return res
}

// Triangles returns a flat copy of the triangle vertex indices
func (o *Surface) Triangles() []int {
	res := make([]int, 0, 3*len(o.triangles))
	for _, t := range o.triangles {
		res = append(res, t.Verts[0], t.Verts[1], t.Verts[2])
	}
	return res
}

// Transform applies f to every point and recomputes the frames of all triangles.
// Connectivity is unchanged and any attached solution is invalidated. If the mapping
// degenerates a triangle, the surface is left unchanged and an error is returned
func (o *Surface) Transform(f func(p r3.Vec) r3.Vec) error {
	pts := make([]r3.Vec, len(o.points))
	for i, p := range o.points {
		pts[i] = f(p)
	}
	tris := make([]Triangle, len(o.triangles))
	for i, t := range o.triangles {
		tris[i].Verts = t.Verts
		if err := tris[i].update(pts[t.Verts[0]], pts[t.Verts[1]], pts[t.Verts[2]]); err != nil {
			return err
		}
	}
	o.points, o.triangles = pts, tris
	o.Invalidate()
	return nil
}

// Bounds returns the corners of the axis-aligned box containing all points
func (o *Surface) Bounds() (min, max r3.Vec) {
	min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range o.points {
		min = r3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return
}

// SetBcType sets the kind of one axis of all triangles. "free" also sets a zero traction
func (o *Surface) SetBcType(axis, kind string) error {
	a, err := bc.ParseAxis(axis)
	if err != nil {
		return err
	}
	k, free, err := bc.ParseKind(kind)
	if err != nil {
		return err
	}
	for i := range o.triangles {
		o.Bcs.SetType(i, a, k)
		if free {
			o.Bcs.SetValue(i, a, nil)
		}
	}
	return nil
}

// SetBcValue sets a constant prescribed value on one axis of all triangles
func (o *Surface) SetBcValue(axis string, v float64) error {
	return o.SetBcFunc(axis, &dbf.Cte{C: v})
}

// SetBcValues sets one constant prescribed value per triangle on one axis
func (o *Surface) SetBcValues(axis string, v []float64) error {
	a, err := bc.ParseAxis(axis)
	if err != nil {
		return err
	}
	if len(v) != len(o.triangles) {
		return chk.Err("number of values (%d) must be equal to the number of triangles (%d)", len(v), len(o.triangles))
	}
	for i, vi := range v {
		o.Bcs.SetConst(i, a, vi)
	}
	return nil
}

// SetBcFunc sets a prescribed value depending on position on one axis of all triangles.
// The value is evaluated at the centroids
func (o *Surface) SetBcFunc(axis string, v bc.Value) error {
	a, err := bc.ParseAxis(axis)
	if err != nil {
		return err
	}
	for i := range o.triangles {
		o.Bcs.SetValue(i, a, v)
	}
	return nil
}

// Solved tells whether a solution is attached
func (o *Surface) Solved() bool { return o.solved }

// Invalidate discards the attached solution
func (o *Surface) Invalidate() {
	o.solved = false
	for i := range o.burgers {
		o.burgers[i] = [3]float64{}
	}
}

// SetBurgers stores the solved Burgers vector (dip, strike, normal) of all triangles
func (o *Surface) SetBurgers(b [][3]float64) {
	copy(o.burgers, b)
	o.solved = true
}

// Burgers returns the Burgers vector (dip, strike, normal) of triangle i
func (o *Surface) Burgers(i int) [3]float64 { return o.burgers[i] }

// Slips returns a flat copy of all Burgers vectors in local coordinates
func (o *Surface) Slips() []float64 {
	res := make([]float64, 0, 3*len(o.burgers))
	for _, b := range o.burgers {
		res = append(res, b[0], b[1], b[2])
	}
	return res
}
