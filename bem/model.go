// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bem implements the boundary element method with triangular dislocation elements:
// the model holding surfaces and remote stresses, and the solvers computing the Burgers
// vectors that satisfy the mixed boundary conditions
package bem

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/kernel"
	"github.com/cpmech/gobem/mdl/solid"
	"github.com/cpmech/gobem/rmt"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrDiverged tells that the solver reached the maximum number of iterations
	ErrDiverged = errors.New("solver did not converge")

	// ErrNotSolved is returned when results are requested before solving
	ErrNotSolved = errors.New("model has not been solved")
)

// Status is the state of the solution of a model
type Status int

const (
	Unsolved Status = iota
	Assembling
	Iterating
	Converged
	Diverged
)

func (o Status) String() string {
	switch o {
	case Unsolved:
		return "unsolved"
	case Assembling:
		return "assembling"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	}
	return fmt.Sprintf("status(%d)", int(o))
}

// Model holds the surfaces, the remote stresses and the elastic medium
type Model struct {
	Surfaces  []*geo.Surface // all surfaces
	Remotes   []rmt.Remote   // all remote stresses
	HalfSpace bool           // medium is z <= 0 with a traction-free surface at z = 0
	Material  solid.Model    // elastic medium
	status    Status         // status of the last solution
}

// NewModel returns a new model in a full-space with the default medium
func NewModel() *Model {
	return &Model{Material: solid.NewLinElast(1, 0.25, 0)}
}

// AddSurface appends a surface
func (o *Model) AddSurface(s *geo.Surface) {
	o.Surfaces = append(o.Surfaces, s)
	o.status = Unsolved
}

// AddRemote appends a remote stress
func (o *Model) AddRemote(r rmt.Remote) {
	o.Remotes = append(o.Remotes, r)
	o.invalidate()
}

// SetHalfSpace activates or deactivates the traction-free surface at z = 0
func (o *Model) SetHalfSpace(halfSpace bool) {
	if halfSpace != o.HalfSpace {
		o.invalidate()
	}
	o.HalfSpace = halfSpace
}

// SetMaterial sets the elastic medium
func (o *Model) SetMaterial(m solid.Model) {
	o.Material = m
	o.invalidate()
}

// Status returns the status of the last solution
func (o *Model) Status() Status { return o.status }

// Solved tells whether all surfaces hold a solution
func (o *Model) Solved() bool {
	if o.status != Converged && o.status != Diverged {
		return false
	}
	for _, s := range o.Surfaces {
		if !s.Solved() {
			return false
		}
	}
	return true
}

// NbTriangles returns the total number of triangles
func (o *Model) NbTriangles() (n int) {
	for _, s := range o.Surfaces {
		n += s.NbTriangles()
	}
	return
}

// NbDof returns the number of unknowns; i.e. three Burgers components per triangle
func (o *Model) NbDof() int { return 3 * o.NbTriangles() }

// Bounds returns the bounding box of all surfaces
func (o *Model) Bounds() (min, max r3.Vec) {
	inf := math.Inf(1)
	min = r3.Vec{X: inf, Y: inf, Z: inf}
	max = r3.Scale(-1, min)
	for _, s := range o.Surfaces {
		if s.NbPoints() == 0 {
			continue
		}
		a, b := s.Bounds()
		min = r3.Vec{X: math.Min(min.X, a.X), Y: math.Min(min.Y, a.Y), Z: math.Min(min.Z, a.Z)}
		max = r3.Vec{X: math.Max(max.X, b.X), Y: math.Max(max.Y, b.Y), Z: math.Max(max.Z, b.Z)}
	}
	return
}

// Check checks whether the model can be solved: boundary conditions must be complete and, in a
// half-space, no vertex may be above z = 0 and no triangle may lie on the free surface
func (o *Model) Check() error {
	for k, s := range o.Surfaces {
		if err := s.Bcs.Complete(); err != nil {
			return fmt.Errorf("surface %d: %w", k, err)
		}
		if !o.HalfSpace {
			continue
		}
		for i := 0; i < s.NbPoints(); i++ {
			if p := s.Point(i); p.Z > 0 {
				return fmt.Errorf("%w: surface %d: point %d is above the free surface (z = %g)", geo.ErrInvalidGeometry, k, i, p.Z)
			}
		}
		for i := 0; i < s.NbTriangles(); i++ {
			p1, p2, p3 := s.TriangleVerts(i)
			if p1.Z == 0 && p2.Z == 0 && p3.Z == 0 {
				return fmt.Errorf("%w: surface %d: triangle %d lies on the free surface", geo.ErrInvalidGeometry, k, i)
			}
		}
	}
	if o.Material == nil {
		return chk.Err("material is not set")
	}
	return nil
}

// Kernel returns the kernel of triangular dislocations for the medium of this model
func (o *Model) Kernel() *kernel.Kernel {
	return kernel.New(o.Material.Shear(), o.Material.Poisson(), o.HalfSpace)
}

// invalidate discards the current solution
func (o *Model) invalidate() {
	o.status = Unsolved
	for _, s := range o.Surfaces {
		s.Invalidate()
	}
}
