// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc implements the registry of mixed boundary conditions of triangular elements.
// Each triangle has three local axes (dip, strike, normal) and each axis carries either a
// prescribed traction (free means zero traction) or a prescribed slip (displacement jump)
package bc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrMissingBoundaryCondition is returned when an axis of a triangle has not been specified
var ErrMissingBoundaryCondition = errors.New("missing boundary condition")

// Axis is a local axis of a triangle
type Axis int

const (
	Dip Axis = iota
	Strike
	Normal
)

// Axes lists all local axes in solving order
var Axes = []Axis{Dip, Strike, Normal}

func (o Axis) String() string {
	switch o {
	case Dip:
		return "dip"
	case Strike:
		return "strike"
	case Normal:
		return "normal"
	}
	return fmt.Sprintf("axis(%d)", int(o))
}

// Kind tells which side of the mixed condition is prescribed
type Kind int

const (
	Unset    Kind = iota // not specified yet
	Traction             // traction is prescribed; slip is unknown
	Slip                 // slip is prescribed; traction is unknown
)

func (o Kind) String() string {
	switch o {
	case Traction:
		return "traction"
	case Slip:
		return "slip"
	}
	return "unset"
}

// Value is a prescribed value, possibly depending on position. Any gosl dbf.T satisfies it
type Value interface {
	F(t float64, x []float64) float64
}

// Func wraps a function of position as a Value
type Func func(x, y, z float64) float64

// F implements Value
func (o Func) F(t float64, x []float64) float64 { return o(x[0], x[1], x[2]) }

// Condition is the boundary condition on one axis of one triangle
type Condition struct {
	Kind  Kind
	Value Value // nil means zero
}

// At evaluates the prescribed value at position x
func (o Condition) At(x []float64) float64 {
	if o.Value == nil {
		return 0
	}
	return o.Value.F(0, x)
}

// Registry holds the conditions of all triangles of one surface
type Registry struct {
	conds [][3]Condition
}

// NewRegistry returns a registry for n triangles with all axes unset
func NewRegistry(n int) *Registry {
	return &Registry{conds: make([][3]Condition, n)}
}

// Len returns the number of triangles
func (o *Registry) Len() int { return len(o.conds) }

// SetType sets the kind of one axis of triangle tri
func (o *Registry) SetType(tri int, axis Axis, kind Kind) {
	o.conds[tri][axis].Kind = kind
}

// SetValue sets the prescribed value of one axis of triangle tri
func (o *Registry) SetValue(tri int, axis Axis, v Value) {
	o.conds[tri][axis].Value = v
}

// SetConst sets a constant prescribed value
func (o *Registry) SetConst(tri int, axis Axis, v float64) {
	o.conds[tri][axis].Value = &dbf.Cte{C: v}
}

// Get returns the condition of one axis of triangle tri
func (o *Registry) Get(tri int, axis Axis) (Condition, error) {
	c := o.conds[tri][axis]
	if c.Kind == Unset {
		return c, fmt.Errorf("%w: triangle %d, axis %v", ErrMissingBoundaryCondition, tri, axis)
	}
	return c, nil
}

// Complete returns an error naming the first unset axis, if any
func (o *Registry) Complete() error {
	for i := range o.conds {
		for _, a := range Axes {
			if _, err := o.Get(i, a); err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseAxis converts "dip", "strike" or "normal" (or their initials) to Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dip", "d":
		return Dip, nil
	case "strike", "s":
		return Strike, nil
	case "normal", "n":
		return Normal, nil
	}
	return 0, chk.Err("invalid axis %q", s)
}

// ParseKind converts a kind token to Kind. free is true when the token means zero traction
func ParseKind(s string) (kind Kind, free bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return Traction, true, nil
	case "traction", "t", "neumann":
		return Traction, false, nil
	case "slip", "fixed", "locked", "b", "dirichlet":
		return Slip, false, nil
	}
	return Unset, false, chk.Err("invalid boundary condition kind %q", s)
}
