// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"errors"
	"testing"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/rmt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. sizes and bounds")

	m := NewModel()
	chk.Int(tst, "ndof", m.NbDof(), 0)
	m.AddSurface(single(tst))
	m.AddSurface(fault(tst))
	chk.Int(tst, "ntriangles", m.NbTriangles(), 9)
	chk.Int(tst, "ndof", m.NbDof(), 27)

	min, max := m.Bounds()
	chk.Float64(tst, "xmin", 1e-15, min.X, -1)
	chk.Float64(tst, "xmax", 1e-15, max.X, 1)
	chk.Float64(tst, "ymax", 1e-15, max.Y, 1)
	chk.Float64(tst, "zmax", 1e-15, max.Z, 0)
	chk.Float64(tst, "zmin", 1e-15, min.Z, -3-0.8660254037844386)

	chk.String(tst, m.Status().String(), "unsolved")
	chk.String(tst, Converged.String(), "converged")
	chk.String(tst, Status(9).String(), "status(9)")
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. elements")

	m := NewModel()
	m.AddSurface(single(tst))
	m.AddSurface(fault(tst))
	m.AddRemote(rmt.Uniform{Sig: geo.Sym{0, 0, 0, 0, 0, -1}})
	m.AddRemote(tectonic())

	elems, err := m.Elements()
	if err != nil {
		tst.Errorf("Elements failed:\n%v", err)
		return
	}
	chk.Int(tst, "nelems", len(elems), 9)
	chk.Int(tst, "idx of last", elems[8].Idx, 7)
	if elems[0].Surf != m.Surfaces[0] || elems[1].Surf != m.Surfaces[1] {
		tst.Errorf("elements must follow the order of surfaces")
	}

	// horizontal triangle: normal traction is szz
	chk.Array(tst, "remote0", 1e-15, elems[0].Remote[:], []float64{0, 0, -1 - 3})
	if elems[0].Kinds != [3]bc.Kind{bc.Traction, bc.Traction, bc.Traction} {
		tst.Errorf("all axes of the first surface should be traction. %v is incorrect", elems[0].Kinds)
	}
	if elems[1].Kinds[bc.Strike] != bc.Slip {
		tst.Errorf("strike of fault should be slip")
	}
	chk.Float64(tst, "target", 1e-17, elems[1].Target[bc.Strike], 0.05)
	io.Pforan("remote1 = %v\n", elems[1].Remote)
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. half-space geometry")

	// vertex above the free surface
	s, err := geo.NewSurface([]float64{0, 0, -1, 1, 0, -1, 0, 1, 0.5}, []int{0, 1, 2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for _, a := range []string{"dip", "strike", "normal"} {
		s.SetBcType(a, "free")
	}
	m := NewModel()
	m.AddSurface(s)
	if err = m.Check(); err != nil {
		tst.Errorf("full-space model should be valid:\n%v", err)
	}
	m.SetHalfSpace(true)
	err = m.Check()
	io.Pforan("err = %v\n", err)
	if !errors.Is(err, geo.ErrInvalidGeometry) {
		tst.Errorf("point above the free surface must fail. %v is incorrect", err)
	}
	status, err := NewSeidel(m).Run()
	if !errors.Is(err, geo.ErrInvalidGeometry) || status != Unsolved {
		tst.Errorf("Run must fail with invalid geometry. %v is incorrect", err)
	}

	// triangle on the free surface
	m = NewModel()
	m.SetHalfSpace(true)
	m.AddSurface(single(tst))
	err = m.Check()
	io.Pforan("err = %v\n", err)
	if !errors.Is(err, geo.ErrInvalidGeometry) {
		tst.Errorf("triangle on the free surface must fail. %v is incorrect", err)
	}

	// buried fault
	m = NewModel()
	m.SetHalfSpace(true)
	m.AddSurface(fault(tst))
	if err = m.Check(); err != nil {
		tst.Errorf("buried fault should be valid:\n%v", err)
	}

	// no material
	m.Material = nil
	if err = m.Check(); err == nil {
		tst.Errorf("model without material must fail")
	}
}
