// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/kernel"
	"github.com/cpmech/gobem/rmt"
)

// Element holds the data of one triangle needed by the solvers
type Element struct {
	Surf   *geo.Surface // surface owning the triangle
	Idx    int          // index of triangle in Surf
	TD     *kernel.TD   // triangular dislocation
	Kinds  [3]bc.Kind   // kind of condition of each local axis (dip, strike, normal)
	Target [3]float64   // prescribed traction or slip of each local axis
	Remote [3]float64   // remote traction at the centroid in the local frame
}

// Elements collects the elements of all surfaces of the model, in order, and evaluates their
// boundary conditions and remote tractions at the centroids
func (o *Model) Elements() (elems []*Element, err error) {
	elems = make([]*Element, 0, o.NbTriangles())
	for _, s := range o.Surfaces {
		for i := 0; i < s.NbTriangles(); i++ {
			e := &Element{Surf: s, Idx: i}
			e.TD = kernel.NewTD(s.TriangleVerts(i))
			c := e.TD.Centroid
			x := []float64{c.X, c.Y, c.Z}
			for _, a := range bc.Axes {
				cond, err := s.Bcs.Get(i, a)
				if err != nil {
					return nil, err
				}
				e.Kinds[a] = cond.Kind
				e.Target[a] = cond.At(x)
			}
			e.Remote = e.TD.ToLocal(rmt.StressAt(o.Remotes, c).Dot(e.TD.Vn))
			elems = append(elems, e)
		}
	}
	return
}

// storeBurgers writes the Burgers vectors b (one per element, in the order of Elements) into
// the surfaces
func (o *Model) storeBurgers(b [][3]float64) {
	k := 0
	for _, s := range o.Surfaces {
		n := s.NbTriangles()
		s.SetBurgers(b[k : k+n])
		k += n
	}
}
