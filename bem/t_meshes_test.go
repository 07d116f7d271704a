// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"
	"testing"

	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/rmt"
)

// single returns the unit right triangle at z = 0 with all axes free
func single(tst *testing.T) *geo.Surface {
	s, err := geo.NewSurface([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, []int{0, 1, 2})
	if err != nil {
		tst.Fatalf("cannot create surface:\n%v", err)
	}
	for _, a := range []string{"dip", "strike", "normal"} {
		if err = s.SetBcType(a, "free"); err != nil {
			tst.Fatalf("cannot set bc:\n%v", err)
		}
	}
	return s
}

// disk returns a mesh of the disk of unit radius at z = 0 with nr rings of triangles. Ring k
// has 6k points; all normals point to +z
func disk(nr int) (coords []float64, indices []int) {
	coords = []float64{0, 0, 0}
	rings := [][]int{{0}}
	for k := 1; k <= nr; k++ {
		r := float64(k) / float64(nr)
		n := 6 * k
		ids := make([]int, n)
		for i := 0; i < n; i++ {
			θ := 2 * math.Pi * float64(i) / float64(n)
			ids[i] = len(coords) / 3
			coords = append(coords, r*math.Cos(θ), r*math.Sin(θ), 0)
		}
		rings = append(rings, ids)
	}
	for k := 1; k <= nr; k++ {
		inner, outer := rings[k-1], rings[k]
		ni, no := len(inner), len(outer)
		if k == 1 {
			for j := 0; j < no; j++ {
				indices = append(indices, inner[0], outer[j], outer[(j+1)%no])
			}
			continue
		}
		for i, j := 0, 0; i < ni || j < no; {
			ti := float64(i+1) / float64(ni)
			tj := float64(j+1) / float64(no)
			if tj <= ti && j < no {
				indices = append(indices, inner[i%ni], outer[j], outer[(j+1)%no])
				j++
			} else {
				indices = append(indices, inner[i%ni], outer[j%no], inner[(i+1)%ni])
				i++
			}
		}
	}
	return
}

// fault returns a square 2×2 fault dipping 60° centred at depth 3, meshed with 8 triangles.
// The strike slip is locked to 0.05; dip and normal axes are free
func fault(tst *testing.T) *geo.Surface {
	δ := 60 * math.Pi / 180
	var coords []float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			y := float64(j - 1)
			coords = append(coords, float64(i-1), y*math.Cos(δ), -3+y*math.Sin(δ))
		}
	}
	var indices []int
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			a := 3*j + i
			indices = append(indices, a, a+1, a+4, a, a+4, a+3)
		}
	}
	s, err := geo.NewSurface(coords, indices)
	if err != nil {
		tst.Fatalf("cannot create surface:\n%v", err)
	}
	for _, c := range []struct{ axis, kind string }{{"dip", "free"}, {"strike", "locked"}, {"normal", "free"}} {
		if err = s.SetBcType(c.axis, c.kind); err != nil {
			tst.Fatalf("cannot set bc:\n%v", err)
		}
	}
	if err = s.SetBcValue("strike", 0.05); err != nil {
		tst.Fatalf("cannot set bc:\n%v", err)
	}
	return s
}

// tectonic returns an Andersonian regime with compressive principal stresses
func tectonic() rmt.Remote {
	return &rmt.Andersonian{Sh: -1, SH: -2, Sv: -3, Theta: 30}
}

// allBurgers returns the flat Burgers vectors of all surfaces
func allBurgers(m *Model) (res []float64) {
	for _, s := range m.Surfaces {
		res = append(res, s.Slips()...)
	}
	return
}
