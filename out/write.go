// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gobem/bem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WritePoints writes a table with the displacements and stresses at the points with flat
// coordinates. Columns: x y z ux uy uz sxx sxy sxz syy syz szz. Returns the file name
func (o *Post) WritePoints(dirout, fnkey string, points []float64) (fn string, err error) {
	u, err := o.Displ(points)
	if err != nil {
		return
	}
	σ, err := o.Stress(points)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s %23s %23s %23s %23s %23s %23s %23s %23s %23s %23s\n",
		"x", "y", "z", "ux", "uy", "uz", "sxx", "sxy", "sxz", "syy", "syz", "szz")
	for i := 0; i < len(points)/3; i++ {
		for _, v := range points[3*i : 3*i+3] {
			io.Ff(&buf, "%23.15e ", v)
		}
		for _, v := range u[3*i : 3*i+3] {
			io.Ff(&buf, "%23.15e ", v)
		}
		for j, v := range σ[6*i : 6*i+6] {
			if j > 0 {
				io.Ff(&buf, " ")
			}
			io.Ff(&buf, "%23.15e", v)
		}
		io.Ff(&buf, "\n")
	}
	return writeFile(dirout, fnkey+"-points.res", &buf)
}

// WriteBurgers writes a table with the Burgers vectors of all triangles of all surfaces.
// Columns: surf tri cx cy cz bdip bstrike bnormal. Returns the file name
func (o *Post) WriteBurgers(dirout, fnkey string) (fn string, err error) {
	if !o.model.Solved() {
		return "", bem.ErrNotSolved
	}
	var buf bytes.Buffer
	io.Ff(&buf, "%4s %6s %23s %23s %23s %23s %23s %23s\n", "surf", "tri", "cx", "cy", "cz", "bdip", "bstrike", "bnormal")
	for k, s := range o.model.Surfaces {
		for i := 0; i < s.NbTriangles(); i++ {
			c := s.Triangle(i).Centroid
			b := s.Burgers(i)
			io.Ff(&buf, "%4d %6d %23.15e %23.15e %23.15e %23.15e %23.15e %23.15e\n", k, i, c.X, c.Y, c.Z, b[0], b[1], b[2])
		}
	}
	return writeFile(dirout, fnkey+"-burgers.res", &buf)
}

// WriteVtu writes all surfaces to a VTK unstructured grid with the Burgers vectors (global
// and local) as cell data. Returns the file name
func (o *Post) WriteVtu(dirout, fnkey string) (fn string, err error) {
	if !o.model.Solved() {
		return "", bem.ErrNotSolved
	}
	m := o.model
	np := 0
	for _, s := range m.Surfaces {
		np += s.NbPoints()
	}
	nc := m.NbTriangles()

	// header
	var buf bytes.Buffer
	io.Ff(&buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", np, nc)

	// coordinates
	io.Ff(&buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, s := range m.Surfaces {
		for i := 0; i < s.NbPoints(); i++ {
			p := s.Point(i)
			io.Ff(&buf, "%23.15e %23.15e %23.15e ", p.X, p.Y, p.Z)
		}
	}
	io.Ff(&buf, "\n</DataArray>\n</Points>\n")

	// connectivities, offsets and types. Point ids continue from one surface to the next
	io.Ff(&buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	shift := 0
	for _, s := range m.Surfaces {
		for _, v := range s.Triangles() {
			io.Ff(&buf, "%d ", v+shift)
		}
		shift += s.NbPoints()
	}
	io.Ff(&buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for i := 0; i < nc; i++ {
		io.Ff(&buf, "%d ", 3*(i+1))
	}
	io.Ff(&buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for i := 0; i < nc; i++ {
		io.Ff(&buf, "5 ")
	}
	io.Ff(&buf, "\n</DataArray>\n</Cells>\n")

	// cells data
	io.Ff(&buf, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(&buf, "<DataArray type=\"Float64\" Name=\"burgers\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, s := range m.Surfaces {
		for i := 0; i < s.NbTriangles(); i++ {
			b := s.Triangle(i).ToGlobal(s.Burgers(i))
			io.Ff(&buf, "%23.15e %23.15e %23.15e ", b.X, b.Y, b.Z)
		}
	}
	io.Ff(&buf, "\n</DataArray>\n")
	for a, name := range []string{"bdip", "bstrike", "bnormal"} {
		io.Ff(&buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", name)
		for _, s := range m.Surfaces {
			for i := 0; i < s.NbTriangles(); i++ {
				io.Ff(&buf, "%23.15e ", s.Burgers(i)[a])
			}
		}
		io.Ff(&buf, "\n</DataArray>\n")
	}
	io.Ff(&buf, "</CellData>\n")

	// footer
	io.Ff(&buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	return writeFile(dirout, fnkey+".vtu", &buf)
}

// writeFile saves buf to dirout/fn creating dirout if needed
func writeFile(dirout, fn string, buf *bytes.Buffer) (string, error) {
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	path := filepath.Join(dirout, fn)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", chk.Err("cannot write file %q:\n%v", path, err)
	}
	return path, nil
}
