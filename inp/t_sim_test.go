// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. json")

	sim, err := ReadSim("data/single.sim")
	require.NoError(tst, err)
	io.Pforan("desc = %v\n", sim.Desc)

	chk.String(tst, sim.Key, "single")
	chk.String(tst, sim.DirOut, "/tmp/gobem/single")
	chk.String(tst, sim.Dir, "data")
	assert.False(tst, sim.HalfSpace)

	// material
	chk.String(tst, sim.Material.Model, "lin-elast")
	mdl, err := sim.Material.GetModel()
	require.NoError(tst, err)
	chk.Float64(tst, "μ", 1e-15, mdl.Shear(), 0.4)
	chk.Float64(tst, "ν", 1e-15, mdl.Poisson(), 0.25)

	// surfaces
	require.Len(tst, sim.Surfaces, 1)
	s := sim.Surfaces[0]
	chk.Array(tst, "coords", 1e-17, s.Coords, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
	chk.Ints(tst, "indices", s.Indices, []int{0, 1, 2})
	require.Len(tst, s.Bcs, 3)
	chk.String(tst, s.Bcs[2].Axis, "normal")
	chk.String(tst, s.Bcs[2].Kind, "free")

	// remotes
	require.Len(tst, sim.Remotes, 1)
	chk.String(tst, sim.Remotes[0].Type, "uniform")
	require.Len(tst, sim.Remotes[0].Prms, 1)
	chk.String(tst, sim.Remotes[0].Prms[0].N, "szz")
	chk.Float64(tst, "szz", 1e-17, sim.Remotes[0].Prms[0].V, -1)

	// defaults
	chk.String(tst, sim.Solver.Type, "seidel")
	chk.Float64(tst, "eps", 1e-17, sim.Solver.Eps, 1e-9)
	chk.Int(tst, "maxit", sim.Solver.MaxIt, 200)
	chk.Int(tst, "ncores", sim.Solver.NCores, 0)

	// queries
	chk.Array(tst, "points", 1e-17, sim.Queries.Points, []float64{0, 0, -2, 0.3, 0.3, 1})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. yaml")

	sim, err := ReadSim("data/fault.yaml")
	require.NoError(tst, err)

	chk.String(tst, sim.Key, "fault")
	assert.True(tst, sim.HalfSpace)

	mdl, err := sim.Material.GetModel()
	require.NoError(tst, err)
	chk.Float64(tst, "μ", 1e-12, mdl.Shear(), 12000)
	chk.Float64(tst, "ρ", 1e-15, mdl.GetRho(), 2.7)

	require.Len(tst, sim.Surfaces, 1)
	s := sim.Surfaces[0]
	chk.Int(tst, "ncoords", len(s.Coords), 27)
	chk.Int(tst, "nindices", len(s.Indices), 24)
	require.Len(tst, s.Bcs, 3)
	chk.String(tst, s.Bcs[1].Kind, "locked")
	chk.String(tst, s.Bcs[1].Func, "lock")

	// functions
	f, err := sim.Functions.Get("lock")
	require.NoError(tst, err)
	chk.Float64(tst, "lock", 1e-17, f.F(0, []float64{1, 2, 3}), 0.05)
	zero, err := sim.Functions.Get("zero")
	require.NoError(tst, err)
	chk.Float64(tst, "zero", 1e-17, zero.F(0, nil), 0)
	_, err = sim.Functions.Get("nonexistent")
	assert.Error(tst, err)

	// remotes
	require.Len(tst, sim.Remotes, 2)
	chk.String(tst, sim.Remotes[0].Type, "andersonian")
	require.Len(tst, sim.Remotes[0].Prms, 4)
	chk.String(tst, sim.Remotes[0].Prms[3].N, "theta")
	chk.Float64(tst, "theta", 1e-17, sim.Remotes[0].Prms[3].V, 30)
	chk.String(tst, sim.Remotes[1].Type, "funcs")
	require.Len(tst, sim.Remotes[1].Funcs, 6)
	chk.String(tst, sim.Remotes[1].Funcs[5], "sv")

	// solver: given and default values
	chk.String(tst, sim.Solver.Type, "direct")
	chk.Int(tst, "ncores", sim.Solver.NCores, 2)
	chk.Float64(tst, "eps", 1e-17, sim.Solver.Eps, 1e-9)
	chk.Int(tst, "maxit", sim.Solver.MaxIt, 200)

	// query points from file
	chk.Array(tst, "points", 1e-17, sim.Queries.Points, []float64{0, 0, -1, 2, 0, -3, -1.5, 1, -0.5})
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. errors")

	_, err := ReadSim("data/nonexistent.sim")
	assert.Error(tst, err)

	dir := tst.TempDir()
	write := func(fn, content string) string {
		path := filepath.Join(dir, fn)
		require.NoError(tst, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	// malformed
	_, err = ReadSim(write("bad.sim", `{ "desc" : `))
	assert.Error(tst, err)

	// unknown function
	_, err = ReadSim(write("func.yaml", `
surfaces:
  - coords: [0,0,-1, 1,0,-1, 0,1,-1]
    indices: [0,1,2]
    bcs:
      - { axis: normal, kind: traction, func: pressure }
`))
	io.Pforan("err = %v\n", err)
	assert.Error(tst, err)

	// one value per triangle
	_, err = ReadSim(write("values.yaml", `
surfaces:
  - coords: [0,0,-1, 1,0,-1, 0,1,-1]
    indices: [0,1,2]
    bcs:
      - { axis: normal, kind: slip, values: [0.1, 0.2] }
`))
	io.Pforan("err = %v\n", err)
	assert.Error(tst, err)

	// surface without triangles
	_, err = ReadSim(write("empty.yaml", `
surfaces:
  - coords: [0,0,-1]
`))
	assert.Error(tst, err)

	// funcs remote needs six functions
	_, err = ReadSim(write("funcs.yaml", `
remotes:
  - type: funcs
    funcs: [zero, zero]
`))
	assert.Error(tst, err)

	// query points
	_, err = ReadSim(write("points.sim", `{ "queries" : { "points" : [0, 0] } }`))
	assert.Error(tst, err)
	_, err = ReadSim(write("file.sim", `{ "queries" : { "file" : "missing.dat" } }`))
	assert.Error(tst, err)

	// solver values are fixed
	sim, err := ReadSim(write("solver.yml", `
solver:
  eps: -1
  maxit: 0
  ncores: -3
`))
	require.NoError(tst, err)
	chk.Float64(tst, "eps", 1e-17, sim.Solver.Eps, 1e-9)
	chk.Int(tst, "maxit", sim.Solver.MaxIt, 200)
	chk.Int(tst, "ncores", sim.Solver.NCores, 0)
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. info")

	sim, err := ReadSim("data/single.sim")
	require.NoError(tst, err)
	var buf bytes.Buffer
	require.NoError(tst, sim.GetInfo(&buf))
	assert.Contains(tst, buf.String(), "single free triangle")
	assert.Contains(tst, buf.String(), "\"szz\"")

	funcs := FuncsData{{Name: "lock", Type: "cte"}}
	io.Pforan("%v\n", funcs)
	assert.Contains(tst, funcs.String(), "\"lock\"")
}

func Test_sim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim05. functions and tables with invalid data")

	funcs := FuncsData{
		{Name: "lock", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 0.05}}},
		{Name: "ramp", Type: "nonexistent"},
		{Name: "noprms", Type: "cte"},
	}
	f, err := funcs.Get("lock")
	require.NoError(tst, err)
	chk.Float64(tst, "lock", 1e-17, f.F(0, []float64{1, 2, 3}), 0.05)
	f, err = funcs.Get("none")
	require.NoError(tst, err)
	chk.Float64(tst, "none", 1e-17, f.F(0, []float64{1, 2, 3}), 0)

	// allocation failures are errors, not panics
	_, err = funcs.Get("ramp")
	io.Pforan("err = %v\n", err)
	assert.Error(tst, err)
	_, err = funcs.Get("noprms")
	io.Pforan("err = %v\n", err)
	assert.Error(tst, err)

	// query tables
	dir := tst.TempDir()
	write := func(fn, content string) string {
		path := filepath.Join(dir, fn)
		require.NoError(tst, os.WriteFile(path, []byte(content), 0644))
		return path
	}
	tab, err := readTable(write("ok.dat", "x y z\n1 2 -3\n# comment\n4 5 -6\n"))
	require.NoError(tst, err)
	chk.Array(tst, "z", 1e-17, tab["z"], []float64{-3, -6})
	_, err = readTable(write("nan.dat", "x y z\n1 two -3\n"))
	assert.Error(tst, err)
	_, err = readTable(filepath.Join(dir, "missing.dat"))
	assert.Error(tst, err)
	_, err = ReadSim(write("bad.sim", `{ "queries" : { "file" : "nan.dat" } }`))
	assert.Error(tst, err)
}
