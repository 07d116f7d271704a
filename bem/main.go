// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"fmt"
	"time"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gobem/geo"
	"github.com/cpmech/gobem/inp"
	"github.com/cpmech/gobem/rmt"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the boundary element method
type Main struct {
	Sim     *inp.Data // simulation data
	Model   *Model    // surfaces, remotes and medium
	Solver  Solver    // solver; e.g. seidel or direct
	ShowMsg bool      // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sim     -- simulation data
//   verbose -- show messages
func NewMain(sim *inp.Data, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{Sim: sim, ShowMsg: verbose}
	o.Model = NewModel()
	o.Model.SetHalfSpace(sim.HalfSpace)

	// medium
	mdl, err := sim.Material.GetModel()
	if err != nil {
		return nil, err
	}
	o.Model.SetMaterial(mdl)

	// surfaces
	for i, sd := range sim.Surfaces {
		s, err := geo.NewSurface(sd.Coords, sd.Indices)
		if err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
		for _, b := range sd.Bcs {
			if err = s.SetBcType(b.Axis, b.Kind); err != nil {
				return nil, err
			}
			if _, free, _ := bc.ParseKind(b.Kind); free {
				continue
			}
			if len(b.Values) > 0 {
				if err = s.SetBcValues(b.Axis, b.Values); err != nil {
					return nil, fmt.Errorf("surface %d: %w", i, err)
				}
				continue
			}
			var v bc.Value = &dbf.Cte{C: b.Value}
			if b.Func != "" {
				if v, err = sim.Functions.Get(b.Func); err != nil {
					return nil, err
				}
			}
			if err = s.SetBcFunc(b.Axis, v); err != nil {
				return nil, err
			}
		}
		o.Model.AddSurface(s)
	}

	// remotes
	for _, rd := range sim.Remotes {
		r, err := newRemote(rd, sim.Functions)
		if err != nil {
			return nil, err
		}
		o.Model.AddRemote(r)
	}

	// solver
	o.Solver, err = NewSolver(sim.Solver.Type, o.Model)
	if err != nil {
		return nil, err
	}
	switch s := o.Solver.(type) {
	case *Seidel:
		s.Eps = sim.Solver.Eps
		s.MaxIter = sim.Solver.MaxIt
		s.NbCores = sim.Solver.NCores
		s.Verbose = sim.Solver.Verbose && verbose
	case *Direct:
		s.NbCores = sim.Solver.NCores
		s.Verbose = sim.Solver.Verbose && verbose
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
		io.Pf("> %d surfaces, %d triangles, %d remotes\n", len(o.Model.Surfaces), o.Model.NbTriangles(), len(o.Model.Remotes))
	}
	return
}

// Run runs the BEM simulation. A solution that did not converge is reported with ErrDiverged
// but is kept in the model
func (o *Main) Run() (status Status, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, status, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %s solver\n", o.Sim.Solver.Type)
	}

	// solve
	status, err = o.Solver.Run()
	if err != nil {
		return
	}
	if status == Diverged {
		err = fmt.Errorf("%w after %d iterations", ErrDiverged, o.Sim.Solver.MaxIt)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, status Status, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success (%v)\n", status)
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed (%v)\n", status)
		}
	}
	return prevErr
}

// newRemote allocates a remote
func newRemote(rd *inp.RemoteData, funcs inp.FuncsData) (rmt.Remote, error) {
	if rd.Type != "funcs" {
		return rmt.New(rd.Type, rd.Prms)
	}
	var res rmt.Funcs
	for i, name := range rd.Funcs {
		if name == "" || name == "zero" || name == "none" {
			continue
		}
		f, err := funcs.Get(name)
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}
