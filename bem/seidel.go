// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"
	"time"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Seidel implements a matrix-free Gauss-Seidel relaxation. Each element is updated in turn
// using the latest Burgers vectors of all other elements; the correction of each traction axis
// is the residual divided by the diagonal of the self-influence block
type Seidel struct {

	// settings
	Eps     float64 // tolerance on max|Δb|/max|b|, independent of the units of the problem
	MaxIter int     // maximum number of sweeps
	NbCores int     // number of goroutines computing the influence of other elements
	Verbose bool    // show messages

	// callbacks
	OnProgress func(iter int, err float64) // called after each sweep
	OnMessage  func(msg string)            // called with messages

	// results
	Iter int     // number of sweeps performed
	Err  float64 // error after the last sweep

	// internal
	model *Model
}

// NewSeidel returns a new Gauss-Seidel solver
func NewSeidel(m *Model) *Seidel {
	return &Seidel{Eps: 1e-9, MaxIter: 200, model: m}
}

// Run implements Solver. It returns (Diverged, nil) if the tolerance is not reached within
// MaxIter sweeps; the Burgers vectors are stored anyway
func (o *Seidel) Run() (status Status, err error) {

	// check
	m := o.model
	m.invalidate()
	if err = m.Check(); err != nil {
		return Unsolved, err
	}
	cputime := time.Now()

	// assemble
	m.status = Assembling
	o.message("> Assembling %d elements\n", m.NbTriangles())
	elems, err := m.Elements()
	if err != nil {
		m.status = Unsolved
		return Unsolved, err
	}
	ker := m.Kernel()
	n := len(elems)
	self := make([][3][3]float64, n)
	b := make([][3]float64, n)
	for i, e := range elems {
		self[i] = ker.Influence(e.TD, e.TD)
		for _, a := range bc.Axes {
			if e.Kinds[a] == bc.Slip {
				b[i][a] = e.Target[a]
			}
		}
	}

	// iterate
	m.status = Iterating
	ncores := defaultCores(o.NbCores)
	partial := make([][3]float64, (n+chunkSize-1)/chunkSize)
	o.Iter, o.Err = 0, 0
	for o.Iter < o.MaxIter {
		o.Iter++
		var maxdb, maxb float64
		for i, e := range elems {
			t, err := tractionFrom(ker, elems, b, i, ncores, partial)
			if err != nil {
				m.status = Unsolved
				return Unsolved, err
			}
			S := &self[i]
			for _, k := range bc.Axes {
				if e.Kinds[k] != bc.Traction {
					continue
				}
				r := e.Target[k] - (t[k] + e.Remote[k] + S[k][0]*b[i][0] + S[k][1]*b[i][1] + S[k][2]*b[i][2])
				δ := r / S[k][k]
				b[i][k] += δ
				maxdb = utl.Max(maxdb, math.Abs(δ))
			}
			for _, v := range b[i] {
				maxb = utl.Max(maxb, math.Abs(v))
			}
		}
		o.Err = maxdb
		if maxb > 0 {
			o.Err = maxdb / maxb
		}
		if o.OnProgress != nil {
			o.OnProgress(o.Iter, o.Err)
		}
		if o.Verbose {
			io.Pf("%4d%23.15e\n", o.Iter, o.Err)
		}
		if o.Err <= o.Eps {
			m.storeBurgers(b)
			m.status = Converged
			o.message("> Converged after %d iterations. CPU time = %v\n", o.Iter, time.Since(cputime))
			return Converged, nil
		}
	}

	// not converged
	m.storeBurgers(b)
	m.status = Diverged
	o.message("> Not converged after %d iterations. error = %g\n", o.Iter, o.Err)
	return Diverged, nil
}

// message sends a message to OnMessage and, if Verbose, to the console
func (o *Seidel) message(msg string, prm ...interface{}) {
	s := io.Sf(msg, prm...)
	if o.OnMessage != nil {
		o.OnMessage(s)
	}
	if o.Verbose {
		io.Pf("%s", s)
	}
}
