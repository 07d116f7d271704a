// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"time"

	"github.com/cpmech/gobem/bc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Direct forms the dense system of influence coefficients and solves it with an LU
// factorisation. The unknown of axis a of element i is at row and column 3 i + a. Rows of
// slip axes are replaced by identity rows
type Direct struct {
	NbCores   int              // number of goroutines computing columns
	Verbose   bool             // show messages
	OnMessage func(msg string) // called with messages

	// internal
	model *Model
}

// NewDirect returns a new direct solver
func NewDirect(m *Model) *Direct {
	return &Direct{model: m}
}

// Run implements Solver
func (o *Direct) Run() (status Status, err error) {

	// check
	m := o.model
	m.invalidate()
	if err = m.Check(); err != nil {
		return Unsolved, err
	}
	cputime := time.Now()

	// elements
	m.status = Assembling
	elems, err := m.Elements()
	if err != nil {
		m.status = Unsolved
		return Unsolved, err
	}
	ker := m.Kernel()
	n := len(elems)
	ndof := 3 * n
	o.message("> Assembling %d x %d dense matrix\n", ndof, ndof)

	// matrix: each goroutine fills the columns of one source element
	A := mat.NewDense(max(ndof, 1), max(ndof, 1), nil)
	var g errgroup.Group
	g.SetLimit(defaultCores(o.NbCores))
	for j := range elems {
		g.Go(func() error {
			for i, e := range elems {
				C := ker.Influence(e.TD, elems[j].TD)
				for k := 0; k < 3; k++ {
					if e.Kinds[k] == bc.Slip {
						continue
					}
					for a := 0; a < 3; a++ {
						A.Set(3*i+k, 3*j+a, C[k][a])
					}
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		m.status = Unsolved
		return Unsolved, err
	}

	// right-hand side and identity rows
	rhs := mat.NewVecDense(max(ndof, 1), nil)
	for i, e := range elems {
		for _, k := range bc.Axes {
			row := 3*i + int(k)
			if e.Kinds[k] == bc.Slip {
				A.Set(row, row, 1)
				rhs.SetVec(row, e.Target[k])
				continue
			}
			rhs.SetVec(row, e.Target[k]-e.Remote[k])
		}
	}

	// solve
	m.status = Iterating
	b := make([][3]float64, n)
	if n > 0 {
		var x mat.VecDense
		if err = x.SolveVec(A, rhs); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				m.status = Unsolved
				return Unsolved, chk.Err("direct solver failed:\n%v", err)
			}
			o.message("> Warning: %v\n", err)
		}
		for i := range b {
			b[i] = [3]float64{x.AtVec(3 * i), x.AtVec(3*i + 1), x.AtVec(3*i + 2)}
		}
	}
	m.storeBurgers(b)
	m.status = Converged
	o.message("> Solved. CPU time = %v\n", time.Since(cputime))
	return Converged, nil
}

// message sends a message to OnMessage and, if Verbose, to the console
func (o *Direct) message(msg string, prm ...interface{}) {
	s := io.Sf(msg, prm...)
	if o.OnMessage != nil {
		o.OnMessage(s)
	}
	if o.Verbose {
		io.Pf("%s", s)
	}
}
