// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"runtime"

	"github.com/cpmech/gobem/kernel"
	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Solver computes the Burgers vectors of all elements of a model
type Solver interface {
	Run() (Status, error)
}

// allocators holds all available solvers
var allocators = map[string]func(m *Model) Solver{
	"seidel": func(m *Model) Solver { return NewSeidel(m) },
	"direct": func(m *Model) Solver { return NewDirect(m) },
}

// NewSolver allocates a solver by name ("seidel" or "direct")
func NewSolver(name string, m *Model) (Solver, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", name)
	}
	return alloc(m), nil
}

// chunkSize is the number of source elements summed sequentially by one goroutine
const chunkSize = 64

// tractionFrom returns the traction on dst, in its local frame, induced by all elements in
// elems but dst itself, each one with Burgers vector b[j]. Sources are split into fixed chunks
// evaluated concurrently and reduced in chunk order; thus the result does not depend on ncores
func tractionFrom(ker *kernel.Kernel, elems []*Element, b [][3]float64, dst int, ncores int, partial [][3]float64) (t [3]float64, err error) {
	nchunks := (len(elems) + chunkSize - 1) / chunkSize
	sum := func(c int) {
		var s [3]float64
		end := min((c+1)*chunkSize, len(elems))
		for j := c * chunkSize; j < end; j++ {
			if j == dst || b[j] == [3]float64{} {
				continue
			}
			tj := ker.Traction(elems[dst].TD, elems[j].TD, b[j])
			s[0] += tj[0]
			s[1] += tj[1]
			s[2] += tj[2]
		}
		partial[c] = s
	}
	if ncores < 2 || nchunks < 2 {
		for c := 0; c < nchunks; c++ {
			sum(c)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(ncores)
		for c := 0; c < nchunks; c++ {
			g.Go(func() error {
				sum(c)
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return
		}
	}
	for c := 0; c < nchunks; c++ {
		t[0] += partial[c][0]
		t[1] += partial[c][1]
		t[2] += partial[c][2]
	}
	return
}

// defaultCores returns the number of goroutines used when none is given
func defaultCores(n int) int {
	if n < 1 {
		return max(runtime.NumCPU(), 1)
	}
	return n
}
