// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name" yaml:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type" yaml:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Cte{C: 0}
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// newFunc allocates a gosl function, returning the panics of dbf.New as errors
func newFunc(kind string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	return dbf.New(kind, prms), nil
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
