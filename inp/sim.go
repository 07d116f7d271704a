// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// BcData holds the boundary condition of one local axis of all triangles of a surface
type BcData struct {
	Axis  string  `json:"axis"  yaml:"axis"`  // local axis: dip, strike or normal
	Kind  string  `json:"kind"  yaml:"kind"`  // free, traction or slip (and synonyms)
	Value float64 `json:"value" yaml:"value"` // prescribed value
	Func  string  `json:"func"  yaml:"func"`  // name of function of position giving the value; overrides Value

	// one value per triangle; overrides Value and Func
	Values []float64 `json:"values" yaml:"values"`
}

// SurfaceData holds surface data
type SurfaceData struct {
	Desc    string    `json:"desc"    yaml:"desc"`    // description of surface. ex: fault, crack, etc.
	Coords  []float64 `json:"coords"  yaml:"coords"`  // flat point coordinates: x0,y0,z0, x1,y1,z1, ...
	Indices []int     `json:"indices" yaml:"indices"` // flat triangle vertex indices
	Bcs     []*BcData `json:"bcs"     yaml:"bcs"`     // boundary conditions
}

// RemoteData holds remote stress data
type RemoteData struct {
	Type  string     `json:"type"  yaml:"type"`  // uniform, andersonian or funcs
	Prms  dbf.Params `json:"prms"  yaml:"prms"`  // parameters of uniform and andersonian remotes
	Funcs []string   `json:"funcs" yaml:"funcs"` // funcs: names of functions giving xx, xy, xz, yy, yz and zz
}

// SolverData holds solver data
type SolverData struct {
	Type    string  `json:"type"    yaml:"type"`    // seidel or direct
	Eps     float64 `json:"eps"     yaml:"eps"`     // tolerance
	MaxIt   int     `json:"maxit"   yaml:"maxit"`   // maximum number of iterations
	NCores  int     `json:"ncores"  yaml:"ncores"`  // number of goroutines; 0 means all cpus
	Verbose bool    `json:"verbose" yaml:"verbose"` // show iterations
}

// QueryData holds the points where results are computed
type QueryData struct {
	Points []float64 `json:"points" yaml:"points"` // flat coordinates
	File   string    `json:"file"   yaml:"file"`   // table with columns x, y and z; relative to the .sim file
}

// Data holds all simulation data
type Data struct {

	// input
	Desc      string         `json:"desc"      yaml:"desc"`      // description of simulation
	DirOut    string         `json:"dirout"    yaml:"dirout"`    // directory for output; e.g. /tmp/gobem
	HalfSpace bool           `json:"halfspace" yaml:"halfspace"` // traction-free surface at z = 0
	Material  MaterialData   `json:"material"  yaml:"material"`  // elastic medium
	Functions FuncsData      `json:"functions" yaml:"functions"` // functions of position
	Surfaces  []*SurfaceData `json:"surfaces"  yaml:"surfaces"`  // all surfaces
	Remotes   []*RemoteData  `json:"remotes"   yaml:"remotes"`   // remote stresses
	Solver    SolverData     `json:"solver"    yaml:"solver"`    // solver data
	Queries   QueryData      `json:"queries"   yaml:"queries"`   // points for output

	// derived
	Dir string // directory of .sim file
	Key string // simulation key; e.g. mysim01.sim => mysim01
}

// ReadSim reads all simulation data from a .sim file. The format is YAML if the extension is
// .yaml or .yml and JSON otherwise
func ReadSim(simfilepath string) (o *Data, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Data)
	o.SetDefault()

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.Dir = filepath.Dir(os.ExpandEnv(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// SetDefault sets defaults values
func (o *Data) SetDefault() {
	o.Material.SetDefault()
	o.Solver.SetDefault()
}

// PostProcess performs a post-processing of the just read data
func (o *Data) PostProcess() (err error) {

	// output directory
	if o.DirOut == "" {
		o.DirOut = "/tmp/gobem/" + o.Key
	}

	// solver
	o.Solver.PostProcess()

	// surfaces
	for i, s := range o.Surfaces {
		if len(s.Indices) == 0 {
			return chk.Err("surface %d has no triangles", i)
		}
		for _, b := range s.Bcs {
			if len(b.Values) > 0 && len(b.Values) != len(s.Indices)/3 {
				return chk.Err("surface %d: axis %q needs one value per triangle (%d). %d is invalid", i, b.Axis, len(s.Indices)/3, len(b.Values))
			}
			if b.Func == "" {
				continue
			}
			if _, err = o.Functions.Get(b.Func); err != nil {
				return
			}
		}
	}

	// remotes
	for i, r := range o.Remotes {
		if r.Type == "funcs" && len(r.Funcs) != 6 {
			return chk.Err("remote %d: 6 functions are required (xx, xy, xz, yy, yz, zz). %d is invalid", i, len(r.Funcs))
		}
	}

	// query points from file
	if o.Queries.File != "" {
		fn := o.Queries.File
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(o.Dir, fn)
		}
		tab, err := readTable(fn)
		if err != nil {
			return chk.Err("cannot read query points file %q:\n%v", fn, err)
		}
		x, y, z := tab["x"], tab["y"], tab["z"]
		if len(x) != len(y) || len(x) != len(z) || (len(x) == 0 && len(tab) > 0) {
			return chk.Err("query points file %q must have columns x, y and z of the same length", fn)
		}
		for i := range x {
			o.Queries.Points = append(o.Queries.Points, x[i], y[i], z[i])
		}
	}
	if len(o.Queries.Points)%3 != 0 {
		return chk.Err("number of query coordinates (%d) must be a multiple of 3", len(o.Queries.Points))
	}
	return
}

// readTable reads a table with a header line, returning the panics of io.ReadTable as errors
func readTable(fn string) (tab map[string][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			tab, err = nil, chk.Err("%v", r)
		}
	}()
	_, tab = io.ReadTable(fn)
	return
}

// GetInfo returns formatted information
func (o *Data) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.Type = "seidel"
	o.Eps = 1e-9
	o.MaxIt = 200
}

// PostProcess fixes invalid values
func (o *SolverData) PostProcess() {
	if o.Eps <= 0 {
		o.Eps = 1e-9
	}
	if o.MaxIt < 1 {
		o.MaxIt = 200
	}
	if o.NCores < 0 {
		o.NCores = 0
	}
}
