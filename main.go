// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/cpmech/gobem/bem"
	"github.com/cpmech/gobem/inp"
	"github.com/cpmech/gobem/out"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobem",
	Short: "Go Boundary Element Method",
	Long: `gobem computes the displacement discontinuities on triangulated surfaces (faults,
cracks, dikes) embedded in a linear elastic full-space or half-space under remote
stresses and mixed traction/slip boundary conditions.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verbose bool   // show messages
	dirout  string // directory for output; overrides the one in the .sim file
	doprof  int    // profiling: 0=none 1=CPU 2=MEM
)

var runCmd = &cobra.Command{
	Use:   "run [file.sim]",
	Short: "Solve a case and write the results",
	Long: `Solve the case in a .sim file (JSON, or YAML with extension .yaml or .yml) and write
the displacements and stresses at the query points, the Burgers vectors of all
triangles and a VTU file with the surfaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var infoCmd = &cobra.Command{
	Use:   "info [file.sim]",
	Short: "Display information about a case",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	runCmd.Flags().StringVarP(&dirout, "out", "o", "", "directory for output")
	runCmd.Flags().IntVar(&doprof, "prof", 0, "profiling: 0=none 1=CPU 2=MEM (written to /tmp/gosl)")
	rootCmd.AddCommand(runCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, args []string) error {

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation file", "fnamepath", args[0],
			"directory for output", "dirout", dirout,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, !verbose)()
	}

	// input data
	sim, err := inp.ReadSim(args[0])
	if err != nil {
		return err
	}
	if dirout != "" {
		sim.DirOut = dirout
	}

	// run simulation. A diverged solution is still written
	analysis, err := bem.NewMain(sim, verbose)
	if err != nil {
		return err
	}
	_, err = analysis.Run()
	if err != nil && !errors.Is(err, bem.ErrDiverged) {
		return err
	}
	runErr := err

	// results
	post := out.New(analysis.Model)
	post.NbCores = sim.Solver.NCores
	var files []string
	if len(sim.Queries.Points) > 0 {
		fn, err := post.WritePoints(sim.DirOut, sim.Key, sim.Queries.Points)
		if err != nil {
			return err
		}
		files = append(files, fn)
	}
	fn, err := post.WriteBurgers(sim.DirOut, sim.Key)
	if err != nil {
		return err
	}
	files = append(files, fn)
	if fn, err = post.WriteVtu(sim.DirOut, sim.Key); err != nil {
		return err
	}
	files = append(files, fn)
	if verbose {
		for _, f := range files {
			io.Pf("file <%s> written\n", f)
		}
	}
	return runErr
}

func runInfo(cmd *cobra.Command, args []string) error {
	sim, err := inp.ReadSim(args[0])
	if err != nil {
		return err
	}
	analysis, err := bem.NewMain(sim, false)
	if err != nil {
		return err
	}
	m := analysis.Model
	min, max := m.Bounds()
	io.Pf("%s\n", sim.Desc)
	io.Pf("surfaces     = %d\n", len(m.Surfaces))
	io.Pf("triangles    = %d\n", m.NbTriangles())
	io.Pf("dofs         = %d\n", m.NbDof())
	io.Pf("remotes      = %d\n", len(m.Remotes))
	io.Pf("half-space   = %v\n", m.HalfSpace)
	io.Pf("solver       = %s\n", sim.Solver.Type)
	io.Pf("query points = %d\n", len(sim.Queries.Points)/3)
	io.Pf("min          = (%g, %g, %g)\n", min.X, min.Y, min.Z)
	io.Pf("max          = (%g, %g, %g)\n", max.X, max.Y, max.Z)
	return nil
}
