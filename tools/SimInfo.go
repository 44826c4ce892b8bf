// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"filename path", "fnamepath", fnamepath,
	))

	// allocate analysis without running it
	analysis, err := mpm.NewMPM(fnamepath, false, false)
	if err != nil {
		io.PfRed("cannot allocate analysis:\n%v\n", err)
		return
	}

	// report
	sim, dom := analysis.Sim, analysis.Dom
	io.Pf("description  = %q\n", sim.Data.Desc)
	io.Pf("ndim         = %d\n", sim.Ndim)
	io.Pf("box          = %v to %v\n", dom.Grd.Xmin, dom.Grd.Xmax)
	io.Pf("cell size    = %g\n", dom.Grd.H)
	io.Pf("nodes        = %d\n", dom.Grd.Nnodes)
	io.Pf("points       = %d\n", dom.Pts.Npoints())
	io.Pf("total mass   = %g\n", dom.Pts.TotalMass())
	io.Pf("kernel       = %q\n", sim.Solver.Kernel)
	io.Pf("transfer     = %q\n", dom.Trf.Name())
	io.Pf("workers      = %d\n", dom.Nproc)
	io.Pf("dt, tf       = %g, %g\n", sim.Control.Dt, sim.Control.Tf)
	io.Pf("steps        = %d\n", int(sim.Control.Tf/sim.Control.Dt))
}
