// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gosl/chk"
)

// MPM holds one complete analysis: input data, domain and solver
type MPM struct {
	Sim *inp.Simulation // input data
	Dom *Domain         // lattice, points and models
	Sol Solver          // time stepping scheme
	Out OutFcn          // called at every output instant; may be nil

	// options
	Verbose bool // show time stepping messages
}

// NewMPM allocates a complete analysis from a .sim file
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMPM(simfilepath string, erasePrev, verbose bool) (o *MPM, err error) {
	o = &MPM{Verbose: verbose}
	o.Sim, err = inp.ReadSim(simfilepath, erasePrev)
	if err != nil {
		return nil, chk.Err("cannot read simulation file:\n%v", err)
	}
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}
	o.Sol, err = NewSolver(o.Sim.Solver.Type)
	if err != nil {
		return nil, err
	}
	if err = o.Sol.Init(o.Dom); err != nil {
		return nil, err
	}
	return
}

// Run performs the time loop of the whole simulation
func (o *MPM) Run() error {
	ctl := &o.Sim.Control
	return o.Sol.Run(ctl.Tf, ctl.DtFunc, ctl.DtoFunc, o.Verbose, o.Out)
}
