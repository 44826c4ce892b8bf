// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OutFcn is called at every output instant with the current time
type OutFcn func(t float64) error

// Solver implements the actual time stepping scheme
type Solver interface {

	// Init binds the solver to a domain
	Init(dom *Domain) error

	// Step advances the simulation by dt. A returned error is a *StepError
	// and the domain state is the one from before the step
	Step(dt float64) error

	// Run performs the time loop until tf, calling out at every output instant
	Run(tf float64, dtFunc, dtoFunc dbf.T, verbose bool, out OutFcn) error

	// Time returns the current simulation time
	Time() float64
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func() Solver)

// NewSolver returns a new solver
func NewSolver(name string) (Solver, error) {
	allocator, ok := solverallocators[name]
	if !ok {
		return nil, chk.Err("cannot find solver type %q", name)
	}
	return allocator(), nil
}
