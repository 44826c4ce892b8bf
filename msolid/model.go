// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models mapping a material point's
// kinematic state to an updated Cauchy stress
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for stress-update models. Stresses and strains
// are stored as Mandel vectors with nsig = 2*ndim components; the mean
// pressure convention follows tsr.M_p: p = -tr(σ)/3, positive in compression
type Model interface {

	// Init initialises and validates the model with given parameters
	Init(ndim int, prms dbf.Params) (err error)

	// GetPrms gets (an example) of parameters
	GetPrms() dbf.Params

	// InitIntVars initialises internal (secondary) variables
	InitIntVars(σ []float64) (s *State, err error)

	// Update updates the stress state for a given strain increment Δε
	// accumulated over dt. J is the determinant of the particle's
	// deformation gradient after the increment
	Update(s *State, Δε []float64, J, dt float64) (err error)
}

// allocators holds all available models
var allocators = make(map[string]func() Model)

// New allocates a model by name
func New(name string) (model Model, err error) {
	if alloc, ok := allocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("cannot find model named %q", name)
}

// LogModels prints the available models
func LogModels() {
	io.Pf("available solid models:")
	for name := range allocators {
		io.Pf(" %q", name)
	}
	io.Pf("\n")
}
