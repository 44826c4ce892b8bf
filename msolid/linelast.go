// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements linear isotropic elasticity
type LinElast struct {
	SmallElasticity
}

// add model to factory
func init() {
	allocators["elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, prms dbf.Params) (err error) {
	return o.SmallElasticity.Init(ndim, prms)
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 0)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strain increment
func (o *LinElast) Update(s *State, Δε []float64, J, dt float64) (err error) {
	o.IncrementStress(s.Sig, Δε, 1.0)
	return
}
