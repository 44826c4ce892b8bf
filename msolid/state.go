// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the stress and internal variables of one material point
type State struct {

	// essential
	Sig []float64 // σ: current Cauchy stress tensor [nsig]

	// for plasticity (if len(α) > 0)
	Alp     []float64 // α: internal variables of rate type; e.g. accumulated plastic multiplier [nalp]
	Dgam    float64   // Δγ: increment of Lagrange multiplier of the last update
	Loading bool      // elastoplastic loading flag of the last update

	// rate-dependent friction
	Inum float64 // I: inertial number of the last update (for reporting)
}

// NewState allocates a state structure
func NewState(nsig, nalp int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	if len(o.Alp) > 0 {
		copy(o.Alp, other.Alp)
	}
	o.Dgam = other.Dgam
	o.Loading = other.Loading
	o.Inum = other.Inum
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}
