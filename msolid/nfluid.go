// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/tsr"
)

// NewtonFluid implements a weakly compressible Newtonian fluid with the
// equation of state
//  p = K·(J^(-γ) - 1)   clipped at p ≥ 0
// where J is the determinant of the deformation gradient, and a viscous
// deviatoric stress 2·μv·dev(d)
type NewtonFluid struct {
	Nsig int     // number of stress components
	K    float64 // bulk modulus
	γ    float64 // equation of state exponent
	μv   float64 // dynamic viscosity
}

// add model to factory
func init() {
	allocators["nfluid"] = func() Model { return new(NewtonFluid) }
}

// Init initialises model
func (o *NewtonFluid) Init(ndim int, prms dbf.Params) (err error) {
	o.Nsig = 2 * ndim
	o.γ = 7.0
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "gamma":
			o.γ = p.V
		case "muv":
			o.μv = p.V
		default:
			return chk.Err("nfluid: parameter named %q is incorrect", p.N)
		}
	}
	for _, v := range []float64{o.K, o.γ, o.μv} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("nfluid: parameters must be finite")
		}
	}
	if !(o.K > 0) || !(o.γ > 0) || o.μv < 0 {
		return chk.Err("nfluid: K=%v and gamma=%v must be positive and muv=%v must not be negative", o.K, o.γ, o.μv)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o NewtonFluid) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 2e6},
		&dbf.P{N: "gamma", V: 7},
		&dbf.P{N: "muv", V: 0.001},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o NewtonFluid) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 0)
	copy(s.Sig, σ)
	return
}

// Update computes the stress directly from the current volume ratio and
// strain rate; the fluid carries no stress history
func (o *NewtonFluid) Update(s *State, Δε []float64, J, dt float64) (err error) {
	if !(J > 0) {
		return chk.Err("nfluid: volume ratio J=%v must be positive", J)
	}
	p := o.K * (math.Pow(J, -o.γ) - 1.0)
	if p < 0 {
		p = 0
	}
	trd := (Δε[0] + Δε[1] + Δε[2]) / dt
	var d float64
	for i := 0; i < o.Nsig; i++ {
		d = Δε[i]/dt - trd*tsr.Im[i]/3.0
		s.Sig[i] = -p*tsr.Im[i] + 2.0*o.μv*d
	}
	return
}
