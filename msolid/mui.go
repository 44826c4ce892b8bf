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

// MuI implements the rate-dependent frictional rheology for dense granular
// flow: the shear resistance is bounded by μ(I)·p where I is the inertial
// number and p the confining pressure. The update is an elastic predictor
// followed by a radial return of the deviator onto the yield surface.
// Tension is not sustained: the stress is zeroed when confinement is lost
type MuI struct {
	SmallElasticity
	μ0   float64 // static friction coefficient (I → 0)
	μinf float64 // limit friction coefficient (I → ∞)
	I0   float64 // reference inertial number
	dg   float64 // grain diameter
	ρg   float64 // grain density
	pref float64 // reference pressure for the stiffness correction
	pex  float64 // stiffness correction exponent; 0 disables the correction
	ptol float64 // pressure below which confinement is considered lost
	ten  []float64 // auxiliary tensor
}

// add model to factory
func init() {
	allocators["mui"] = func() Model { return new(MuI) }
}

// Init initialises model
func (o *MuI) Init(ndim int, prms dbf.Params) (err error) {

	// elastic predictor constants
	err = o.SmallElasticity.Init(ndim, prms)
	if err != nil {
		return
	}

	// parse parameters
	o.ptol = 1e-10
	for _, p := range prms {
		switch p.N {
		case "mu0":
			o.μ0 = p.V
		case "muinf":
			o.μinf = p.V
		case "i0":
			o.I0 = p.V
		case "dg":
			o.dg = p.V
		case "rhog":
			o.ρg = p.V
		case "pref":
			o.pref = p.V
		case "pex":
			o.pex = p.V
		case "ptol":
			o.ptol = p.V
		case "E", "nu", "K", "G":
		default:
			return chk.Err("mui: parameter named %q is incorrect", p.N)
		}
	}

	// check parameters
	for _, v := range []float64{o.μ0, o.μinf, o.I0, o.dg, o.ρg, o.pref, o.pex} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("mui: parameters must be finite")
		}
	}
	if !(o.μ0 > 0) {
		return chk.Err("mui: mu0=%v must be positive", o.μ0)
	}
	if o.μinf < o.μ0 {
		return chk.Err("mui: muinf=%v must not be smaller than mu0=%v", o.μinf, o.μ0)
	}
	if !(o.I0 > 0) {
		return chk.Err("mui: i0=%v must be positive", o.I0)
	}
	if !(o.dg > 0) || !(o.ρg > 0) {
		return chk.Err("mui: dg=%v and rhog=%v must be positive", o.dg, o.ρg)
	}
	if o.pex > 0 && !(o.pref > 0) {
		return chk.Err("mui: pref=%v must be positive when pex=%v is given", o.pref, o.pex)
	}

	// auxiliary structures
	o.ten = make([]float64, o.Nsig)
	return
}

// GetPrms gets (an example) of parameters
func (o MuI) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "mu0", V: 0.38},
		&dbf.P{N: "muinf", V: 0.64},
		&dbf.P{N: "i0", V: 0.279},
		&dbf.P{N: "dg", V: 0.001},
		&dbf.P{N: "rhog", V: 2650},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o MuI) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 1)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strain increment
func (o *MuI) Update(s *State, Δε []float64, J, dt float64) (err error) {

	// set flags
	s.Loading = false
	s.Dgam = 0

	// accessors
	σ := s.Sig

	// stiffness correction factor from the current confinement
	fac := 1.0
	if o.pex > 0 {
		pcur := tsr.M_p(σ)
		if pcur < o.ptol {
			pcur = o.ptol
		}
		fac = math.Pow(pcur/o.pref, o.pex)
	}

	// trial stress
	copy(o.ten, σ)
	o.IncrementStress(o.ten, Δε, fac)
	ptr, qtr := tsr.M_p(o.ten), tsr.M_q(o.ten)

	// no resistance without confinement
	if ptr <= o.ptol {
		for i := 0; i < o.Nsig; i++ {
			σ[i] = 0
		}
		s.Inum = 0
		return
	}

	// inertial number and effective friction
	γdot := GammaDot(Δε, dt)
	s.Inum = Inum(γdot, o.dg, o.ρg, ptr)
	μ := Mu(o.μ0, o.μinf, o.I0, s.Inum)

	// trial yield function: τ = q/√3 must not exceed μ(I)·p
	qy := tsr.SQ3 * μ * ptr
	if qtr <= qy {
		copy(σ, o.ten) // elastic update: σ := σtr
		return
	}

	// return mapping: scale the deviator onto the yield surface, keeping p
	var str float64
	m := qy / qtr
	for i := 0; i < o.Nsig; i++ {
		str = o.ten[i] + ptr*tsr.Im[i] // str := dev(σtr)
		σ[i] = m*str - ptr*tsr.Im[i]
	}
	s.Dgam = (qtr - qy) / (3.0 * o.G * fac)
	s.Alp[0] += s.Dgam
	s.Loading = true
	return
}
