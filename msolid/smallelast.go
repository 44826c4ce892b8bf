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

// SmallElasticity implements the small-strain isotropic elastic stress
// increment shared by the models of this package
type SmallElasticity struct {
	Nsig int     // number of stress components
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	K    float64 // bulk modulus
	G    float64 // shear modulus
}

// Init initialises this structure. Either {E, nu} or {K, G} must be given;
// the missing pair is derived
func (o *SmallElasticity) Init(ndim int, prms dbf.Params) (err error) {
	o.Nsig = 2 * ndim
	var hasE, hasNu, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		}
	}
	switch {
	case hasE && hasNu:
		o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	case hasK && hasG:
		o.E = 9.0 * o.K * o.G / (3.0*o.K + o.G)
		o.Nu = (3.0*o.K - 2.0*o.G) / (6.0*o.K + 2.0*o.G)
	default:
		return chk.Err("elasticity: either {E, nu} or {K, G} must be provided")
	}
	for _, v := range []float64{o.E, o.Nu, o.K, o.G} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("elasticity: parameters are not finite: E=%v nu=%v K=%v G=%v", o.E, o.Nu, o.K, o.G)
		}
	}
	if !(o.K > 0) || !(o.G > 0) {
		return chk.Err("elasticity: K=%v and G=%v must be positive", o.K, o.G)
	}
	return
}

// IncrementStress adds the elastic stress increment to σ:
//  σ += fac · (K·tr(Δε)·I + 2G·dev(Δε))
func (o SmallElasticity) IncrementStress(σ, Δε []float64, fac float64) {
	trΔε := Δε[0] + Δε[1] + Δε[2]
	var devΔε float64
	for i := 0; i < o.Nsig; i++ {
		devΔε = Δε[i] - trΔε*tsr.Im[i]/3.0
		σ[i] += fac * (o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε)
	}
}
