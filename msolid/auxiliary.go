// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

// Mu returns the rate-dependent friction coefficient of the μ(I) rheology:
//  μ(I) = μ0 + (μinf - μ0) / (1 + I0/I)   [I > 0]
//  μ(I) = μ0                              [I → 0]
// μ is monotonically non-decreasing in I, μ(0) = μ0 and μ(∞) = μinf
func Mu(μ0, μinf, I0, I float64) float64 {
	if I <= 0 {
		return μ0
	}
	return μ0 + (μinf-μ0)*I/(I0+I)
}

// Inum returns the inertial number
//  I = γdot · dg · √(ρg/p)
// where dg is the grain diameter and ρg the grain density. I is defined to be
// zero when p is not positive (no confinement)
func Inum(γdot, dg, ρg, p float64) float64 {
	if p <= 0 {
		return 0
	}
	return γdot * dg * math.Sqrt(ρg/p)
}

// GammaDot returns the shear strain-rate magnitude
//  γdot = √2 · ‖dev(Δε)‖ / dt
// with Δε given as a Mandel vector, whose Euclidean norm equals the Frobenius
// norm of the corresponding tensor
func GammaDot(Δε []float64, dt float64) float64 {
	trΔε := Δε[0] + Δε[1] + Δε[2]
	sno := 0.0
	var dev float64
	for i := 0; i < len(Δε); i++ {
		dev = Δε[i] - trΔε*tsr.Im[i]/3.0
		sno += dev * dev
	}
	return tsr.SQ2 * math.Sqrt(sno) / dt
}
