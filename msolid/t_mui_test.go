// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/tsr"
	"github.com/cpmech/gosl/utl"
)

func Test_mui01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mui01. closed-form friction coefficient")

	μ0, μinf, I0 := 0.4, 0.6, 0.3

	// limits and midpoint
	chk.Scalar(tst, "μ(0)", 1e-17, Mu(μ0, μinf, I0, 0), μ0)
	chk.Scalar(tst, "μ(I0)", 1e-15, Mu(μ0, μinf, I0, I0), μ0+(μinf-μ0)/2.0)
	chk.Scalar(tst, "μ(∞)", 1e-6, Mu(μ0, μinf, I0, 3e6), μinf)

	// monotonically non-decreasing
	Ivals := utl.LinSpace(0, 10, 101)
	for k := 1; k < len(Ivals); k++ {
		μa := Mu(μ0, μinf, I0, Ivals[k-1])
		μb := Mu(μ0, μinf, I0, Ivals[k])
		if μb < μa {
			tst.Errorf("μ(I) must be non-decreasing: μ(%g)=%g > μ(%g)=%g\n", Ivals[k-1], μa, Ivals[k], μb)
			return
		}
		if μb > μinf {
			tst.Errorf("μ(I)=%g must not exceed μinf=%g\n", μb, μinf)
			return
		}
	}
}

func Test_mui02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mui02. parameter validation")

	for _, prms := range []dbf.Params{
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}}, // missing frictional constants
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "mu0", V: -0.1}, &dbf.P{N: "muinf", V: 0.6}, &dbf.P{N: "i0", V: 0.3}, &dbf.P{N: "dg", V: 1e-3}, &dbf.P{N: "rhog", V: 2650}},
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "mu0", V: 0.4}, &dbf.P{N: "muinf", V: 0.2}, &dbf.P{N: "i0", V: 0.3}, &dbf.P{N: "dg", V: 1e-3}, &dbf.P{N: "rhog", V: 2650}},
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "mu0", V: 0.4}, &dbf.P{N: "muinf", V: 0.6}, &dbf.P{N: "i0", V: 0}, &dbf.P{N: "dg", V: 1e-3}, &dbf.P{N: "rhog", V: 2650}},
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "mu0", V: 0.4}, &dbf.P{N: "muinf", V: 0.6}, &dbf.P{N: "i0", V: 0.3}, &dbf.P{N: "dg", V: 1e-3}, &dbf.P{N: "rhog", V: 2650}, &dbf.P{N: "wrong", V: 1}},
	} {
		mdl, err := New("mui")
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		if err := mdl.Init(2, prms); err == nil {
			tst.Errorf("Init must fail with prms = %v\n", prms)
			return
		}
	}
}

func Test_mui03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mui03. elastic, plastic and unconfined updates")

	// model
	mdl, err := New("mui")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	μ0, μinf, I0, dg, ρg := 0.38, 0.64, 0.279, 0.001, 2650.0
	prms := dbf.Params{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "mu0", V: μ0},
		&dbf.P{N: "muinf", V: μinf},
		&dbf.P{N: "i0", V: I0},
		&dbf.P{N: "dg", V: dg},
		&dbf.P{N: "rhog", V: ρg},
	}
	if err := mdl.Init(2, prms); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	s, err := mdl.InitIntVars([]float64{0, 0, 0, 0})
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}

	// hydrostatic compression: purely volumetric => elastic
	dt := 1e-3
	K := 1e6 / (3.0 * (1.0 - 2.0*0.3))
	Δεv := []float64{-1e-4, -1e-4, -1e-4, 0}
	if err := mdl.Update(s, Δεv, 1, dt); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	pcomp := K * 3e-4
	chk.Vector(tst, "σ hydro", 1e-9, s.Sig, []float64{-pcomp, -pcomp, -pcomp, 0})
	if s.Loading {
		tst.Errorf("hydrostatic compression must be elastic\n")
		return
	}

	// strong shear @ p=pcomp => return mapping onto the yield surface
	Δεs := []float64{0, 0, 0, tsr.SQ2 * 5e-4}
	if err := mdl.Update(s, Δεs, 1, dt); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	p, q := tsr.M_p(s.Sig), tsr.M_q(s.Sig)
	io.Pforan("p=%v q=%v I=%v Δγ=%v\n", p, q, s.Inum, s.Dgam)
	if !s.Loading {
		tst.Errorf("strong shear must be elastoplastic\n")
		return
	}
	if !(s.Dgam > 0) {
		tst.Errorf("Δγ = %v must be positive\n", s.Dgam)
		return
	}
	chk.Scalar(tst, "p unchanged by return mapping", 1e-8, p, pcomp)

	// inertial number and consistency: q == √3·μ(I)·p
	γdot := GammaDot(Δεs, dt)
	chk.Scalar(tst, "γdot", 1e-12, γdot, 1.0)
	chk.Scalar(tst, "I", 1e-12, s.Inum, Inum(γdot, dg, ρg, p))
	μ := Mu(μ0, μinf, I0, s.Inum)
	chk.Scalar(tst, "q = √3·μ(I)·p", 1e-8, q, tsr.SQ3*μ*p)

	// accumulated plastic multiplier
	chk.Scalar(tst, "α0 = Δγ", 1e-15, s.Alp[0], s.Dgam)

	// expansion: confinement lost => stress is zeroed
	Δεx := []float64{1e-3, 1e-3, 1e-3, 0}
	if err := mdl.Update(s, Δεx, 1, dt); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Vector(tst, "σ unconfined", 1e-17, s.Sig, []float64{0, 0, 0, 0})
	chk.Scalar(tst, "I unconfined", 1e-17, s.Inum, 0)
	if math.IsNaN(s.Sig[0]) {
		tst.Errorf("unconfined update must not produce NaN\n")
		return
	}
}
