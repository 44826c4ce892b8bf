// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. uniaxial strain increment")

	mdl, err := New("elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	}
	if err := mdl.Init(2, prms); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// derived moduli
	le := mdl.(*LinElast)
	chk.Scalar(tst, "K", 1e-12, le.K, 1000.0/1.5)
	chk.Scalar(tst, "G", 1e-12, le.G, 400.0)

	// uniaxial strain: σ11 = (K+4G/3)·ε, lateral = (K-2G/3)·ε
	s, err := mdl.InitIntVars([]float64{0, 0, 0, 0})
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}
	if err := mdl.Update(s, []float64{-1e-3, 0, 0, 0}, 1, 1); err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Vector(tst, "σ", 1e-12, s.Sig, []float64{-1.2, -0.4, -0.4, 0})

	// missing parameters
	mdl2, _ := New("elast")
	if err := mdl2.Init(2, dbf.Params{&dbf.P{N: "E", V: 1000}}); err == nil {
		tst.Errorf("Init must fail without nu\n")
		return
	}
	mdl3, _ := New("elast")
	if err := mdl3.Init(2, dbf.Params{&dbf.P{N: "E", V: math.NaN()}, &dbf.P{N: "nu", V: 0.25}}); err == nil {
		tst.Errorf("Init must fail with non-finite E\n")
		return
	}
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. model factory")

	if _, err := New("unknown-model"); err == nil {
		tst.Errorf("New must fail with unknown model name\n")
		return
	}
	LogModels()
}
