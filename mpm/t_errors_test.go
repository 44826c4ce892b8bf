// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_errors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errors01. point leaving the box; step is atomic")

	m, err := NewMPM("data/fallout.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	chk.IntAssert(d.Pts.Npoints(), 1)
	p := d.Pts.All[0]
	x0 := []float64{p.X[0], p.X[1]}

	// with dt=1 and g=-9.81 the point crosses the free bottom wall at once
	err = m.Sol.Step(1.0)
	if err == nil {
		tst.Errorf("Step must fail when the point leaves the box\n")
		return
	}
	io.Pforan("err = %v\n", err)
	se, ok := err.(*StepError)
	if !ok {
		tst.Errorf("error must be a *StepError. got %T\n", err)
		return
	}
	if se.Phase != PhG2P {
		tst.Errorf("failure phase must be %v. got %v\n", PhG2P, se.Phase)
		return
	}
	if se.Kind != KindOutOfBounds {
		tst.Errorf("failure kind must be %q. got %q\n", KindOutOfBounds, se.Kind)
		return
	}
	chk.IntAssert(se.P, 0)

	// the failed step must leave the points untouched
	chk.Vector(tst, "x restored", 1e-17, p.X, x0)
	chk.Vector(tst, "v restored", 1e-17, p.V, []float64{0, 0})
	chk.Vector(tst, "σ restored", 1e-17, p.Sta.Sig, []float64{0, 0, 0, 0})
	chk.Scalar(tst, "vol restored", 1e-17, p.Vol, p.Vol0)

	// Run surfaces the same failure
	if err := m.Run(); err == nil {
		tst.Errorf("Run must fail when a step fails\n")
		return
	}
}

func Test_errors02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errors02. decoupled point and degenerate deformation")

	m, err := NewMPM("data/freefall.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	usl := m.Sol.(*USL)
	w := d.Wrk[0]

	// gathering from an empty lattice leaves the point without support
	d.Grd.Reset()
	err = usl.gather(w, 0, 1e-3)
	se, ok := err.(*StepError)
	if !ok || se.Kind != KindDecoupled || se.Phase != PhG2P {
		tst.Errorf("gather from empty lattice must fail with a decoupled point. got %v\n", err)
		return
	}

	// a lattice velocity field with divergence -2/dt inverts the deformation
	// gradient within one step. Centering the field on the point keeps it
	// inside the box so the failure is the deformation, not the position
	dt := 1e-3
	xc := d.Pts.All[0].X[0]
	xn := make([]float64, 2)
	for n := 0; n < d.Grd.Nnodes; n++ {
		d.Grd.Mass[n] = 1
		d.Grd.NodeCoords(n, xn)
		d.Grd.Vel[n][0] = -2.0 / dt * (xn[0] - xc)
		d.Grd.Vel[n][1] = 0
	}
	err = usl.gather(w, 0, dt)
	se, ok = err.(*StepError)
	if !ok || se.Kind != KindDegenerate || se.Phase != PhG2P {
		tst.Errorf("inverting flow must fail with degenerate deformation. got %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_errors03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errors03. invalid time step and phase names")

	m, err := NewMPM("data/freefall.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	for _, dt := range []float64{0, -1} {
		err := m.Sol.Step(dt)
		se, ok := err.(*StepError)
		if !ok || se.Kind != KindInvalidParameter {
			tst.Errorf("Step(%v) must fail with invalid-parameter. got %v\n", dt, err)
			return
		}
	}

	// phase names
	for ph, name := range map[Phase]string{
		PhIdle:        "idle",
		PhGridReset:   "grid-reset",
		PhP2G:         "points-to-grid",
		PhGridUpdate:  "grid-update",
		PhG2P:         "grid-to-points",
		PhConstUpdate: "constitutive-update",
		Phase(99):     "unknown",
	} {
		if ph.String() != name {
			tst.Errorf("phase %d must print %q. got %q\n", ph, name, ph.String())
			return
		}
	}

	// message formatting
	se := newStepError(PhP2G, KindOutOfBounds, 7, nil)
	io.Pforan("se = %v\n", se)
	if se.Error() == "" {
		tst.Errorf("error message must not be empty\n")
		return
	}
}
