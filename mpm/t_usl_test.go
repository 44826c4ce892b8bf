// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"testing"

	"github.com/cpmech/gompm/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_usl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl01. scatter of mass and momentum to the lattice")

	m, err := NewMPM("data/p2gref.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	chk.IntAssert(d.Pts.Npoints(), 1)
	p := d.Pts.All[0]
	chk.Vector(tst, "x", 1e-15, p.X, []float64{0.1, 0.25})
	chk.Scalar(tst, "m", 1e-15, p.M, 0.4)
	p.V[0] = 1
	p.V[1] = -2

	// scatter only
	usl := m.Sol.(*USL)
	d.Grd.Reset()
	if err := usl.p2g(); err != nil {
		tst.Errorf("p2g failed:\n%v", err)
		return
	}

	// nodal masses; ids are x-slowest on the 3x3 lattice
	g := d.Grd
	io.Pforan("mass = %v\n", g.Mass)
	chk.Scalar(tst, "m0", 1e-15, g.Mass[0], 0.27)
	chk.Scalar(tst, "m1", 1e-15, g.Mass[1], 0.09)
	chk.Scalar(tst, "m3", 1e-15, g.Mass[3], 0.03)
	chk.Scalar(tst, "m4", 1e-15, g.Mass[4], 0.01)
	var msum float64
	for n := 0; n < g.Nnodes; n++ {
		msum += g.Mass[n]
	}
	chk.Scalar(tst, "Σm = point mass", 1e-14, msum, p.M)

	// nodal momentum is mass times the (uniform) point velocity
	for _, n := range []int{0, 1, 3, 4} {
		chk.Vector(tst, io.Sf("mom%d", n), 1e-15, g.Mom[n], []float64{g.Mass[n] * 1.0, g.Mass[n] * (-2.0)})
	}

	// nodes away from the point carry nothing
	for _, n := range []int{2, 5, 6, 7, 8} {
		chk.Scalar(tst, io.Sf("m%d", n), 1e-17, g.Mass[n], 0)
	}
}

func Test_usl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl02. block in free fall with the cubic kernel")

	m, err := NewMPM("data/freefall.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	np := d.Pts.Npoints()
	chk.IntAssert(np, 8)
	M := d.Pts.TotalMass()
	chk.Scalar(tst, "M", 1e-12, M, 1000.0*0.5*0.25)
	y0 := d.Pts.All[0].X[1]

	// history of output times
	var touts []float64
	m.Out = func(t float64) error {
		touts = append(touts, t)
		return nil
	}

	// run
	if err := m.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Vector(tst, "output times", 1e-12, touts, []float64{0, 0.005, 0.01})

	// a uniform acceleration field must be reproduced exactly: every point
	// carries v = g·t and zero stress after any number of steps
	tf, dt := 0.01, 0.001
	for _, p := range d.Pts.All {
		chk.Scalar(tst, io.Sf("vx of %d", p.Id), 1e-12, p.V[0], 0)
		chk.Scalar(tst, io.Sf("vy of %d", p.Id), 1e-10, p.V[1], -9.81*tf)
		chk.Vector(tst, io.Sf("σ of %d", p.Id), 1e-8, p.Sta.Sig, []float64{0, 0, 0, 0})
		chk.Scalar(tst, io.Sf("vol of %d", p.Id), 1e-10, p.Vol, p.Vol0)
	}

	// mass and momentum conservation through the lattice
	var msum float64
	for n := 0; n < d.Grd.Nnodes; n++ {
		msum += d.Grd.Mass[n]
	}
	chk.Scalar(tst, "lattice mass", 1e-10, msum, M)
	mom := make([]float64, 2)
	d.Pts.TotalMomentum(mom)
	chk.Vector(tst, "momentum", 1e-8, mom, []float64{0, -M * 9.81 * tf})

	// elevation against the closed-form solution; the lattice update is first
	// order in time so the error scales with g·t·dt/2
	var sol ana.FreeFall
	sol.Init(dbf.Params{
		&dbf.P{N: "g", V: 9.81},
		&dbf.P{N: "y0", V: y0},
	})
	_, ey := sol.CompareStates(tf, d.Pts.All[0].V[1], d.Pts.All[0].X[1])
	if ey > 9.81*tf*dt {
		tst.Errorf("elevation error %g is too large\n", ey)
		return
	}
}

func Test_usl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl03. affine transfer preserves the free fall")

	m, err := NewMPM("data/freefall.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom

	// swap the transfer strategy for the affine one
	d.Trf, err = NewTransfer("apic", 0)
	if err != nil {
		tst.Errorf("NewTransfer failed:\n%v", err)
		return
	}
	if err := d.Trf.Init(d.Grd.H, "cub"); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	if err := m.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// uniform field: no affine part and exact velocities
	tf := 0.01
	for _, p := range d.Pts.All {
		chk.Scalar(tst, io.Sf("vy of %d", p.Id), 1e-10, p.V[1], -9.81*tf)
		chk.Scalar(tst, io.Sf("B00 of %d", p.Id), 1e-10, p.B[0][0], 0)
		chk.Scalar(tst, io.Sf("B01 of %d", p.Id), 1e-10, p.B[0][1], 0)
	}

	// unknown strategy
	if _, err := NewTransfer("unknown", 0); err == nil {
		tst.Errorf("NewTransfer must fail with unknown name\n")
		return
	}
}

func Test_usl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl04. force-free point and momentum conservation")

	m, err := NewMPM("data/fallout.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	chk.IntAssert(d.Pts.Npoints(), 1)
	d.Grav[0] = 0
	d.Grav[1] = 0
	p := d.Pts.All[0]
	x0, y0 := p.X[0], p.X[1]

	// resting point with zero stress must not move
	usl := m.Sol.(*USL)
	for i := 0; i < 5; i++ {
		if err := usl.Step(0.001); err != nil {
			tst.Errorf("Step failed:\n%v", err)
			return
		}
	}
	chk.Vector(tst, "x", 1e-15, p.X, []float64{x0, y0})
	chk.Vector(tst, "v", 1e-15, p.V, []float64{0, 0})
	chk.Vector(tst, "σ", 1e-15, p.Sta.Sig, []float64{0, 0, 0, 0})

	// uniform translation: velocity and momentum are preserved exactly
	p.V[0] = 0.1
	p.V[1] = 0.05
	dt, nsteps := 0.001, 5
	for i := 0; i < nsteps; i++ {
		if err := usl.Step(dt); err != nil {
			tst.Errorf("Step failed:\n%v", err)
			return
		}
	}
	chk.Vector(tst, "v after translation", 1e-13, p.V, []float64{0.1, 0.05})
	mom := make([]float64, 2)
	d.Pts.TotalMomentum(mom)
	chk.Vector(tst, "momentum", 1e-13, mom, []float64{p.M * 0.1, p.M * 0.05})
	chk.Vector(tst, "x after translation", 1e-13, p.X, []float64{x0 + 0.1*dt*float64(nsteps), y0 + 0.05*dt*float64(nsteps)})
	chk.Vector(tst, "σ after translation", 1e-13, p.Sta.Sig, []float64{0, 0, 0, 0})
}

func Test_usl05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("usl05. empty point set leaves the lattice zeroed")

	m, err := NewMPM("data/fallout.sim", false, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMPM failed:\n%v", err)
		return
	}
	d := m.Dom
	d.Pts.All = d.Pts.All[:0]

	usl := m.Sol.(*USL)
	if err := usl.Step(0.001); err != nil {
		tst.Errorf("Step failed:\n%v", err)
		return
	}
	chk.IntAssert(d.Pts.Npoints(), 0)
	g := d.Grd
	for n := 0; n < g.Nnodes; n++ {
		chk.Scalar(tst, io.Sf("mass %d", n), 1e-17, g.Mass[n], 0)
		chk.Vector(tst, io.Sf("vel %d", n), 1e-17, g.Vel[n], []float64{0, 0})
	}
}
