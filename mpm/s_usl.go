// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"sync"

	"github.com/cpmech/gompm/grid"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// USL solves the equations of motion with the update-stress-last scheme: the
// constitutive update runs after the lattice solution, with the strain
// increment taken from the new lattice velocities
type USL struct {

	// domain and current time
	Dom *Domain
	t   float64

	// scratch
	gv []float64 // gravity vector scaled by the multiplier function
	Δε []float64 // strain increment of one point in Mandel form
}

// set factory
func init() {
	solverallocators["usl"] = func() Solver { return new(USL) }
}

// Init binds the solver to a domain
func (o *USL) Init(dom *Domain) error {
	o.Dom = dom
	o.gv = make([]float64, dom.Grd.Ndim)
	o.Δε = make([]float64, 2*dom.Grd.Ndim)
	return nil
}

// Time returns the current simulation time
func (o *USL) Time() float64 { return o.t }

// Run performs the time loop until tf
func (o *USL) Run(tf float64, dtFunc, dtoFunc dbf.T, verbose bool, out OutFcn) (err error) {

	// output of initial state
	t := o.t
	if out != nil {
		if err = out(t); err != nil {
			return
		}
	}
	tout := t + dtoFunc.F(t, nil)

	// time loop
	var Δt float64
	var lasttimestep bool
	for t < tf {

		// time increment
		Δt = dtFunc.F(t, nil)
		if t+Δt >= tf {
			Δt = tf - t
			lasttimestep = true
		}
		if Δt < 1e-14 {
			break
		}

		// advance one step
		if err = o.Step(Δt); err != nil {
			return
		}
		t = o.t

		// message
		if verbose {
			io.PfWhite("%30.15f\r", t)
		}

		// output
		if t >= tout-1e-12 || lasttimestep {
			if out != nil {
				if err = out(t); err != nil {
					return
				}
			}
			tout += dtoFunc.F(t, nil)
		}
	}
	return
}

// Step advances the simulation by dt. On failure the points are restored to
// the state they had at the beginning of the step
func (o *USL) Step(dt float64) (err error) {

	// check time increment
	if !(dt > 0) {
		return &StepError{Phase: PhIdle, Kind: KindInvalidParameter, P: -1, N: -1}
	}

	// backup points for atomicity
	d := o.Dom
	d.backup()
	defer func() {
		if err != nil {
			d.restore()
		}
	}()

	// gravity at the beginning of the step
	gfac := d.GravMult.F(o.t, nil)
	for j := 0; j < d.Grd.Ndim; j++ {
		o.gv[j] = gfac * d.Grav[j]
	}

	// transient lattice fields
	d.Grd.Reset()

	// points to lattice
	if err = o.p2g(); err != nil {
		return
	}

	// lattice solution
	d.Grd.Integrate(dt, o.gv, d.Bcs)

	// lattice to points
	if err = o.g2p(dt); err != nil {
		return
	}

	// constitutive update
	if err = o.updateStresses(dt); err != nil {
		return
	}
	o.t += dt
	return
}

// parallel runs one phase over all points, with one goroutine per worker,
// and returns the first failure in worker order
func (o *USL) parallel(phase func(w *workspace, lo, hi int)) error {
	d := o.Dom
	var wg sync.WaitGroup
	for i := 0; i < d.Nproc; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := d.Wrk[i]
			w.err = nil
			lo, hi := d.chunk(i)
			phase(w, lo, hi)
		}(i)
	}
	wg.Wait()
	for _, w := range d.Wrk {
		if w.err != nil {
			return w.err
		}
	}
	return nil
}

// p2g scatters mass, momentum and internal forces to the lattice. Workers
// scatter into private partial fields which are then merged in worker order
// so that the result does not depend on scheduling
func (o *USL) p2g() (err error) {
	d := o.Dom
	err = o.parallel(func(w *workspace, lo, hi int) {
		w.zero()
		for ip := lo; ip < hi; ip++ {
			if w.err = o.scatter(w, ip); w.err != nil {
				return
			}
		}
	})
	if err != nil {
		return
	}

	// merge partials
	g := d.Grd
	for _, w := range d.Wrk {
		for n := 0; n < g.Nnodes; n++ {
			g.Mass[n] += w.mass[n]
			for j := 0; j < g.Ndim; j++ {
				g.Mom[n][j] += w.mom[n][j]
				g.Frc[n][j] += w.frc[n][j]
			}
		}
	}
	return
}

// scatter adds the contribution of one point to the partial lattice fields
func (o *USL) scatter(w *workspace, ip int) error {
	d := o.Dom
	g := d.Grd
	p := d.Pts.All[ip]
	ndim := g.Ndim

	// kernel evaluation; each worker owns a kernel since Calc uses scratch
	nn, err := w.kern.Calc(w.S, w.G, w.nids, p.X, g.Xmin, g.H, g.Npts)
	if err != nil {
		return newStepError(PhP2G, KindOutOfBounds, p.Id, err)
	}

	// loop over touched nodes
	for k := 0; k < nn; k++ {
		n := w.nids[k]
		g.NodeCoords(n, w.xn)
		for j := 0; j < ndim; j++ {
			w.dx[j] = w.xn[j] - p.X[j]
		}

		// mass and momentum
		d.Trf.PointVelocity(w.vtmp, p, w.dx)
		wm := w.S[k] * p.M
		w.mass[n] += wm
		for j := 0; j < ndim; j++ {
			w.mom[n][j] += wm * w.vtmp[j]
		}

		// internal force: f_j -= V_p · σ_jl · G_l
		for j := 0; j < ndim; j++ {
			for l := 0; l < ndim; l++ {
				w.frc[n][j] -= p.Vol * tsr.M2T(p.Sta.Sig, j, l) * w.G[k][l]
			}
		}
	}
	return nil
}

// g2p gathers the lattice solution back to the points, updating velocities,
// positions, deformation gradients and volumes
func (o *USL) g2p(dt float64) (err error) {
	return o.parallel(func(w *workspace, lo, hi int) {
		for ip := lo; ip < hi; ip++ {
			if w.err = o.gather(w, ip, dt); w.err != nil {
				return
			}
		}
	})
}

// gather updates one point from the lattice solution
func (o *USL) gather(w *workspace, ip int, dt float64) error {
	d := o.Dom
	g := d.Grd
	p := d.Pts.All[ip]
	ndim := g.Ndim

	// kernel evaluation at the (unchanged) point position
	nn, err := w.kern.Calc(w.S, w.G, w.nids, p.X, g.Xmin, g.H, g.Npts)
	if err != nil {
		return newStepError(PhG2P, KindOutOfBounds, p.Id, err)
	}

	// gather velocity, velocity change, affine matrix and velocity gradient
	var msum float64
	for j := 0; j < ndim; j++ {
		w.vpic[j] = 0
		w.dv[j] = 0
	}
	la.MatFill(w.bnew, 0)
	la.MatFill(p.L, 0)
	for k := 0; k < nn; k++ {
		n := w.nids[k]
		g.NodeCoords(n, w.xn)
		msum += w.S[k] * g.Mass[n]
		for j := 0; j < ndim; j++ {
			vn := g.Vel[n][j]
			w.vpic[j] += w.S[k] * vn
			w.dv[j] += w.S[k] * (vn - g.Vold[n][j])
			for l := 0; l < ndim; l++ {
				w.bnew[j][l] += w.S[k] * vn * (w.xn[l] - p.X[l])
				p.L[j][l] += vn * w.G[k][l]
			}
		}
	}

	// a point whose kernel support carries no mass cannot follow the lattice
	if msum <= grid.MTOL {
		return newStepError(PhG2P, KindDecoupled, p.Id, nil)
	}

	// velocity and position; positions follow the filtered lattice velocity
	d.Trf.UpdateVelocity(p, w.vpic, w.dv, w.bnew)
	for j := 0; j < ndim; j++ {
		p.X[j] += dt * w.vpic[j]
		if p.X[j] < g.Xmin[j] || p.X[j] > g.Xmax[j] {
			return newStepError(PhG2P, KindOutOfBounds, p.Id, nil)
		}
	}

	// deformation gradient: F ← (I + dt·L)·F
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w.ftmp[i][j] = p.F[i][j]
			for l := 0; l < 3; l++ {
				w.ftmp[i][j] += dt * p.L[i][l] * p.F[l][j]
			}
		}
	}
	la.MatCopy(p.F, 1, w.ftmp)

	// volume from the Jacobian determinant
	J, err := la.MatInv(w.finv, p.F, 1e-14)
	if err != nil || J <= 0 {
		return newStepError(PhG2P, KindDegenerate, p.Id, err)
	}
	p.Vol = J * p.Vol0
	return nil
}

// updateStresses runs the constitutive update of every point with the strain
// increment taken from the new velocity gradient
func (o *USL) updateStresses(dt float64) error {
	d := o.Dom
	ndim := d.Grd.Ndim
	for _, p := range d.Pts.All {

		// strain increment in Mandel form: Δε = ½(L+Lᵀ)·dt
		for j := 0; j < len(o.Δε); j++ {
			o.Δε[j] = 0
		}
		for j := 0; j < ndim; j++ {
			o.Δε[j] = p.L[j][j] * dt
		}
		o.Δε[3] = tsr.SQ2 * 0.5 * (p.L[0][1] + p.L[1][0]) * dt
		if ndim == 3 {
			o.Δε[4] = tsr.SQ2 * 0.5 * (p.L[1][2] + p.L[2][1]) * dt
			o.Δε[5] = tsr.SQ2 * 0.5 * (p.L[0][2] + p.L[2][0]) * dt
		}

		// model update
		J := p.Vol / p.Vol0
		if err := d.Mdls[p.Mat].Update(p.Sta, o.Δε, J, dt); err != nil {
			return newStepError(PhConstUpdate, KindDegenerate, p.Id, err)
		}
	}
	return nil
}
