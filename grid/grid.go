// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the background Eulerian lattice holding the
// step-scoped mass, momentum and force accumulators of the MPM solver
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MTOL = 1.0e-13 // minimum node mass to compute a velocity

// Grid holds the lattice topology (fixed after construction) and the node
// accumulators (reset at the beginning of every step)
type Grid struct {

	// topology: read-only during simulation
	Ndim   int       // space dimension
	Xmin   []float64 // lattice origin [ndim]
	Xmax   []float64 // opposite corner [ndim]
	H      float64   // node spacing (same for all axes)
	Ndiv   []int     // number of cells along each axis [ndim]
	Npts   []int     // number of nodes along each axis [ndim]
	Nnodes int       // total number of nodes

	// step-scoped accumulators
	Mass []float64   // [nnodes] accumulated mass
	Mom  [][]float64 // [nnodes][ndim] accumulated momentum
	Frc  [][]float64 // [nnodes][ndim] accumulated force
	Vel  [][]float64 // [nnodes][ndim] velocity, computed by Integrate
	Vold [][]float64 // [nnodes][ndim] velocity before force integration (for FLIP)
}

// New allocates a lattice covering [xmin,xmax] with node spacing h.
// The extent along each axis must be an integer multiple of h (within
// a relative tolerance of 1e-10)
func New(xmin, xmax []float64, h float64) (o *Grid, err error) {

	// check input
	ndim := len(xmin)
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. ndim=%d is invalid", ndim)
	}
	if len(xmax) != ndim {
		return nil, chk.Err("xmin and xmax must have the same dimension. %d != %d", ndim, len(xmax))
	}
	if !(h > 0) || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, chk.Err("node spacing must be positive. h=%v is invalid", h)
	}

	// topology
	o = new(Grid)
	o.Ndim = ndim
	o.Xmin = make([]float64, ndim)
	o.Xmax = make([]float64, ndim)
	o.H = h
	o.Ndiv = make([]int, ndim)
	o.Npts = make([]int, ndim)
	o.Nnodes = 1
	for j := 0; j < ndim; j++ {
		l := xmax[j] - xmin[j]
		if !(l > 0) {
			return nil, chk.Err("lattice extent along axis %d is not positive: xmin=%v xmax=%v", j, xmin[j], xmax[j])
		}
		n := math.Floor(l/h + 0.5)
		if math.Abs(l-n*h) > 1e-10*l {
			return nil, chk.Err("lattice extent along axis %d must be a multiple of h=%g. l=%g is invalid", j, h, l)
		}
		o.Xmin[j] = xmin[j]
		o.Xmax[j] = xmax[j]
		o.Ndiv[j] = int(n)
		o.Npts[j] = int(n) + 1
		o.Nnodes *= o.Npts[j]
	}

	// accumulators
	o.Mass = make([]float64, o.Nnodes)
	o.Mom = la.MatAlloc(o.Nnodes, ndim)
	o.Frc = la.MatAlloc(o.Nnodes, ndim)
	o.Vel = la.MatAlloc(o.Nnodes, ndim)
	o.Vold = la.MatAlloc(o.Nnodes, ndim)
	return
}

// NodeCoords computes the position of node n
//  Note: node ids follow x-slowest ordering; e.g. in 2D: n = ix*npy + iy
func (o *Grid) NodeCoords(n int, x []float64) {
	switch o.Ndim {
	case 2:
		x[0] = o.Xmin[0] + float64(n/o.Npts[1])*o.H
		x[1] = o.Xmin[1] + float64(n%o.Npts[1])*o.H
	case 3:
		nyz := o.Npts[1] * o.Npts[2]
		x[0] = o.Xmin[0] + float64(n/nyz)*o.H
		x[1] = o.Xmin[1] + float64((n%nyz)/o.Npts[2])*o.H
		x[2] = o.Xmin[2] + float64(n%o.Npts[2])*o.H
	}
}

// Reset zeroes all node accumulators. Must be called before every
// particle-to-grid transfer
func (o *Grid) Reset() {
	for n := 0; n < o.Nnodes; n++ {
		o.Mass[n] = 0
		for j := 0; j < o.Ndim; j++ {
			o.Mom[n][j] = 0
			o.Frc[n][j] = 0
			o.Vel[n][j] = 0
			o.Vold[n][j] = 0
		}
	}
}

// Integrate converts the accumulated momentum and force of each node into an
// updated velocity:
//  v = p/m + (f/m + g)·dt   for m > MTOL
//  v = 0                    otherwise (decoupled node)
// Boundary conditions, if given, are applied strictly after the physics
// update and are authoritative regardless of the accumulated forces
func (o *Grid) Integrate(dt float64, grav []float64, bcs *DirichletBox) {
	for n := 0; n < o.Nnodes; n++ {
		if o.Mass[n] > MTOL {
			cf := 1.0 / o.Mass[n]
			for j := 0; j < o.Ndim; j++ {
				o.Vold[n][j] = o.Mom[n][j] * cf
				o.Vel[n][j] = o.Vold[n][j] + (o.Frc[n][j]*cf+grav[j])*dt
			}
		} else {
			for j := 0; j < o.Ndim; j++ {
				o.Vold[n][j] = 0
				o.Vel[n][j] = 0
			}
		}
	}
	if bcs != nil {
		bcs.Apply(o)
	}
}
