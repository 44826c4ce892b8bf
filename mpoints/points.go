// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpoints implements the Lagrangian set of material points carrying
// mass, volume, deformation and stress state through the simulation
package mpoints

import (
	"math"

	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// Point holds the state of one material point
type Point struct {

	// identification
	Id  int // index in the set
	Mat int // material group index

	// primary state
	X []float64 // position [ndim]
	V []float64 // velocity [ndim]
	M float64   // mass; constant after creation

	// volume
	Vol0 float64 // initial volume
	Vol  float64 // current volume = det(F)·Vol0

	// deformation
	F [][]float64 // deformation gradient [3][3]; identity at creation
	L [][]float64 // velocity gradient of the last gather [3][3]
	B [][]float64 // affine velocity matrix (APIC transfer) [3][3]

	// stress and internal variables
	Sta *msolid.State
}

// PointSet owns all material points. Points are created once from the
// initial conditions and never destroyed; the count is invariant
type PointSet struct {
	Ndim int      // space dimension
	All  []*Point // all points
}

// NewPointSet creates an empty set
func NewPointSet(ndim int) (o *PointSet, err error) {
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("space dimension must be 2 or 3. ndim=%d is invalid", ndim)
	}
	return &PointSet{Ndim: ndim}, nil
}

// AddBlock fills a box with regularly spaced points, ppc per cell per axis.
// The spacing is h/ppc and points sit at the centres of the subcells, so a
// block aligned with the lattice gets the optimal cell population.
//  Input:
//   x0   -- lower corner of the block [ndim]
//   dims -- side lengths of the block [ndim]
//   h    -- lattice cell size
//   ppc  -- points per cell per axis; e.g. 2 => 4 points per 2D cell
//   ρ    -- initial mass density
//   mat  -- material group index
func (o *PointSet) AddBlock(x0, dims []float64, h float64, ppc int, ρ float64, mat int) (err error) {

	// check input
	if len(x0) != o.Ndim || len(dims) != o.Ndim {
		return chk.Err("block corner and dimensions must have ndim=%d components", o.Ndim)
	}
	if ppc < 1 {
		return chk.Err("points per cell ppc=%d is invalid", ppc)
	}
	if !(ρ > 0) || math.IsNaN(ρ) || math.IsInf(ρ, 0) {
		return chk.Err("density ρ=%v must be positive and finite", ρ)
	}
	if !(h > 0) {
		return chk.Err("cell size h=%v must be positive", h)
	}
	for j := 0; j < o.Ndim; j++ {
		if !(dims[j] > 0) {
			return chk.Err("block dimension dims[%d]=%v must be positive", j, dims[j])
		}
	}

	// subcell spacing and volume
	dx := h / float64(ppc)
	vol := math.Pow(dx, float64(o.Ndim))

	// number of points along each axis
	n := make([]int, 3)
	for j := 0; j < 3; j++ {
		n[j] = 1
	}
	for j := 0; j < o.Ndim; j++ {
		n[j] = int(math.Floor(dims[j]/dx + 0.5))
		if n[j] < 1 {
			n[j] = 1
		}
	}

	// create points at subcell centres
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				x := make([]float64, o.Ndim)
				x[0] = x0[0] + (float64(i)+0.5)*dx
				x[1] = x0[1] + (float64(j)+0.5)*dx
				if o.Ndim == 3 {
					x[2] = x0[2] + (float64(k)+0.5)*dx
				}
				o.append(x, vol, ρ*vol, mat)
			}
		}
	}
	return
}

// append adds one point with identity deformation gradient
func (o *PointSet) append(x []float64, vol, m float64, mat int) {
	p := &Point{
		Id:   len(o.All),
		Mat:  mat,
		X:    x,
		V:    make([]float64, o.Ndim),
		M:    m,
		Vol0: vol,
		Vol:  vol,
		F:    la.MatAlloc(3, 3),
		L:    la.MatAlloc(3, 3),
		B:    la.MatAlloc(3, 3),
	}
	for i := 0; i < 3; i++ {
		p.F[i][i] = 1
	}
	o.All = append(o.All, p)
}

// InitStates allocates the stress state of every point using the model of
// its material group. σ0 may be nil for a stress-free initial state
func (o *PointSet) InitStates(models []msolid.Model, σ0 []float64) (err error) {
	nsig := 2 * o.Ndim
	if σ0 == nil {
		σ0 = make([]float64, nsig)
	}
	for _, p := range o.All {
		if p.Mat < 0 || p.Mat >= len(models) {
			return chk.Err("point %d has no model for material group %d", p.Id, p.Mat)
		}
		p.Sta, err = models[p.Mat].InitIntVars(σ0)
		if err != nil {
			return
		}
	}
	return
}

// Npoints returns the number of points
func (o *PointSet) Npoints() int { return len(o.All) }

// TotalMass returns the sum of point masses
func (o *PointSet) TotalMass() (m float64) {
	for _, p := range o.All {
		m += p.M
	}
	return
}

// TotalMomentum sums point momenta into res
func (o *PointSet) TotalMomentum(res []float64) {
	for j := 0; j < o.Ndim; j++ {
		res[j] = 0
	}
	for _, p := range o.All {
		for j := 0; j < o.Ndim; j++ {
			res[j] += p.M * p.V[j]
		}
	}
}

// KineticEnergy returns the total kinetic energy
func (o *PointSet) KineticEnergy() (ke float64) {
	for _, p := range o.All {
		for j := 0; j < o.Ndim; j++ {
			ke += 0.5 * p.M * p.V[j] * p.V[j]
		}
	}
	return
}

// accessors (read-only: copies are returned) //////////////////////////////////////////////////////

// Positions returns a copy of all point positions
func (o *PointSet) Positions() (X [][]float64) {
	X = la.MatAlloc(len(o.All), o.Ndim)
	for i, p := range o.All {
		copy(X[i], p.X)
	}
	return
}

// Velocities returns a copy of all point velocities
func (o *PointSet) Velocities() (V [][]float64) {
	V = la.MatAlloc(len(o.All), o.Ndim)
	for i, p := range o.All {
		copy(V[i], p.V)
	}
	return
}

// Stresses returns a copy of all point stress vectors
func (o *PointSet) Stresses() (S [][]float64) {
	S = la.MatAlloc(len(o.All), 2*o.Ndim)
	for i, p := range o.All {
		copy(S[i], p.Sta.Sig)
	}
	return
}

// Volumes returns a copy of all point volumes
func (o *PointSet) Volumes() (V []float64) {
	V = make([]float64, len(o.All))
	for i, p := range o.All {
		V[i] = p.Vol
	}
	return
}

// Pressures returns the mean pressure (positive in compression) of all points
func (o *PointSet) Pressures() (P []float64) {
	P = make([]float64, len(o.All))
	for i, p := range o.All {
		P[i] = tsr.M_p(p.Sta.Sig)
	}
	return
}
