// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gompm/mpoints"
	"github.com/cpmech/gosl/chk"
)

// Transfer defines how point velocities are scattered to the lattice and
// gathered back. Implementations must be stateless with respect to points so
// that workers can share one instance
type Transfer interface {

	// Name returns the name of this strategy
	Name() string

	// Init sets the lattice dependent coefficients
	//  h      -- cell size
	//  kernel -- kernel type; "lin" or "cub"
	Init(h float64, kernel string) error

	// PointVelocity computes the velocity field of point p evaluated at a
	// node located at x_p + dx. res must have ndim components
	PointVelocity(res []float64, p *mpoints.Point, dx []float64)

	// UpdateVelocity sets the new point velocity from the gathered fields
	//  vpic -- Σ w·v_n         (filtered lattice velocity)
	//  dv   -- Σ w·(v_n - v⁰_n) (lattice velocity change during the step)
	//  bnew -- Σ w·v_n⊗dx      (gathered affine matrix)
	UpdateVelocity(p *mpoints.Point, vpic, dv []float64, bnew [][]float64)
}

// transferallocators maps strategy names to allocators
var transferallocators = map[string]func() Transfer{}

// NewTransfer returns a new transfer strategy
//  alpha is the PIC/FLIP blend and is ignored by strategies without one
func NewTransfer(name string, alpha float64) (Transfer, error) {
	allocator, ok := transferallocators[name]
	if !ok {
		return nil, chk.Err("cannot find transfer strategy named %q", name)
	}
	trf := allocator()
	if pf, ok := trf.(*PicFlip); ok {
		pf.Alpha = alpha
	}
	return trf, nil
}

// PicFlip blends the filtered lattice velocity (PIC) with the velocity change
// added to the point's own velocity (FLIP). Alpha=0 is pure PIC and fully
// damped; Alpha=1 is pure FLIP and keeps all point information
type PicFlip struct {
	Alpha float64
}

func init() {
	transferallocators["picflip"] = func() Transfer { return &PicFlip{Alpha: 0.99} }
	transferallocators["apic"] = func() Transfer { return new(Apic) }
}

// Name returns the name of this strategy
func (o *PicFlip) Name() string { return "picflip" }

// Init is a no-op; the blend does not depend on the lattice
func (o *PicFlip) Init(h float64, kernel string) error { return nil }

// PointVelocity returns the point velocity; the scatter carries no affine part
func (o *PicFlip) PointVelocity(res []float64, p *mpoints.Point, dx []float64) {
	copy(res, p.V)
}

// UpdateVelocity blends PIC and FLIP velocities
func (o *PicFlip) UpdateVelocity(p *mpoints.Point, vpic, dv []float64, bnew [][]float64) {
	for j := 0; j < len(p.V); j++ {
		p.V[j] = (1.0-o.Alpha)*vpic[j] + o.Alpha*(p.V[j]+dv[j])
	}
}

// Apic carries an affine velocity matrix B per point so that angular momentum
// survives the round trip through the lattice
type Apic struct {
	dinv float64 // inverse of the inertia-like scalar of the kernel
}

// Name returns the name of this strategy
func (o *Apic) Name() string { return "apic" }

// Init sets the inverse inertia coefficient of the kernel.
// D = h²/4·I for the tent kernel and h²/3·I for the cubic spline
func (o *Apic) Init(h float64, kernel string) error {
	switch kernel {
	case "lin":
		o.dinv = 4.0 / (h * h)
	case "cub":
		o.dinv = 3.0 / (h * h)
	default:
		return chk.Err("affine transfer has no inertia coefficient for kernel %q", kernel)
	}
	return nil
}

// PointVelocity returns the affine velocity field v_p + C·dx with C = B·D⁻¹
func (o *Apic) PointVelocity(res []float64, p *mpoints.Point, dx []float64) {
	for i := 0; i < len(res); i++ {
		res[i] = p.V[i]
		for j := 0; j < len(dx); j++ {
			res[i] += o.dinv * p.B[i][j] * dx[j]
		}
	}
}

// UpdateVelocity takes the filtered velocity and stores the new affine matrix
func (o *Apic) UpdateVelocity(p *mpoints.Point, vpic, dv []float64, bnew [][]float64) {
	ndim := len(p.V)
	copy(p.V, vpic)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			p.B[i][j] = bnew[i][j]
		}
	}
}
