// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"runtime"

	"github.com/cpmech/gompm/grid"
	"github.com/cpmech/gompm/inp"
	"github.com/cpmech/gompm/mpoints"
	"github.com/cpmech/gompm/msolid"
	"github.com/cpmech/gompm/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// workspace holds the private scratchpad of one concurrent worker. Each worker
// scatters into its own partial lattice fields; the partials are merged in a
// fixed order so runs are deterministic regardless of scheduling
type workspace struct {

	// partial lattice fields
	mass []float64   // nodal mass contributions [nnodes]
	mom  [][]float64 // nodal momentum contributions [nnodes][ndim]
	frc  [][]float64 // nodal force contributions [nnodes][ndim]

	// per-point scratch
	kern *shp.Kernel // private kernel; Calc uses internal scratch
	S    []float64   // kernel values
	G    [][]float64 // kernel gradients
	nids []int       // node ids touched by the point
	xn   []float64   // node coordinates [ndim]
	dx   []float64   // node minus point position [ndim]
	vtmp []float64   // point velocity field at a node [ndim]
	vpic []float64   // gathered lattice velocity [ndim]
	dv   []float64   // gathered lattice velocity change [ndim]
	bnew [][]float64 // gathered affine matrix [3][3]
	ftmp [][]float64 // new deformation gradient [3][3]
	finv [][]float64 // inverse of deformation gradient [3][3]

	// first failure seen by this worker
	err error
}

func newWorkspace(nnodes, ndim, maxn int) *workspace {
	return &workspace{
		mass: make([]float64, nnodes),
		mom:  la.MatAlloc(nnodes, ndim),
		frc:  la.MatAlloc(nnodes, ndim),
		S:    make([]float64, maxn),
		G:    la.MatAlloc(maxn, ndim),
		nids: make([]int, maxn),
		xn:   make([]float64, ndim),
		dx:   make([]float64, ndim),
		vtmp: make([]float64, ndim),
		vpic: make([]float64, ndim),
		dv:   make([]float64, ndim),
		bnew: la.MatAlloc(3, 3),
		ftmp: la.MatAlloc(3, 3),
		finv: la.MatAlloc(3, 3),
	}
}

// zero clears the partial lattice fields
func (o *workspace) zero() {
	for n := 0; n < len(o.mass); n++ {
		o.mass[n] = 0
		for j := 0; j < len(o.mom[n]); j++ {
			o.mom[n][j] = 0
			o.frc[n][j] = 0
		}
	}
}

// Domain holds the lattice, the material points, the kernel and the models of
// one simulation. It also owns the worker pool and the backup buffers that
// make steps atomic
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data

	// essential
	Grd  *grid.Grid          // background lattice
	Bcs  *grid.DirichletBox  // wall boundary conditions
	Pts  *mpoints.PointSet   // material points
	Kern *shp.Kernel         // interpolation kernel
	Mdls []msolid.Model      // one model per material group
	Trf  Transfer            // velocity transfer strategy

	// gravity
	Grav     []float64 // body acceleration vector [ndim]
	GravMult dbf.T     // gravity multiplier function of time

	// concurrency
	Nproc int          // number of workers
	Wrk   []*workspace // worker scratchpads

	// backup buffers for atomic steps
	bkpX   [][]float64
	bkpV   [][]float64
	bkpF   [][][]float64
	bkpB   [][][]float64
	bkpVol []float64
	bkpSta []*msolid.State
}

// NewDomain creates the lattice, the points and the models from the input data
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// essential
	o = &Domain{Sim: sim}
	ndim := sim.Ndim
	o.Grd, err = grid.New(sim.Grid.Xmin, sim.Grid.Xmax, sim.Grid.Hcell)
	if err != nil {
		return nil, err
	}

	// kernel
	o.Kern = shp.Get(sim.Solver.Kernel)
	if o.Kern == nil {
		return nil, chk.Err("cannot find kernel named %q", sim.Solver.Kernel)
	}
	for j := 0; j < ndim; j++ {
		if o.Grd.Ndiv[j] < o.Kern.Span {
			return nil, chk.Err("lattice must have at least %d cells along axis %d for kernel %q; box has %d",
				o.Kern.Span, j, o.Kern.Type, o.Grd.Ndiv[j])
		}
	}

	// wall boundary conditions
	width := sim.Grid.BcWidth
	if width < 1 {
		width = 1
	}
	o.Bcs = grid.NewDirichletBox(ndim, grid.FreeBC, width)
	for _, bc := range sim.Grid.Bcs {
		axis, side, e := inp.WallIndex(bc.Face, ndim)
		if e != nil {
			return nil, e
		}
		bctype := grid.FreeBC
		switch bc.Type {
		case "stick":
			bctype = grid.StickBC
		case "slip":
			bctype = grid.SlipBC
		}
		if err = o.Bcs.SetWall(axis, side, bctype); err != nil {
			return nil, err
		}
	}

	// models, one per material group
	mat2group := make(map[string]int)
	for _, blk := range sim.Blocks {
		if _, ok := mat2group[blk.Mat]; ok {
			continue
		}
		mat := sim.MatParams.Get(blk.Mat)
		if mat == nil {
			return nil, chk.Err("cannot find material %q in database", blk.Mat)
		}
		mdl, e := msolid.New(mat.Model)
		if e != nil {
			return nil, e
		}
		if err = mdl.Init(ndim, mat.Prms); err != nil {
			return nil, chk.Err("cannot initialise model of material %q:\n%v", blk.Mat, err)
		}
		mat2group[blk.Mat] = len(o.Mdls)
		o.Mdls = append(o.Mdls, mdl)
	}

	// material points
	o.Pts, err = mpoints.NewPointSet(ndim)
	if err != nil {
		return nil, err
	}
	for _, blk := range sim.Blocks {
		if err = o.Pts.AddBlock(blk.X0, blk.Dims, sim.Grid.Hcell, blk.Ppc, blk.Rho, mat2group[blk.Mat]); err != nil {
			return nil, err
		}
	}
	if err = o.Pts.InitStates(o.Mdls, nil); err != nil {
		return nil, err
	}

	// points must start inside the box
	for _, p := range o.Pts.All {
		for j := 0; j < ndim; j++ {
			if p.X[j] < o.Grd.Xmin[j] || p.X[j] > o.Grd.Xmax[j] {
				return nil, chk.Err("point %d starts outside the lattice box: x=%v", p.Id, p.X)
			}
		}
	}

	// transfer strategy
	o.Trf, err = NewTransfer(sim.Solver.Transfer, sim.Solver.Alpha)
	if err != nil {
		return nil, err
	}
	if err = o.Trf.Init(sim.Grid.Hcell, sim.Solver.Kernel); err != nil {
		return nil, err
	}

	// gravity
	o.Grav = sim.Gravity
	o.GravMult = sim.GravMult

	// workers
	o.Nproc = sim.Solver.Nproc
	if o.Nproc < 1 {
		o.Nproc = runtime.NumCPU()
	}
	if o.Nproc > o.Pts.Npoints() && o.Pts.Npoints() > 0 {
		o.Nproc = o.Pts.Npoints()
	}
	if o.Nproc < 1 {
		o.Nproc = 1
	}
	maxn := o.Kern.Npts(ndim)
	o.Wrk = make([]*workspace, o.Nproc)
	for i := 0; i < o.Nproc; i++ {
		o.Wrk[i] = newWorkspace(o.Grd.Nnodes, ndim, maxn)
		o.Wrk[i].kern = shp.Get(sim.Solver.Kernel)
	}

	// backup buffers
	np := o.Pts.Npoints()
	o.bkpX = la.MatAlloc(np, ndim)
	o.bkpV = la.MatAlloc(np, ndim)
	o.bkpVol = make([]float64, np)
	o.bkpF = make([][][]float64, np)
	o.bkpB = make([][][]float64, np)
	o.bkpSta = make([]*msolid.State, np)
	for i, p := range o.Pts.All {
		o.bkpF[i] = la.MatAlloc(3, 3)
		o.bkpB[i] = la.MatAlloc(3, 3)
		o.bkpSta[i] = p.Sta.GetCopy()
	}
	return
}

// backup records the point states at the beginning of a step
func (o *Domain) backup() {
	for i, p := range o.Pts.All {
		copy(o.bkpX[i], p.X)
		copy(o.bkpV[i], p.V)
		o.bkpVol[i] = p.Vol
		la.MatCopy(o.bkpF[i], 1, p.F)
		la.MatCopy(o.bkpB[i], 1, p.B)
		o.bkpSta[i].Set(p.Sta)
	}
}

// restore brings the point states back to the beginning of the step
func (o *Domain) restore() {
	for i, p := range o.Pts.All {
		copy(p.X, o.bkpX[i])
		copy(p.V, o.bkpV[i])
		p.Vol = o.bkpVol[i]
		la.MatCopy(p.F, 1, o.bkpF[i])
		la.MatCopy(p.B, 1, o.bkpB[i])
		p.Sta.Set(o.bkpSta[i])
	}
}

// chunk returns the range [lo,hi) of points assigned to worker i
func (o *Domain) chunk(i int) (lo, hi int) {
	np := o.Pts.Npoints()
	size := np / o.Nproc
	rem := np % o.Nproc
	lo = i * size
	if i < rem {
		lo += i
	} else {
		lo += rem
	}
	hi = lo + size
	if i < rem {
		hi++
	}
	return
}
