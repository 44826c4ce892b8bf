// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
)

// boundary condition types @ domain walls
const (
	FreeBC  = iota // nothing is prescribed
	StickBC        // rough wall: all velocity components zeroed
	SlipBC         // frictionless wall: normal velocity component zeroed
)

// DirichletBox prescribes node velocities on the walls of the lattice box.
// Conditions are overrides: they run after Integrate has computed the
// physical node velocities
type DirichletBox struct {
	Ndim  int   // space dimension
	Types []int // [2*ndim] one condition per wall: 2*j (min side) and 2*j+1 (max side) of axis j
	Width int   // number of node layers affected per wall; e.g. 2 for the cubic kernel
}

// NewDirichletBox creates a box with all walls set to the same type
func NewDirichletBox(ndim, bctype, width int) (o *DirichletBox) {
	o = &DirichletBox{Ndim: ndim, Types: make([]int, 2*ndim), Width: width}
	for f := range o.Types {
		o.Types[f] = bctype
	}
	return
}

// SetWall sets the condition of one wall. side is 0 for the min face and 1
// for the max face of the given axis
func (o *DirichletBox) SetWall(axis, side, bctype int) (err error) {
	if axis < 0 || axis >= o.Ndim || side < 0 || side > 1 {
		return chk.Err("wall (axis=%d,side=%d) is invalid for ndim=%d", axis, side, o.Ndim)
	}
	switch bctype {
	case FreeBC, StickBC, SlipBC:
		o.Types[2*axis+side] = bctype
	default:
		return chk.Err("boundary condition type %d is invalid", bctype)
	}
	return
}

// Apply overrides the velocities of wall nodes according to the conditions.
// Nodes shared by two walls receive both overrides
func (o *DirichletBox) Apply(g *Grid) {
	idx := make([]int, 3)
	for n := 0; n < g.Nnodes; n++ {

		// lattice indices of node n
		switch g.Ndim {
		case 2:
			idx[0] = n / g.Npts[1]
			idx[1] = n % g.Npts[1]
		case 3:
			nyz := g.Npts[1] * g.Npts[2]
			idx[0] = n / nyz
			idx[1] = (n % nyz) / g.Npts[2]
			idx[2] = n % g.Npts[2]
		}

		// wall overrides
		for j := 0; j < g.Ndim; j++ {
			onMin := idx[j] < o.Width
			onMax := idx[j] > g.Npts[j]-1-o.Width
			if !onMin && !onMax {
				continue
			}
			t := o.Types[2*j]
			if onMax {
				t = o.Types[2*j+1]
			}
			switch t {
			case StickBC:
				for k := 0; k < g.Ndim; k++ {
					g.Vel[n][k] = 0
				}
			case SlipBC:
				g.Vel[n][j] = 0
			}
		}
	}
}
