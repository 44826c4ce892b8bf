// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements interpolation kernels connecting material points
// to the nodes of a regular background lattice
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// constants
const (
	MAXSPAN = 4       // maximum number of influencing nodes per axis
	XTOL    = 1.0e-12 // tolerance for out-of-extent check, in multiples of the node spacing
)

// node species along one axis. nodes near a domain wall use corrected basis
// functions so that the partition of unity holds up to the wall
const (
	Interior = iota // inner node: standard basis
	WallLo          // first node of axis (on the wall)
	PadLo           // second node of axis
	PadHi           // second to last node of axis
	WallHi          // last node of axis (on the wall)
)

// BaseFunc computes the 1D basis value and slope for one influencing node.
//  Input:
//   r       -- signed particle-node distance in multiples of the node spacing
//   off     -- node offset w.r.t. the particle's cell; Lo ≤ off < Lo+Span
//   species -- node species along this axis (Interior, WallLo, ...)
//  Output:
//   s    -- basis value
//   dsdr -- basis slope w.r.t. r
type BaseFunc func(r float64, off, species int) (s, dsdr float64)

// Kernel holds an MPM interpolation kernel
type Kernel struct {
	Type string   // name; e.g. "lin"
	Span int      // number of influencing nodes per axis; e.g. "lin" => 2
	Lo   int      // lowest node offset w.r.t. the particle's cell; e.g. "cub" => -1
	Base BaseFunc // 1D basis callback function

	// scratchpad: per-axis values
	sAx [][]float64 // [3][Span] basis values per axis
	gAx [][]float64 // [3][Span] basis slopes per axis
	iAx [][]int     // [3][Span] node indices per axis
	nAx []int       // [3] number of influencing nodes per axis
}

// factory holds all kernels available
var factory = make(map[string]func() *Kernel)

// Get returns a new Kernel structure
//  Note: returns nil if kernelType is not available or the kernel spans more
//  than MAXSPAN nodes per axis
func Get(kernelType string) *Kernel {
	alloc, ok := factory[kernelType]
	if !ok {
		return nil
	}
	o := alloc()
	if o.Span < 1 || o.Span > MAXSPAN {
		return nil
	}
	o.sAx = make([][]float64, 3)
	o.gAx = make([][]float64, 3)
	o.iAx = make([][]int, 3)
	o.nAx = make([]int, 3)
	for j := 0; j < 3; j++ {
		o.sAx[j] = make([]float64, MAXSPAN)
		o.gAx[j] = make([]float64, MAXSPAN)
		o.iAx[j] = make([]int, MAXSPAN)
	}
	return o
}

// Npts returns the maximum number of influencing nodes for ndim dimensions
func (o *Kernel) Npts(ndim int) (n int) {
	n = 1
	for j := 0; j < ndim; j++ {
		n *= o.Span
	}
	return
}

// species classifies node i along an axis with npts nodes
func species(i, npts int) int {
	switch i {
	case 0:
		return WallLo
	case 1:
		return PadLo
	case npts - 2:
		return PadHi
	case npts - 1:
		return WallHi
	}
	return Interior
}

// Calc evaluates weights, weight gradients and flat ids of all nodes
// influencing one particle. The flat node id follows x-slowest ordering;
// e.g. in 2D: id = ix*npts[1] + iy.
//  Input:
//   x    -- particle position [ndim]
//   xmin -- lattice origin [ndim]
//   h    -- node spacing
//   npts -- number of nodes along each axis [ndim]
//  Output:
//   S    -- [Npts(ndim)] weights
//   G    -- [Npts(ndim)][ndim] weight gradients
//   nids -- [Npts(ndim)] flat ids of influencing nodes
//   n    -- number of influencing nodes actually set
//  Note: Σ S = 1 and Σ G = {0} hold for any in-extent x, to machine precision
func (o *Kernel) Calc(S []float64, G [][]float64, nids []int, x, xmin []float64, h float64, npts []int) (n int, err error) {

	// per-axis basis values
	ndim := len(x)
	for j := 0; j < ndim; j++ {

		// cell containing the particle
		ξ := (x[j] - xmin[j]) / h
		if ξ < -XTOL || ξ > float64(npts[j]-1)+XTOL {
			return 0, chk.Err("particle is outside the lattice extent: x[%d]=%g is not in [%g,%g]", j, x[j], xmin[j], xmin[j]+float64(npts[j]-1)*h)
		}
		c := int(ξ)
		if c > npts[j]-2 {
			c = npts[j] - 2
		}
		if c < 0 {
			c = 0
		}

		// basis per influencing node along this axis
		o.nAx[j] = 0
		for k := 0; k < o.Span; k++ {
			off := o.Lo + k
			i := c + off
			if i < 0 || i > npts[j]-1 {
				continue
			}
			r := ξ - float64(i)
			s, g := o.Base(r, off, species(i, npts[j]))
			m := o.nAx[j]
			o.sAx[j][m] = s
			o.gAx[j][m] = g / h
			o.iAx[j][m] = i
			o.nAx[j]++
		}
	}

	// tensor product across axes
	switch ndim {
	case 2:
		for a := 0; a < o.nAx[0]; a++ {
			for b := 0; b < o.nAx[1]; b++ {
				S[n] = o.sAx[0][a] * o.sAx[1][b]
				G[n][0] = o.gAx[0][a] * o.sAx[1][b]
				G[n][1] = o.sAx[0][a] * o.gAx[1][b]
				nids[n] = o.iAx[0][a]*npts[1] + o.iAx[1][b]
				n++
			}
		}
	case 3:
		for a := 0; a < o.nAx[0]; a++ {
			for b := 0; b < o.nAx[1]; b++ {
				for c := 0; c < o.nAx[2]; c++ {
					S[n] = o.sAx[0][a] * o.sAx[1][b] * o.sAx[2][c]
					G[n][0] = o.gAx[0][a] * o.sAx[1][b] * o.sAx[2][c]
					G[n][1] = o.sAx[0][a] * o.gAx[1][b] * o.sAx[2][c]
					G[n][2] = o.sAx[0][a] * o.sAx[1][b] * o.gAx[2][c]
					nids[n] = (o.iAx[0][a]*npts[1]+o.iAx[1][b])*npts[2] + o.iAx[2][c]
					n++
				}
			}
		}
	default:
		return 0, chk.Err("%d dimensions are not available", ndim)
	}
	return
}
