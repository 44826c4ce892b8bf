// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// cubic B-spline kernel: support over four nodes per axis. nodes on and next
// to a domain wall use corrected splines so that the partition of unity is
// kept up to the wall [DeVaucorbeil et al., MPM after 25 years]

// add kernel to factory
func init() {
	factory["cub"] = func() *Kernel {
		return &Kernel{
			Type: "cub",
			Span: 4,
			Lo:   -1,
			Base: cubBase,
		}
	}
}

// cubBase computes the 1D cubic B-spline basis. The branch is selected by the
// node offset w.r.t. the particle's cell: off=-1 => r ∈ [1,2], off=0 =>
// r ∈ [0,1], off=1 => r ∈ [-1,0], off=2 => r ∈ [-2,-1]
func cubBase(r float64, off, species int) (s, dsdr float64) {
	switch off {

	case -1:
		s = ((-r/6.0+1.0)*r-2.0)*r + 4.0/3.0
		dsdr = (-0.5*r+2.0)*r - 2.0

	case 0:
		switch species {
		case WallLo, WallHi:
			s = (r*r/6.0-1.0)*r + 1.0
			dsdr = 0.5*r*r - 1.0
		case PadHi:
			s = (r/3.0-1.0)*r*r + 2.0/3.0
			dsdr = r * (r - 2.0)
		default:
			s = (0.5*r-1.0)*r*r + 2.0/3.0
			dsdr = (1.5*r - 2.0) * r
		}

	case 1:
		switch species {
		case WallLo, WallHi:
			s = (-r*r/6.0+1.0)*r + 1.0
			dsdr = -0.5*r*r + 1.0
		case PadLo:
			s = (-r/3.0-1.0)*r*r + 2.0/3.0
			dsdr = (-r - 2.0) * r
		default:
			s = (-0.5*r-1.0)*r*r + 2.0/3.0
			dsdr = (-1.5*r - 2.0) * r
		}

	case 2:
		s = ((r/6.0+1.0)*r+2.0)*r + 4.0/3.0
		dsdr = (0.5*r+2.0)*r + 2.0
	}
	return
}
