// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// linear "tent" kernel: support over the two nodes of the particle's cell

// add kernel to factory
func init() {
	factory["lin"] = func() *Kernel {
		return &Kernel{
			Type: "lin",
			Span: 2,
			Lo:   0,
			Base: linBase,
		}
	}
}

// linBase computes the 1D tent basis. r ∈ [0,1] for off=0 and r ∈ [-1,0]
// for off=1, hence no |r| is needed
func linBase(r float64, off, species int) (s, dsdr float64) {
	if off == 0 {
		return 1.0 - r, -1.0
	}
	return 1.0 + r, 1.0
}
