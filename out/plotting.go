// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotEnergy plots the kinetic energy history
func (o *History) PlotEnergy() {
	plt.Reset(true, &plt.A{Prop: 0.75})
	plt.Plot(o.Times(), o.Energies(), &plt.A{C: "b", M: ".", NoClip: true})
	plt.Gll("$t$", "$E_k$", nil)
	plt.Save(o.Dirout, io.Sf("fig_%s_ke", o.Fnkey))
}

// PlotMomentum plots one component of the momentum history
func (o *History) PlotMomentum(j int) {
	P := make([]float64, len(o.Stations))
	for i, st := range o.Stations {
		P[i] = st.Mom[j]
	}
	plt.Reset(true, &plt.A{Prop: 0.75})
	plt.Plot(o.Times(), P, &plt.A{C: "r", M: ".", NoClip: true})
	plt.Gll("$t$", io.Sf("$p_%d$", j), nil)
	plt.Save(o.Dirout, io.Sf("fig_%s_mom%d", o.Fnkey, j))
}

// PlotPoints draws the point cloud of station idx (2D only)
func (o *History) PlotPoints(idx int) {
	st := o.Stations[idx]
	X := make([]float64, len(st.X))
	Y := make([]float64, len(st.X))
	for i, x := range st.X {
		X[i] = x[0]
		Y[i] = x[1]
	}
	plt.Reset(true, &plt.A{Prop: 1})
	plt.Plot(X, Y, &plt.A{C: "k", M: ".", Ls: "none", NoClip: true})
	plt.Equal()
	plt.Gll("$x$", "$y$", nil)
	plt.Save(o.Dirout, io.Sf("fig_%s_pts%d", o.Fnkey, idx))
}
