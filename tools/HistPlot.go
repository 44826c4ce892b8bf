// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	dirout := io.ArgToString(0, "/tmp/gompm")
	fnkey := io.ArgToString(1, "sim")
	momidx := io.ArgToInt(2, 1)

	// print input data
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"directory with results", "dirout", dirout,
		"simulation key", "fnkey", fnkey,
		"momentum component to plot", "momidx", momidx,
	))

	// read history
	hist, err := out.ReadHistory(dirout, fnkey)
	if err != nil {
		io.PfRed("cannot read history:\n%v\n", err)
		return
	}
	io.Pf("stations = %d\n", hist.Nstations())

	// plots
	hist.PlotEnergy()
	hist.PlotMomentum(momidx)
	hist.PlotPoints(hist.Nstations() - 1)
}
