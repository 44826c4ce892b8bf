// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveHist := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGompm -- Go Material Point Method\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save history", "saveHist", saveHist,
		))
	}

	// analysis data
	analysis, err := mpm.NewMPM(fnamepath, erasePrev, verbose)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}

	// history of results
	var hist *out.History
	if saveHist {
		hist = out.NewHistory(analysis.Sim.DirOut, fnkey, analysis.Dom)
		analysis.Out = hist.OutFcn(analysis.Dom)
	}

	// run simulation
	if err := analysis.Run(); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save history
	if saveHist {
		if err := hist.Save(); err != nil {
			chk.Panic("cannot save history:\n%v", err)
		}
		if verbose {
			io.Pf("\nhistory saved in %s\n", analysis.Sim.DirOut)
		}
	}
}
