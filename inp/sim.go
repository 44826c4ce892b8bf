// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gompm
}

// WallBc holds the condition of one wall of the lattice box
type WallBc struct {
	Face string `json:"face"` // "xmin", "xmax", "ymin", "ymax", "zmin", "zmax"
	Type string `json:"type"` // "free", "stick" or "slip"
}

// GridData holds the background lattice definition
type GridData struct {
	Xmin    []float64 `json:"xmin"`    // lower corner of the box [ndim]
	Xmax    []float64 `json:"xmax"`    // upper corner of the box [ndim]
	Hcell   float64   `json:"hcell"`   // cell size; the same along all axes
	Bcs     []*WallBc `json:"bcs"`     // wall boundary conditions; missing walls are free
	BcWidth int       `json:"bcwidth"` // number of node layers affected by each wall; 0 => 1
}

// BlockData holds one box of material points to be generated
type BlockData struct {
	X0   []float64 `json:"x0"`   // lower corner of the block [ndim]
	Dims []float64 `json:"dims"` // side lengths of the block [ndim]
	Ppc  int       `json:"ppc"`  // points per cell per axis; 0 => 2
	Rho  float64   `json:"rho"`  // initial mass density
	Mat  string    `json:"mat"`  // material name from the .mat database
}

// SolverData holds MPM solver data
type SolverData struct {
	Type     string  `json:"type"`     // stepping scheme; "usl" (update stress last)
	Transfer string  `json:"transfer"` // transfer strategy: "picflip" or "apic"
	Alpha    float64 `json:"alpha"`    // PIC/FLIP blend; 0 => pure PIC, 1 => pure FLIP
	Kernel   string  `json:"kernel"`   // interpolation kernel: "lin" or "cub"
	Nproc    int     `json:"nproc"`    // number of concurrent workers; 0 => all CPUs
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "usl"
	o.Transfer = "picflip"
	o.Alpha = 0.99
	o.Kernel = "cub"
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf     float64 `json:"tf"`     // final time
	Dt     float64 `json:"dt"`     // time step size (if constant)
	DtOut  float64 `json:"dtout"`  // time step size for output
	DtFcn  string  `json:"dtfcn"`  // time step size (function name)
	DtoFcn string  `json:"dtofcn"` // output time step size (function name)

	// derived
	DtFunc  dbf.T // time step function
	DtoFunc dbf.T // output time step function
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data         `json:"data"`      // stores global simulation data
	Functions FuncsData    `json:"functions"` // stores all time functions
	Grid      GridData     `json:"grid"`      // background lattice
	Blocks    []*BlockData `json:"blocks"`    // blocks of material points
	Solver    SolverData   `json:"solver"`    // MPM solver data
	Control   TimeControl  `json:"control"`   // time control
	Gravity   []float64    `json:"gravity"`   // body acceleration vector [ndim]
	GravFcn   string       `json:"gravfcn"`   // gravity multiplier (function name); "" => 1

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	MatParams *MatDb // materials' parameters
	Ndim      int    // space dimension
	GravMult  dbf.T  // gravity multiplier function of time
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasefiles bool) (o *Simulation, err error) {

	// read file
	o = new(Simulation)
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm/" + o.Key
	}

	// create directory and erase previous simulation results
	if erasefiles {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// space dimension and lattice box
	o.Ndim = len(o.Grid.Xmin)
	if o.Ndim != 2 && o.Ndim != 3 {
		return nil, chk.Err("ReadSim: space dimension must be 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	if len(o.Grid.Xmax) != o.Ndim {
		return nil, chk.Err("ReadSim: xmin and xmax must have the same dimension")
	}
	if !(o.Grid.Hcell > 0) {
		return nil, chk.Err("ReadSim: cell size hcell=%v must be positive", o.Grid.Hcell)
	}
	for j := 0; j < o.Ndim; j++ {
		if !(o.Grid.Xmax[j] > o.Grid.Xmin[j]) {
			return nil, chk.Err("ReadSim: box is empty along axis %d: [%v,%v]", j, o.Grid.Xmin[j], o.Grid.Xmax[j])
		}
	}

	// wall boundary conditions
	for _, bc := range o.Grid.Bcs {
		if _, _, err = WallIndex(bc.Face, o.Ndim); err != nil {
			return nil, err
		}
		switch bc.Type {
		case "free", "stick", "slip":
		default:
			return nil, chk.Err("ReadSim: wall bc type %q is invalid", bc.Type)
		}
	}

	// solver
	switch o.Solver.Transfer {
	case "picflip", "apic":
	default:
		return nil, chk.Err("ReadSim: transfer strategy %q is invalid", o.Solver.Transfer)
	}
	if o.Solver.Alpha < 0 || o.Solver.Alpha > 1 {
		return nil, chk.Err("ReadSim: blend coefficient alpha=%v must be within [0,1]", o.Solver.Alpha)
	}

	// gravity
	if o.Gravity == nil {
		o.Gravity = make([]float64, o.Ndim)
	}
	if len(o.Gravity) != o.Ndim {
		return nil, chk.Err("ReadSim: gravity vector must have ndim=%d components", o.Ndim)
	}
	for j := 0; j < o.Ndim; j++ {
		if math.IsNaN(o.Gravity[j]) || math.IsInf(o.Gravity[j], 0) {
			return nil, chk.Err("ReadSim: gravity component %d is not finite", j)
		}
	}
	if o.GravFcn == "" {
		o.GravMult = &dbf.Cte{C: 1}
	} else {
		if o.GravMult, err = o.Functions.Get(o.GravFcn); err != nil {
			return nil, err
		}
	}

	// time control
	if o.Control.Tf < 1e-14 {
		o.Control.Tf = 1
	}
	if o.Control.DtFcn == "" {
		if o.Control.Dt < 1e-14 {
			return nil, chk.Err("ReadSim: time step dt=%v must be positive", o.Control.Dt)
		}
		o.Control.DtFunc = &dbf.Cte{C: o.Control.Dt}
	} else {
		if o.Control.DtFunc, err = o.Functions.Get(o.Control.DtFcn); err != nil {
			return nil, err
		}
		o.Control.Dt = o.Control.DtFunc.F(0, nil)
	}
	if o.Control.DtoFcn == "" {
		if o.Control.DtOut < 1e-14 {
			o.Control.DtOut = o.Control.Dt
			o.Control.DtoFunc = o.Control.DtFunc
		} else {
			if o.Control.DtOut < o.Control.Dt {
				o.Control.DtOut = o.Control.Dt
			}
			o.Control.DtoFunc = &dbf.Cte{C: o.Control.DtOut}
		}
	} else {
		if o.Control.DtoFunc, err = o.Functions.Get(o.Control.DtoFcn); err != nil {
			return nil, err
		}
		o.Control.DtOut = o.Control.DtoFunc.F(0, nil)
	}

	// blocks of points
	if len(o.Blocks) < 1 {
		return nil, chk.Err("ReadSim: at least one block of points must be given")
	}
	for i, blk := range o.Blocks {
		if len(blk.X0) != o.Ndim || len(blk.Dims) != o.Ndim {
			return nil, chk.Err("ReadSim: block %d must have ndim=%d corner and dimensions", i, o.Ndim)
		}
		if blk.Ppc == 0 {
			blk.Ppc = 2
		}
		if blk.Ppc < 1 {
			return nil, chk.Err("ReadSim: block %d has invalid ppc=%d", i, blk.Ppc)
		}
		if !(blk.Rho > 0) {
			return nil, chk.Err("ReadSim: block %d has invalid density rho=%v", i, blk.Rho)
		}
		if blk.Mat == "" {
			return nil, chk.Err("ReadSim: block %d has no material name", i)
		}
	}

	// read materials database
	if o.MatParams, err = ReadMat(dir, o.Data.Matfile); err != nil {
		return nil, err
	}
	for i, blk := range o.Blocks {
		if o.MatParams.Get(blk.Mat) == nil {
			return nil, chk.Err("ReadSim: block %d references unknown material %q", i, blk.Mat)
		}
	}
	return
}

// WallIndex maps a face name such as "ymin" to (axis, side).
// side is 0 for the lower wall and 1 for the upper wall
func WallIndex(face string, ndim int) (axis, side int, err error) {
	switch face {
	case "xmin":
	case "xmax":
		side = 1
	case "ymin":
		axis = 1
	case "ymax":
		axis, side = 1, 1
	case "zmin":
		axis = 2
	case "zmax":
		axis, side = 2, 1
	default:
		return 0, 0, chk.Err("wall face name %q is invalid", face)
	}
	if axis >= ndim {
		return 0, 0, chk.Err("wall %q does not exist with ndim=%d", face, ndim)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
