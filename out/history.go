// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results and the post-processing of
// simulation histories
package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Station holds a snapshot of the simulation at one output instant
type Station struct {
	T    float64     `json:"t"`    // time
	Mass float64     `json:"mass"` // total mass
	Mom  []float64   `json:"mom"`  // total momentum [ndim]
	Ke   float64     `json:"ke"`   // total kinetic energy
	X    [][]float64 `json:"x"`    // point positions [npoints][ndim]
	V    [][]float64 `json:"v"`    // point velocities [npoints][ndim]
	Sig  [][]float64 `json:"sig"`  // point stresses [npoints][nsig]
	Vol  []float64   `json:"vol"`  // point volumes [npoints]
}

// History holds the sequence of snapshots of one simulation
type History struct {
	Dirout   string     `json:"-"`        // output directory
	Fnkey    string     `json:"fnkey"`    // simulation key
	Ndim     int        `json:"ndim"`     // space dimension
	Stations []*Station `json:"stations"` // all snapshots in time order
}

// NewHistory creates an empty history bound to a domain
func NewHistory(dirout, fnkey string, dom *mpm.Domain) *History {
	return &History{Dirout: dirout, Fnkey: fnkey, Ndim: dom.Grd.Ndim}
}

// Collect appends one snapshot taken from the domain
func (o *History) Collect(t float64, dom *mpm.Domain) {
	st := &Station{
		T:    t,
		Mass: dom.Pts.TotalMass(),
		Mom:  make([]float64, o.Ndim),
		Ke:   dom.Pts.KineticEnergy(),
		X:    dom.Pts.Positions(),
		V:    dom.Pts.Velocities(),
		Sig:  dom.Pts.Stresses(),
		Vol:  dom.Pts.Volumes(),
	}
	dom.Pts.TotalMomentum(st.Mom)
	o.Stations = append(o.Stations, st)
}

// OutFcn returns the output callback collecting snapshots from dom
func (o *History) OutFcn(dom *mpm.Domain) mpm.OutFcn {
	return func(t float64) error {
		o.Collect(t, dom)
		return nil
	}
}

// Nstations returns the number of collected snapshots
func (o *History) Nstations() int { return len(o.Stations) }

// Times returns the time of every snapshot
func (o *History) Times() (T []float64) {
	T = make([]float64, len(o.Stations))
	for i, st := range o.Stations {
		T[i] = st.T
	}
	return
}

// Energies returns the kinetic energy of every snapshot
func (o *History) Energies() (K []float64) {
	K = make([]float64, len(o.Stations))
	for i, st := range o.Stations {
		K[i] = st.Ke
	}
	return
}

// Save writes the history to dirout/fnkey-hist.json
func (o *History) Save() error {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal history: %v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFileD(o.Dirout, io.Sf("%s-hist.json", o.Fnkey), &buf)
	return nil
}

// ReadHistory reads a history saved by Save
func ReadHistory(dirout, fnkey string) (o *History, err error) {
	fpath := io.Sf("%s/%s-hist.json", dirout, fnkey)
	b, err := io.ReadFile(fpath)
	if err != nil {
		return nil, chk.Err("cannot read history file %q", fpath)
	}
	o = new(History)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal history file %q:\n%v", fpath, err)
	}
	o.Dirout = dirout
	return
}
