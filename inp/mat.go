// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds the definition of one material
type Material struct {
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of constitutive model; e.g. "elast", "mui", "nfluid"
	Prms  dbf.Params `json:"prms"`  // model parameters
}

// Mats is a collection of materials
type Mats []*Material

// MatDb implements the materials database
type MatDb struct {
	Materials Mats `json:"materials"` // all materials
}

// ReadMat reads the materials database from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	if fn == "" {
		return nil, chk.Err("ReadMat: materials file name is empty")
	}
	fpath := filepath.Join(os.ExpandEnv(dir), fn)
	b, err := io.ReadFile(fpath)
	if err != nil {
		return nil, chk.Err("ReadMat: cannot read materials file %q", fpath)
	}
	mdb = new(MatDb)
	if err = json.Unmarshal(b, mdb); err != nil {
		return nil, chk.Err("ReadMat: cannot unmarshal materials file %q:\n%v", fpath, err)
	}
	for i, mat := range mdb.Materials {
		if mat.Name == "" {
			return nil, chk.Err("ReadMat: material %d has no name", i)
		}
		if mat.Model == "" {
			return nil, chk.Err("ReadMat: material %q has no model name", mat.Name)
		}
		if mdb.GetIndex(mat.Name) != i {
			return nil, chk.Err("ReadMat: material name %q is duplicated", mat.Name)
		}
	}
	return
}

// Get returns a material by name or nil if not found
func (o *MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetIndex returns the index of a material by name or -1 if not found
func (o *MatDb) GetIndex(name string) int {
	for i, mat := range o.Materials {
		if mat.Name == name {
			return i
		}
	}
	return -1
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("  {\"name\":%q, \"model\":%q, \"prms\" : [\n%v\n  ]}", o.Name, o.Model, o.Prms)
}

// String prints the database
func (o MatDb) String() string {
	l := "{ \"materials\" : [\n"
	for i, mat := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", mat)
	}
	l += "\n] }"
	return l
}
