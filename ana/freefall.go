// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "github.com/cpmech/gosl/fun/dbf"

// FreeFall implements the closed-form motion of a rigid body released from
// rest in a uniform acceleration field
type FreeFall struct {

	// input
	g  float64 // acceleration magnitude (positive, acting downwards)
	y0 float64 // release elevation
}

// Init initialises this structure
func (o *FreeFall) Init(prms dbf.Params) {

	// default values
	o.g = 9.81
	o.y0 = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "g":
			o.g = p.V
		case "y0":
			o.y0 = p.V
		}
	}
}

// Velocity returns the vertical velocity at time t
func (o *FreeFall) Velocity(t float64) float64 {
	return -o.g * t
}

// Elevation returns the elevation at time t
func (o *FreeFall) Elevation(t float64) float64 {
	return o.y0 - 0.5*o.g*t*t
}

// CompareStates checks a simulated state against the closed-form one
//  Output:
//   ev, ey -- velocity and elevation errors (absolute values)
func (o *FreeFall) CompareStates(t, v, y float64) (ev, ey float64) {
	ev = v - o.Velocity(t)
	ey = y - o.Elevation(t)
	if ev < 0 {
		ev = -ev
	}
	if ey < 0 {
		ey = -ey
	}
	return
}
