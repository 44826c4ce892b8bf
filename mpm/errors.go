// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements the material point method solver: transfer of mass,
// momentum and forces between points and lattice, lattice integration, and
// the update-stress-last time stepping scheme
package mpm

import "github.com/cpmech/gosl/io"

// Phase indicates which stage of a step the solver is in
type Phase int

// phases of one step, in execution order
const (
	PhIdle Phase = iota
	PhGridReset
	PhP2G
	PhGridUpdate
	PhG2P
	PhConstUpdate
)

// String returns the phase name
func (o Phase) String() string {
	switch o {
	case PhIdle:
		return "idle"
	case PhGridReset:
		return "grid-reset"
	case PhP2G:
		return "points-to-grid"
	case PhGridUpdate:
		return "grid-update"
	case PhG2P:
		return "grid-to-points"
	case PhConstUpdate:
		return "constitutive-update"
	}
	return "unknown"
}

// failure kinds
const (
	KindOutOfBounds      = "out-of-bounds"
	KindDegenerate       = "degenerate-deformation"
	KindDecoupled        = "decoupled-particle"
	KindInvalidParameter = "invalid-parameter"
)

// StepError reports a failed step with the phase and the offending entity.
// After a StepError the simulation state is the one from before the step
type StepError struct {
	Phase Phase  // phase where the failure happened
	Kind  string // failure kind
	P     int    // point id or -1
	N     int    // lattice node id or -1
	Inner error  // underlying cause or nil
}

// Error returns a human readable description
func (o *StepError) Error() string {
	l := io.Sf("step failed during %v: %s", o.Phase, o.Kind)
	if o.P >= 0 {
		l += io.Sf(" (point %d)", o.P)
	}
	if o.N >= 0 {
		l += io.Sf(" (node %d)", o.N)
	}
	if o.Inner != nil {
		l += io.Sf(": %v", o.Inner)
	}
	return l
}

// Unwrap returns the underlying cause
func (o *StepError) Unwrap() error { return o.Inner }

// newStepError creates a StepError for a point failure
func newStepError(phase Phase, kind string, p int, inner error) *StepError {
	return &StepError{Phase: phase, Kind: kind, P: p, N: -1, Inner: inner}
}
