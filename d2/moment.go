// Package d2 implements mass and moment-of-inertia bookkeeping for planar
// rigid bodies: per-collider mass derivation, aggregation of collider
// contributions into a body record, and the effective inverse properties a
// position-based solver reads.
//
// All operations degrade silently: massless, degenerate, or singular inputs
// produce inert records and zero inverses, never errors.
package d2

import (
	"math"

	"github.com/jakecoffman/cp"
)

// epsilon is the float64 machine epsilon. Aggregation compares against it
// exactly when deciding whether a remainder is effectively massless.
const epsilon = 0x1p-52

// ShiftMoment translates a moment of inertia from a body's center of mass to
// a point offset away from it (parallel-axis theorem). A non-positive or
// non-finite mass leaves the moment unchanged.
func ShiftMoment(moment, mass float64, offset cp.Vector) float64 {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return moment
	}
	return moment + mass*offset.LengthSq()
}

// InvertMoment returns the inverse moment of inertia. Zero or non-finite
// moments invert to zero.
func InvertMoment(moment float64) float64 {
	return recip(moment)
}

func recip(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return 1 / v
}
