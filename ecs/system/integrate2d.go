// Package system holds the fixed-step systems: velocity integration for both
// dimensions, translation commit, and the scene script driver.
package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
)

// Integrate2D advances planar bodies by one fixed step. It records the
// previous pose and the pre-solve velocities, applies gravity to dynamic
// bodies with mass, zeroes velocity along locked axes, and accumulates the
// step's translation without committing it. ApplyTranslation2D commits.
type Integrate2D struct {
	Gravity cp.Vector
	Dt      float64
}

func (s *Integrate2D) Update(w *ecs.World) {
	if s == nil || s.Dt <= 0 {
		return
	}
	ecs.ForEach(w, component.Body2D, func(_ ecs.Entity, body *d2.Body) {
		body.PreviousPosition = body.Position
		body.PreviousRotation = body.Rotation
		body.PreSolveLinearVelocity = body.LinearVelocity
		body.PreSolveAngularVelocity = body.AngularVelocity

		if body.Kind.IsStatic() {
			body.LinearVelocity = cp.Vector{}
			body.AngularVelocity = 0
			return
		}

		if body.Kind.IsDynamic() && body.InverseMass > 0 {
			body.LinearVelocity = body.LinearVelocity.Add(s.Gravity.Mult(s.Dt))
		}

		if body.LockedAxes.TranslationLocked(0) {
			body.LinearVelocity.X = 0
		}
		if body.LockedAxes.TranslationLocked(1) {
			body.LinearVelocity.Y = 0
		}
		if body.LockedAxes.RotationLocked(2) {
			body.AngularVelocity = 0
		}

		body.AccumulatedTranslation = body.AccumulatedTranslation.Add(body.LinearVelocity.Mult(s.Dt))
		body.Rotation += body.AngularVelocity * s.Dt
	})
}

// ApplyTranslation2D folds the translation accumulated during the step into
// the committed position and clears it.
type ApplyTranslation2D struct{}

func (ApplyTranslation2D) Update(w *ecs.World) {
	ecs.ForEach(w, component.Body2D, func(_ ecs.Entity, body *d2.Body) {
		if body.AccumulatedTranslation == (cp.Vector{}) {
			return
		}
		body.Position = body.Position.Add(body.AccumulatedTranslation)
		body.AccumulatedTranslation = cp.Vector{}
	})
}
