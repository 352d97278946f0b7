package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rigid/d3"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
)

// Integrate3D is the spatial counterpart of Integrate2D. Orientation
// advances by the world-space angular velocity through the quaternion
// derivative.
type Integrate3D struct {
	Gravity mgl64.Vec3
	Dt      float64
}

func (s *Integrate3D) Update(w *ecs.World) {
	if s == nil || s.Dt <= 0 {
		return
	}
	ecs.ForEach(w, component.Body3D, func(_ ecs.Entity, body *d3.Body) {
		body.PreviousPosition = body.Position
		body.PreviousRotation = body.Rotation
		body.PreSolveLinearVelocity = body.LinearVelocity
		body.PreSolveAngularVelocity = body.AngularVelocity

		if body.Kind.IsStatic() {
			body.LinearVelocity = mgl64.Vec3{}
			body.AngularVelocity = mgl64.Vec3{}
			return
		}

		if body.Kind.IsDynamic() && body.InverseMass > 0 {
			body.LinearVelocity = body.LinearVelocity.Add(s.Gravity.Mul(s.Dt))
		}

		for axis := 0; axis < 3; axis++ {
			if body.LockedAxes.TranslationLocked(axis) {
				body.LinearVelocity[axis] = 0
			}
			if body.LockedAxes.RotationLocked(axis) {
				body.AngularVelocity[axis] = 0
			}
		}

		body.AccumulatedTranslation = body.AccumulatedTranslation.Add(body.LinearVelocity.Mul(s.Dt))
		body.Rotation = integrateRotation(body.Rotation, body.AngularVelocity, s.Dt)
	})
}

// integrateRotation advances q by omega over dt:
// q' = normalize(q + (dt/2) * (0, omega) * q).
func integrateRotation(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	if omega == (mgl64.Vec3{}) {
		return q
	}
	spin := mgl64.Quat{W: 0, V: omega}.Mul(q).Scale(dt / 2)
	return q.Add(spin).Normalize()
}

// ApplyTranslation3D commits the accumulated translation of spatial bodies.
type ApplyTranslation3D struct{}

func (ApplyTranslation3D) Update(w *ecs.World) {
	ecs.ForEach(w, component.Body3D, func(_ ecs.Entity, body *d3.Body) {
		if body.AccumulatedTranslation == (mgl64.Vec3{}) {
			return
		}
		body.Position = body.Position.Add(body.AccumulatedTranslation)
		body.AccumulatedTranslation = mgl64.Vec3{}
	})
}
