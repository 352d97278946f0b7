package d3

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rigid"
)

// Body is the spatial rigid-body record: pose, velocities, and aggregated
// mass state. MassProperties is embedded, so collider aggregation applies
// directly to the body.
//
// Position updates accumulate in AccumulatedTranslation during a solver step
// and are committed afterwards; CurrentPosition is the mid-step query. Use
// NewBody rather than a zero literal: a zero quaternion is not a rotation.
type Body struct {
	Kind rigid.BodyKind

	Position               mgl64.Vec3
	Rotation               mgl64.Quat
	PreviousPosition       mgl64.Vec3
	PreviousRotation       mgl64.Quat
	AccumulatedTranslation mgl64.Vec3

	LinearVelocity          mgl64.Vec3
	AngularVelocity         mgl64.Vec3
	PreSolveLinearVelocity  mgl64.Vec3
	PreSolveAngularVelocity mgl64.Vec3

	MassProperties

	LockedAxes rigid.LockedAxes
	Dominance  *rigid.Dominance
}

// NewBody returns a body of the given kind at the origin with identity
// rotation and no mass.
func NewBody(kind rigid.BodyKind) Body {
	return Body{
		Kind:             kind,
		Rotation:         mgl64.QuatIdent(),
		PreviousRotation: mgl64.QuatIdent(),
	}
}

// CurrentPosition is the body position including translation accumulated
// during the current step but not yet committed.
func (b *Body) CurrentPosition() mgl64.Vec3 {
	return b.Position.Add(b.AccumulatedTranslation)
}

// EffectiveInverseMass is the per-axis inverse mass with locked translation
// axes frozen out.
func (b *Body) EffectiveInverseMass() mgl64.Vec3 {
	invMass := mgl64.Vec3{b.InverseMass, b.InverseMass, b.InverseMass}
	for axis := 0; axis < 3; axis++ {
		if b.LockedAxes.TranslationLocked(axis) {
			invMass[axis] = 0
		}
	}
	return invMass
}

// EffectiveInverseInertia is the inverse inertia tensor rotated into world
// axes, with the row and column of every locked rotation axis zeroed so the
// tensor stays symmetric and locked axes gain no angular velocity.
func (b *Body) EffectiveInverseInertia() mgl64.Mat3 {
	inv := RotateTensor(b.InverseInertia, b.Rotation)
	for axis := 0; axis < 3; axis++ {
		if !b.LockedAxes.RotationLocked(axis) {
			continue
		}
		for i := 0; i < 3; i++ {
			inv.Set(axis, i, 0)
			inv.Set(i, axis, 0)
		}
	}
	return inv
}

// EffectiveDominance is the dominance value the solver compares when two
// bodies fight over a position correction. Bodies that are not dynamic
// always dominate.
func (b *Body) EffectiveDominance() rigid.Dominance {
	if !b.Kind.IsDynamic() {
		return rigid.DominanceMax
	}
	if b.Dominance != nil {
		return *b.Dominance
	}
	return 0
}
