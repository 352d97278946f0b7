package d2

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid"
)

// Body is the planar rigid-body record: pose, velocities, and aggregated
// mass state. MassProperties is embedded, so collider aggregation applies
// directly to the body.
//
// Position updates accumulate in AccumulatedTranslation during a solver step
// and are committed afterwards; CurrentPosition is the mid-step query.
type Body struct {
	Kind rigid.BodyKind

	Position               cp.Vector
	Rotation               float64 // radians
	PreviousPosition       cp.Vector
	PreviousRotation       float64
	AccumulatedTranslation cp.Vector

	LinearVelocity          cp.Vector
	AngularVelocity         float64
	PreSolveLinearVelocity  cp.Vector
	PreSolveAngularVelocity float64

	MassProperties

	LockedAxes rigid.LockedAxes
	Dominance  *rigid.Dominance
}

// CurrentPosition is the body position including translation accumulated
// during the current step but not yet committed.
func (b *Body) CurrentPosition() cp.Vector {
	return b.Position.Add(b.AccumulatedTranslation)
}

// EffectiveInverseMass is the per-axis inverse mass with locked translation
// axes frozen out.
func (b *Body) EffectiveInverseMass() cp.Vector {
	invMass := cp.Vector{X: b.InverseMass, Y: b.InverseMass}
	if b.LockedAxes.TranslationLocked(0) {
		invMass.X = 0
	}
	if b.LockedAxes.TranslationLocked(1) {
		invMass.Y = 0
	}
	return invMass
}

// EffectiveInverseMoment is the inverse moment of inertia, zero when planar
// rotation is locked. Planar moments are rotation-invariant, so no world
// transform is involved.
func (b *Body) EffectiveInverseMoment() float64 {
	if b.LockedAxes.RotationLocked(2) {
		return 0
	}
	return b.InverseMoment
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
