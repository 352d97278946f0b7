package d3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MassProperties is the aggregated mass state of a body, or the contribution
// of a single collider. Inertia is always expressed about CenterOfMass on
// body-local axes, and CenterOfMass is in body-local space. InverseMass and
// InverseInertia are caches kept in lockstep with the forward values: zero
// whenever the forward value is zero or singular.
//
// The zero value is a valid massless record and is inert under aggregation.
type MassProperties struct {
	Mass           float64
	InverseMass    float64
	Inertia        mgl64.Mat3
	InverseInertia mgl64.Mat3
	CenterOfMass   mgl64.Vec3
}

// NewMassProperties builds a record from the forward quantities, deriving
// the inverse caches.
func NewMassProperties(mass float64, inertia mgl64.Mat3, com mgl64.Vec3) MassProperties {
	return MassProperties{
		Mass:           mass,
		InverseMass:    recip(mass),
		Inertia:        inertia,
		InverseInertia: InvertTensor(inertia),
		CenterOfMass:   com,
	}
}

// Combine folds another record into p, as when a collider is attached to a
// body. The result describes the union: summed mass, mass-weighted center of
// mass, and both tensors shifted to the new center before adding. If the
// combined mass is not positive, p is unchanged.
func (p *MassProperties) Combine(other MassProperties) {
	newMass := p.Mass + other.Mass
	if newMass <= 0 {
		return
	}

	com1 := p.CenterOfMass
	com2 := other.CenterOfMass
	newCOM := com1.Mul(p.Mass).Add(com2.Mul(other.Mass)).Mul(1 / newMass)

	i1 := ShiftTensor(p.Inertia, p.Mass, newCOM.Sub(com1))
	i2 := ShiftTensor(other.Inertia, other.Mass, newCOM.Sub(com2))

	p.Mass = newMass
	p.InverseMass = recip(newMass)
	p.Inertia = i1.Add(i2)
	p.InverseInertia = InvertTensor(p.Inertia)
	p.CenterOfMass = newCOM
}

// Decombine removes a previously combined record from p, as when a collider
// is detached. If both records are massless the call is a no-op. The
// remaining mass is clamped at zero; when it is effectively massless the
// center of mass is kept rather than derived, so a combine/decombine round
// trip is approximate near zero mass.
func (p *MassProperties) Decombine(other MassProperties) {
	if p.Mass+other.Mass <= 0 {
		return
	}

	newMass := math.Max(p.Mass-other.Mass, 0)
	com1 := p.CenterOfMass
	com2 := other.CenterOfMass
	newCOM := com1
	if newMass > epsilon {
		newCOM = com1.Mul(p.Mass).Sub(com2.Mul(other.Mass)).Mul(1 / newMass)
	}

	i1 := ShiftTensor(p.Inertia, p.Mass, newCOM.Sub(com1))
	i2 := ShiftTensor(other.Inertia, other.Mass, newCOM.Sub(com2))

	p.Mass = newMass
	p.InverseMass = recip(newMass)
	p.Inertia = i1.Sub(i2)
	p.InverseInertia = InvertTensor(p.Inertia)
	p.CenterOfMass = newCOM
}
