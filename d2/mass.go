package d2

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MassProperties is the aggregated mass state of a body, or the contribution
// of a single collider. Moment is always expressed about CenterOfMass, and
// CenterOfMass is in body-local space. InverseMass and InverseMoment are
// caches kept in lockstep with the forward values: zero whenever the forward
// value is zero or not finite.
//
// The zero value is a valid massless record and is inert under aggregation.
type MassProperties struct {
	Mass          float64
	InverseMass   float64
	Moment        float64
	InverseMoment float64
	CenterOfMass  cp.Vector
}

// NewMassProperties builds a record from the forward quantities, deriving
// the inverse caches.
func NewMassProperties(mass, moment float64, com cp.Vector) MassProperties {
	return MassProperties{
		Mass:          mass,
		InverseMass:   recip(mass),
		Moment:        moment,
		InverseMoment: recip(moment),
		CenterOfMass:  com,
	}
}

// Combine folds another record into p, as when a collider is attached to a
// body. The result describes the union: summed mass, mass-weighted center of
// mass, and both moments shifted to the new center before adding. If the
// combined mass is not positive, p is unchanged.
func (p *MassProperties) Combine(other MassProperties) {
	newMass := p.Mass + other.Mass
	if newMass <= 0 {
		return
	}

	com1 := p.CenterOfMass
	com2 := other.CenterOfMass
	newCOM := com1.Mult(p.Mass).Add(com2.Mult(other.Mass)).Mult(1 / newMass)

	i1 := ShiftMoment(p.Moment, p.Mass, newCOM.Sub(com1))
	i2 := ShiftMoment(other.Moment, other.Mass, newCOM.Sub(com2))

	p.Mass = newMass
	p.InverseMass = recip(newMass)
	p.Moment = i1 + i2
	p.InverseMoment = recip(p.Moment)
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
		newCOM = com1.Mult(p.Mass).Sub(com2.Mult(other.Mass)).Mult(1 / newMass)
	}

	i1 := ShiftMoment(p.Moment, p.Mass, newCOM.Sub(com1))
	i2 := ShiftMoment(other.Moment, other.Mass, newCOM.Sub(com2))

	p.Mass = newMass
	p.InverseMass = recip(newMass)
	p.Moment = i1 - i2
	p.InverseMoment = recip(p.Moment)
	p.CenterOfMass = newCOM
}
