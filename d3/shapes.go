package d3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape yields the mass properties of a collider geometry at a given
// density. Implementations never fail: degenerate geometry or non-positive
// density produces a massless record.
type Shape interface {
	MassProperties(density float64) MassProperties
}

// Sphere is a solid ball centered at Offset in body space.
type Sphere struct {
	Radius float64
	Offset mgl64.Vec3
}

func (s Sphere) MassProperties(density float64) MassProperties {
	if s.Radius <= 0 {
		return NewMassProperties(0, mgl64.Mat3{}, s.Offset)
	}
	mass := massFor(density, (4.0/3.0)*math.Pi*s.Radius*s.Radius*s.Radius)
	i := 2.0 / 5.0 * mass * s.Radius * s.Radius
	return NewMassProperties(mass, mgl64.Diag3(mgl64.Vec3{i, i, i}), s.Offset)
}

// Cuboid is a solid box with the given full extents, centered at Offset in
// body space, axis aligned.
type Cuboid struct {
	Size   mgl64.Vec3
	Offset mgl64.Vec3
}

func (c Cuboid) MassProperties(density float64) MassProperties {
	x, y, z := c.Size.Elem()
	if x <= 0 || y <= 0 || z <= 0 {
		return NewMassProperties(0, mgl64.Mat3{}, c.Offset)
	}
	mass := massFor(density, x*y*z)
	twelfth := mass / 12
	diag := mgl64.Vec3{
		twelfth * (y*y + z*z),
		twelfth * (x*x + z*z),
		twelfth * (x*x + y*y),
	}
	return NewMassProperties(mass, mgl64.Diag3(diag), c.Offset)
}

// Cylinder is a solid cylinder along the Y axis with the given full Height,
// centered at Offset in body space.
type Cylinder struct {
	Height float64
	Radius float64
	Offset mgl64.Vec3
}

func (c Cylinder) MassProperties(density float64) MassProperties {
	if c.Radius <= 0 || c.Height <= 0 {
		return NewMassProperties(0, mgl64.Mat3{}, c.Offset)
	}
	r, h := c.Radius, c.Height
	mass := massFor(density, math.Pi*r*r*h)
	iY := mass * r * r / 2
	iX := mass * (3*r*r + h*h) / 12
	return NewMassProperties(mass, mgl64.Diag3(mgl64.Vec3{iX, iY, iX}), c.Offset)
}

// Capsule is a solid capsule along the Y axis: a cylinder of the given inner
// Height with hemispherical caps of the given Radius, centered at Offset in
// body space.
type Capsule struct {
	Height float64
	Radius float64
	Offset mgl64.Vec3
}

func (c Capsule) MassProperties(density float64) MassProperties {
	if c.Radius <= 0 || c.Height < 0 {
		return NewMassProperties(0, mgl64.Mat3{}, c.Offset)
	}
	r, h := c.Radius, c.Height
	cylVolume := math.Pi * r * r * h
	capVolume := (4.0 / 3.0) * math.Pi * r * r * r
	mass := massFor(density, cylVolume+capVolume)
	if mass == 0 {
		return NewMassProperties(0, mgl64.Mat3{}, c.Offset)
	}

	mCyl := density * cylVolume
	mCaps := density * capVolume
	iY := mCyl*r*r/2 + mCaps*2*r*r/5
	iX := mCyl*(h*h/12+r*r/4) + mCaps*(2*r*r/5+h*h/4+3*h*r/8)
	return NewMassProperties(mass, mgl64.Diag3(mgl64.Vec3{iX, iY, iX}), c.Offset)
}

func massFor(density, volume float64) float64 {
	if density <= 0 || volume <= 0 {
		return 0
	}
	return density * volume
}
