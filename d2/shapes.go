package d2

import "github.com/jakecoffman/cp"

// Shape yields the mass properties of a collider geometry at a given
// density. Implementations never fail: degenerate geometry or non-positive
// density produces a massless record.
type Shape interface {
	MassProperties(density float64) MassProperties
}

// Circle is a solid disc centered at Offset in body space.
type Circle struct {
	Radius float64
	Offset cp.Vector
}

func (c Circle) MassProperties(density float64) MassProperties {
	if c.Radius <= 0 {
		return NewMassProperties(0, 0, c.Offset)
	}
	mass := massFor(density, cp.AreaForCircle(0, c.Radius))
	moment := cp.MomentForCircle(mass, 0, c.Radius, cp.Vector{})
	return NewMassProperties(mass, moment, c.Offset)
}

// Box is an axis-aligned solid rectangle centered at Offset in body space.
type Box struct {
	Width  float64
	Height float64
	Offset cp.Vector
}

func (b Box) MassProperties(density float64) MassProperties {
	if b.Width <= 0 || b.Height <= 0 {
		return NewMassProperties(0, 0, b.Offset)
	}
	mass := massFor(density, b.Width*b.Height)
	moment := cp.MomentForBox(mass, b.Width, b.Height)
	return NewMassProperties(mass, moment, b.Offset)
}

// Segment is a rounded line segment between A and B in body space. Its
// center of mass is the midpoint.
type Segment struct {
	A      cp.Vector
	B      cp.Vector
	Radius float64
}

func (s Segment) MassProperties(density float64) MassProperties {
	mid := s.A.Lerp(s.B, 0.5)
	if s.Radius <= 0 {
		return NewMassProperties(0, 0, mid)
	}
	// Center the endpoints so the moment comes out about the midpoint.
	a := s.A.Sub(mid)
	b := s.B.Sub(mid)
	mass := massFor(density, cp.AreaForSegment(a, b, s.Radius))
	moment := cp.MomentForSegment(mass, a, b, s.Radius)
	return NewMassProperties(mass, moment, mid)
}

// Capsule is a vertical rounded segment: an inner segment of the given
// Height with hemispherical caps of the given Radius, centered at Offset.
type Capsule struct {
	Height float64
	Radius float64
	Offset cp.Vector
}

func (c Capsule) MassProperties(density float64) MassProperties {
	if c.Radius <= 0 || c.Height < 0 {
		return NewMassProperties(0, 0, c.Offset)
	}
	half := c.Height / 2
	a := cp.Vector{Y: -half}
	b := cp.Vector{Y: half}
	mass := massFor(density, cp.AreaForSegment(a, b, c.Radius))
	moment := cp.MomentForSegment(mass, a, b, c.Radius)
	return NewMassProperties(mass, moment, c.Offset)
}

// Polygon is a solid polygon, optionally rounded by Radius. Vertices are in
// body space; the center of mass is the polygon centroid.
type Polygon struct {
	Verts  []cp.Vector
	Radius float64
}

func (p Polygon) MassProperties(density float64) MassProperties {
	if len(p.Verts) < 3 {
		return NewMassProperties(0, 0, cp.Vector{})
	}
	count := len(p.Verts)
	centroid := cp.CentroidForPoly(count, p.Verts)
	mass := massFor(density, cp.AreaForPoly(count, p.Verts, p.Radius))
	moment := cp.MomentForPoly(mass, count, p.Verts, centroid.Neg(), p.Radius)
	return NewMassProperties(mass, moment, centroid)
}

func massFor(density, area float64) float64 {
	if density <= 0 || area <= 0 {
		return 0
	}
	return density * area
}
