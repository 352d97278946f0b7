package d3

// Collider pairs a shape with the density it was attached at and the mass
// properties derived from both. The derived record is cached so a detach
// removes exactly the contribution the attach added, even if the shape is
// mutated in between.
type Collider struct {
	Shape          Shape
	Density        float64
	MassProperties MassProperties
}

// NewCollider derives and caches the shape's mass properties at the given
// density. A nil shape yields a massless collider.
func NewCollider(shape Shape, density float64) Collider {
	c := Collider{Shape: shape, Density: density}
	if shape != nil {
		c.MassProperties = shape.MassProperties(density)
	}
	return c
}

// ColliderSet is the ordered collider list of one body.
type ColliderSet []Collider
