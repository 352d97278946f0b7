package component

import (
	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/d3"
)

// Body2D is the planar body record: pose, velocities, aggregated mass
// properties, locked axes, and dominance.
var Body2D = NewComponentKind[d2.Body]()

// Colliders2D is the planar collider set whose mass contributions are folded
// into the entity's Body2D record as colliders attach and detach.
var Colliders2D = NewComponentKind[d2.ColliderSet]()

// Body3D is the spatial body record.
var Body3D = NewComponentKind[d3.Body]()

// Colliders3D is the spatial collider set paired with Body3D.
var Colliders3D = NewComponentKind[d3.ColliderSet]()

// Name is an optional label carried over from scene specs, used by debug
// overlays and scripts.
var Name = NewComponentKind[string]()
