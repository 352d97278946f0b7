// Package rigid holds the dimension-independent primitives shared by the
// planar (d2) and spatial (d3) body packages: the body kind, solver
// dominance, and the locked-axes bitmask.
package rigid

import (
	"fmt"
	"math"
)

// BodyKind selects how the simulation treats a body.
type BodyKind uint8

const (
	// Dynamic bodies respond to forces and position corrections.
	Dynamic BodyKind = iota
	// Kinematic bodies move by their velocity and ignore forces.
	Kinematic
	// Static bodies never move.
	Static
)

// IsDynamic reports whether the body responds to forces.
func (k BodyKind) IsDynamic() bool {
	return k == Dynamic
}

// IsKinematic reports whether the body is velocity-driven only.
func (k BodyKind) IsKinematic() bool {
	return k == Kinematic
}

// IsStatic reports whether the body never moves.
func (k BodyKind) IsStatic() bool {
	return k == Static
}

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return fmt.Sprintf("BodyKind(%d)", uint8(k))
	}
}

// ParseBodyKind maps a scene-spec kind name to a BodyKind. The empty string
// means Dynamic.
func ParseBodyKind(s string) (BodyKind, error) {
	switch s {
	case "", "dynamic":
		return Dynamic, nil
	case "kinematic":
		return Kinematic, nil
	case "static":
		return Static, nil
	default:
		return Dynamic, fmt.Errorf("rigid: unknown body kind %q", s)
	}
}

// Dominance biases position correction between dynamic bodies: when two
// bodies conflict, the one with the higher dominance moves less. Bodies that
// are not dynamic always act at DominanceMax.
type Dominance int8

// DominanceMax is the dominance of kinematic and static bodies.
const DominanceMax Dominance = math.MaxInt8
