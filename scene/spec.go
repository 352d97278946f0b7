// Package scene loads sandbox scenes: yaml body specs, embedded defaults
// with disk overrides, fsnotify-backed change watching, and tengo scene
// scripts.
package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/rigid/d2"
)

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// ColliderSpec describes one collider of a body. Type selects the shape and
// decides which of the remaining fields matter.
type ColliderSpec struct {
	Type    string     `yaml:"type"`
	Density float64    `yaml:"density"`
	Radius  float64    `yaml:"radius"`
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`
	Offset  Vec2Spec   `yaml:"offset"`
	A       Vec2Spec   `yaml:"a"`
	B       Vec2Spec   `yaml:"b"`
	Verts   []Vec2Spec `yaml:"verts"`
}

// Shape resolves the spec to a concrete shape, or nil when the type is
// unknown.
func (c ColliderSpec) Shape() d2.Shape {
	switch c.Type {
	case "circle":
		return d2.Circle{Radius: c.Radius, Offset: c.Offset.Vector()}
	case "box":
		return d2.Box{Width: c.Width, Height: c.Height, Offset: c.Offset.Vector()}
	case "segment":
		return d2.Segment{A: c.A.Vector(), B: c.B.Vector(), Radius: c.Radius}
	case "capsule":
		return d2.Capsule{Height: c.Height, Radius: c.Radius, Offset: c.Offset.Vector()}
	case "polygon":
		verts := make([]cp.Vector, 0, len(c.Verts))
		for _, v := range c.Verts {
			verts = append(verts, v.Vector())
		}
		return d2.Polygon{Verts: verts, Radius: c.Radius}
	default:
		return nil
	}
}

// BodySpec describes one body to spawn. Kind defaults to dynamic when empty.
type BodySpec struct {
	Name            string         `yaml:"name"`
	Kind            string         `yaml:"kind"`
	Position        Vec2Spec       `yaml:"position"`
	Rotation        float64        `yaml:"rotation"`
	Velocity        Vec2Spec       `yaml:"velocity"`
	AngularVelocity float64        `yaml:"angular_velocity"`
	LockedAxes      []string       `yaml:"locked_axes"`
	Dominance       *int8          `yaml:"dominance"`
	Colliders       []ColliderSpec `yaml:"colliders"`
}

// SceneSpec is a whole sandbox scene. Script names an optional tengo script
// under scene/scripts.
type SceneSpec struct {
	Name    string     `yaml:"name"`
	Gravity Vec2Spec   `yaml:"gravity"`
	Script  string     `yaml:"script"`
	Bodies  []BodySpec `yaml:"bodies"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scene: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scene: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
