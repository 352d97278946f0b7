package entity

import (
	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
	"github.com/milk9111/rigid/scene"
)

// ScriptAPI builds the immutable map of functions scene scripts call. Every
// function degrades to undefined or false instead of erroring, so a sloppy
// script cannot crash the step.
func ScriptAPI(w *ecs.World) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["spawn_circle"] = &tengo.UserFunction{Name: "spawn_circle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if w == nil || len(args) < 4 {
			return tengo.UndefinedValue, nil
		}
		spec := scene.BodySpec{
			Position: scene.Vec2Spec{X: objectAsFloat(args[0]), Y: objectAsFloat(args[1])},
			Colliders: []scene.ColliderSpec{{
				Type:    "circle",
				Radius:  objectAsFloat(args[2]),
				Density: objectAsFloat(args[3]),
			}},
		}
		e, err := Spawn2D(w, spec)
		if err != nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(e)}, nil
	}}

	values["spawn_box"] = &tengo.UserFunction{Name: "spawn_box", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if w == nil || len(args) < 5 {
			return tengo.UndefinedValue, nil
		}
		spec := scene.BodySpec{
			Position: scene.Vec2Spec{X: objectAsFloat(args[0]), Y: objectAsFloat(args[1])},
			Colliders: []scene.ColliderSpec{{
				Type:    "box",
				Width:   objectAsFloat(args[2]),
				Height:  objectAsFloat(args[3]),
				Density: objectAsFloat(args[4]),
			}},
		}
		e, err := Spawn2D(w, spec)
		if err != nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(e)}, nil
	}}

	values["despawn"] = &tengo.UserFunction{Name: "despawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if w == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if Despawn(w, ecs.Entity(objectAsInt(args[0]))) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["set_linear_velocity"] = &tengo.UserFunction{Name: "set_linear_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if w == nil || len(args) < 3 {
			return tengo.FalseValue, nil
		}
		body, ok := ecs.Get(w, ecs.Entity(objectAsInt(args[0])), component.Body2D)
		if !ok {
			return tengo.FalseValue, nil
		}
		body.LinearVelocity = cp.Vector{X: objectAsFloat(args[1]), Y: objectAsFloat(args[2])}
		return tengo.TrueValue, nil
	}}

	// apply_impulse scales by the effective inverse mass, so impulses along
	// locked axes and impulses on massless bodies fall away on their own.
	values["apply_impulse"] = &tengo.UserFunction{Name: "apply_impulse", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if w == nil || len(args) < 3 {
			return tengo.FalseValue, nil
		}
		body, ok := ecs.Get(w, ecs.Entity(objectAsInt(args[0])), component.Body2D)
		if !ok {
			return tengo.FalseValue, nil
		}
		inverseMass := body.EffectiveInverseMass()
		body.LinearVelocity.X += objectAsFloat(args[1]) * inverseMass.X
		body.LinearVelocity.Y += objectAsFloat(args[2]) * inverseMass.Y
		return tengo.TrueValue, nil
	}}

	values["body_count"] = &tengo.UserFunction{Name: "body_count", Value: func(...tengo.Object) (tengo.Object, error) {
		var count int64
		ecs.ForEach(w, component.Body2D, func(ecs.Entity, *d2.Body) {
			count++
		})
		return &tengo.Int{Value: count}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}

func objectAsInt(obj tengo.Object) int64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return v.Value
	case *tengo.Float:
		return int64(v.Value)
	default:
		return 0
	}
}
