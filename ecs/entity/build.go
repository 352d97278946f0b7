// Package entity builds world entities from scene specs and exposes the
// structural operations the sandbox and scene scripts go through: spawning,
// despawning, and collider attachment with mass aggregation.
package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rigid"
	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/d3"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
	"github.com/milk9111/rigid/scene"
)

// ErrNotRigidBody marks operations on entities that carry no body record.
var ErrNotRigidBody = errors.New("entity: not a rigid body")

// Spawn2D creates an entity from a body spec: the body record first, then
// every collider folded into its mass properties. Colliders with an unknown
// shape type are logged and skipped. A spawned event is emitted once the
// entity is complete.
func Spawn2D(w *ecs.World, spec scene.BodySpec) (ecs.Entity, error) {
	kind, err := rigid.ParseBodyKind(spec.Kind)
	if err != nil {
		return 0, fmt.Errorf("entity: spawn %q: %w", spec.Name, err)
	}
	locked, err := rigid.ParseLockedAxes(spec.LockedAxes)
	if err != nil {
		return 0, fmt.Errorf("entity: spawn %q: %w", spec.Name, err)
	}

	body := &d2.Body{
		Kind:             kind,
		Position:         spec.Position.Vector(),
		Rotation:         spec.Rotation,
		PreviousPosition: spec.Position.Vector(),
		PreviousRotation: spec.Rotation,
		LinearVelocity:   spec.Velocity.Vector(),
		AngularVelocity:  spec.AngularVelocity,
		LockedAxes:       locked,
	}
	if spec.Dominance != nil {
		dominance := rigid.Dominance(*spec.Dominance)
		body.Dominance = &dominance
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.Body2D, body); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: spawn %q: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.Colliders2D, &d2.ColliderSet{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: spawn %q: %w", spec.Name, err)
	}
	if spec.Name != "" {
		name := spec.Name
		if err := ecs.Add(w, e, component.Name, &name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("entity: spawn %q: %w", spec.Name, err)
		}
	}

	for _, colliderSpec := range spec.Colliders {
		shape := colliderSpec.Shape()
		if shape == nil {
			log.Printf("entity: spawn %q: unknown collider type %q", spec.Name, colliderSpec.Type)
			continue
		}
		if err := AttachCollider2D(w, e, d2.NewCollider(shape, colliderSpec.Density)); err != nil {
			log.Printf("entity: spawn %q: attach collider: %v", spec.Name, err)
		}
	}

	ecs.PushBodyEvent(w, e, ecs.BodyEventSpawned)
	return e, nil
}

// Spawn3D creates a spatial body entity at the given position with an empty
// collider set.
func Spawn3D(w *ecs.World, kind rigid.BodyKind, position mgl64.Vec3) (ecs.Entity, error) {
	body := d3.NewBody(kind)
	body.Position = position
	body.PreviousPosition = position

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.Body3D, &body); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: spawn body: %w", err)
	}
	if err := ecs.Add(w, e, component.Colliders3D, &d3.ColliderSet{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: spawn body: %w", err)
	}

	ecs.PushBodyEvent(w, e, ecs.BodyEventSpawned)
	return e, nil
}

// BuildScene spawns every body in the scene spec. Bodies that fail to spawn
// are logged and skipped so one bad spec does not sink the whole scene.
func BuildScene(w *ecs.World, spec *scene.SceneSpec) []ecs.Entity {
	if w == nil || spec == nil {
		return nil
	}
	spawned := make([]ecs.Entity, 0, len(spec.Bodies))
	for _, bodySpec := range spec.Bodies {
		e, err := Spawn2D(w, bodySpec)
		if err != nil {
			log.Printf("entity: scene %q: %v", spec.Name, err)
			continue
		}
		spawned = append(spawned, e)
	}
	return spawned
}

// Despawn destroys the entity and reports whether it was alive. The
// despawned event fires before the components drop so listeners can still
// read them while draining.
func Despawn(w *ecs.World, e ecs.Entity) bool {
	if !ecs.IsAlive(w, e) {
		return false
	}
	ecs.PushBodyEvent(w, e, ecs.BodyEventDespawned)
	return ecs.DestroyEntity(w, e)
}

// IsRigidBody reports whether the entity carries a body record in either
// dimension.
func IsRigidBody(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.Body2D) || ecs.Has(w, e, component.Body3D)
}
