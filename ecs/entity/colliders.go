package entity

import (
	"fmt"

	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/d3"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
)

// AttachCollider2D appends the collider to the entity's set and folds its
// mass properties into the body record.
func AttachCollider2D(w *ecs.World, e ecs.Entity, c d2.Collider) error {
	body, ok := ecs.Get(w, e, component.Body2D)
	if !ok {
		return fmt.Errorf("entity: attach collider to %v: %w", e, ErrNotRigidBody)
	}
	set, ok := ecs.Get(w, e, component.Colliders2D)
	if !ok {
		set = &d2.ColliderSet{}
		if err := ecs.Add(w, e, component.Colliders2D, set); err != nil {
			return fmt.Errorf("entity: attach collider to %v: %w", e, err)
		}
	}

	*set = append(*set, c)
	body.Combine(c.MassProperties)

	ecs.PushBodyEvent(w, e, ecs.BodyEventColliderAttached)
	return nil
}

// DetachCollider2D removes the collider at index and subtracts its mass
// properties from the body record. The set keeps its order.
func DetachCollider2D(w *ecs.World, e ecs.Entity, index int) error {
	body, ok := ecs.Get(w, e, component.Body2D)
	if !ok {
		return fmt.Errorf("entity: detach collider from %v: %w", e, ErrNotRigidBody)
	}
	set, ok := ecs.Get(w, e, component.Colliders2D)
	if !ok || index < 0 || index >= len(*set) {
		return fmt.Errorf("entity: detach collider %d from %v: no such collider", index, e)
	}

	c := (*set)[index]
	*set = append((*set)[:index], (*set)[index+1:]...)
	body.Decombine(c.MassProperties)

	ecs.PushBodyEvent(w, e, ecs.BodyEventColliderDetached)
	return nil
}

// AttachCollider3D is the spatial counterpart of AttachCollider2D.
func AttachCollider3D(w *ecs.World, e ecs.Entity, c d3.Collider) error {
	body, ok := ecs.Get(w, e, component.Body3D)
	if !ok {
		return fmt.Errorf("entity: attach collider to %v: %w", e, ErrNotRigidBody)
	}
	set, ok := ecs.Get(w, e, component.Colliders3D)
	if !ok {
		set = &d3.ColliderSet{}
		if err := ecs.Add(w, e, component.Colliders3D, set); err != nil {
			return fmt.Errorf("entity: attach collider to %v: %w", e, err)
		}
	}

	*set = append(*set, c)
	body.Combine(c.MassProperties)

	ecs.PushBodyEvent(w, e, ecs.BodyEventColliderAttached)
	return nil
}

// DetachCollider3D removes the collider at index and subtracts its mass
// properties from the body record.
func DetachCollider3D(w *ecs.World, e ecs.Entity, index int) error {
	body, ok := ecs.Get(w, e, component.Body3D)
	if !ok {
		return fmt.Errorf("entity: detach collider from %v: %w", e, ErrNotRigidBody)
	}
	set, ok := ecs.Get(w, e, component.Colliders3D)
	if !ok || index < 0 || index >= len(*set) {
		return fmt.Errorf("entity: detach collider %d from %v: no such collider", index, e)
	}

	c := (*set)[index]
	*set = append((*set)[:index], (*set)[index+1:]...)
	body.Decombine(c.MassProperties)

	ecs.PushBodyEvent(w, e, ecs.BodyEventColliderDetached)
	return nil
}
