// Package component defines the typed component kinds stored on entities
// and the sentinel errors shared by the ECS accessors.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity is not alive")
	ErrNilComponent         = errors.New("ecs: component value is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component kind at runtime. IDs start at 1; the
// zero ID marks a kind that was never registered.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is a typed handle for one component type. Kinds are
// allocated once at package init and shared by everything that touches the
// component.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a new component kind and returns its handle.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

// ID returns the runtime identifier of the kind.
func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether the kind came from NewComponentKind.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}
