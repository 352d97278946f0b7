package ecs

import "github.com/milk9111/rigid/ecs/component"

// Add attaches a component to a live entity, replacing any existing value of
// the same kind. The pointer itself is stored.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Get returns the entity's component of the given kind, or false when the
// entity is dead or has no such component.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	value, ok := s.Get(e.id()).(*T)
	return value, ok
}

// Has reports whether the live entity carries the component kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component and reports whether it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	s := w.store(kind.ID(), false)
	if s == nil || !s.Has(e.id()) {
		return false
	}
	s.Remove(e.id())
	return true
}

// ForEach visits every live entity carrying the kind. The membership is
// snapshotted up front, so fn may spawn, despawn, or detach while iterating.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return
	}
	for _, id := range s.ids() {
		e, ok := w.entities.liveHandle(id)
		if !ok {
			continue
		}
		value, ok := s.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, value)
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.liveHandle(id)
		if !ok {
			continue
		}
		a, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(id).(*B)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.liveHandle(id)
		if !ok {
			continue
		}
		a, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(id).(*B)
		if !ok {
			continue
		}
		c, ok := sc.Get(id).(*C)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
