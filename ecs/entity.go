package ecs

import "strconv"

// Entity is a generational handle to a world slot. The low 32 bits hold the
// slot id (starting at 1), the high 32 bits the generation, so a handle kept
// across DestroyEntity goes stale instead of aliasing the slot's next owner.
// The zero Entity never refers to anything.
type Entity uint64

type entityID uint32

type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// Valid reports whether the handle could ever name an entity. It does not
// check liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}

func (e Entity) String() string {
	return "entity(" + strconv.FormatUint(uint64(e.id()), 10) + "@" + strconv.FormatUint(uint64(e.generation()), 10) + ")"
}
