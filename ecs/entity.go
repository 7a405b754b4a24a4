package ecs

import "fmt"

// Entity is a generational handle: the slot index sits in the low half and
// the slot generation in the high half, so a handle to a destroyed entity
// never matches the slot's next occupant. Zero is never alive.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(e) }

func (e Entity) generation() generation { return generation(e >> entityIDBits) }

// String renders the handle as slot#generation for logs.
func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e != 0
}
