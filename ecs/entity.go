package ecs

// EntityId packs the owning archetype ID into the upper 32 bits and the
// entity's slot index into the lower 32 bits.
type EntityId uint64

// NewEntityId builds an EntityId from an archetype ID and a slot index.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId returns the owning archetype's ID.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index returns the entity's slot index within its archetype.
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// EntityRef is a stable handle to an entity. Unlike a raw EntityId it
// survives archetype moves (AddComponent/RemoveComponent) and reports
// deletion: a ref with Id == 0 is dead.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}
