package core

// Entity is a unique identifier for an entity
type Entity uint64

// NoEntity is the zero id, never assigned to a live entity
const NoEntity Entity = 0
