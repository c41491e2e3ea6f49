package core

// EntityID is a stable handle for anything that can be collided with.
// IDs are compared by value and never reused within one game, so a stale
// handle can never alias a newer entity.
type EntityID uint32

// NoEntity is the zero handle meaning "nothing".
const NoEntity EntityID = 0

// IsValid reports whether the handle refers to an entity.
func (id EntityID) IsValid() bool {
	return id != NoEntity
}
