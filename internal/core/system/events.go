package system

import "github.com/zeusync/behave/internal/core/models"

// Event types published on the world's bus.
const (
	EventEntitySpawned = "entity.spawned"
	EventEntityRemoved = "entity.removed"
	EventContactBegin  = "contact.begin"
	EventContactEnd    = "contact.end"
)

// EntityEvent is the payload of spawn and removal events. Type is empty for
// entities without a custom component.
type EntityEvent struct {
	ID   models.EntityID
	Name string
	Type string
}

// ContactEvent is the payload of contact events; A < B.
type ContactEvent struct {
	A, B models.EntityID
}
