package models

import (
	"slices"

	"github.com/zeusync/behave/internal/core/systems/physics"
)

// EntityID represents a unique identifier for entities within one world.
type EntityID uint64

// Entity is a simulated object. It is owned by the world that spawned it; other
// packages hold *Entity only as a reference to its identity and spatial state.
type Entity struct {
	id       EntityID
	name     string
	position physics.Vec2
	velocity physics.Vec2
	radius   float64
	tags     []string
}

func NewEntity(id EntityID, name string) *Entity {
	return &Entity{id: id, name: name}
}

func (e *Entity) ID() EntityID        { return e.id }
func (e *Entity) Name() string        { return e.name }
func (e *Entity) SetName(name string) { e.name = name }

func (e *Entity) Position() physics.Vec2     { return e.position }
func (e *Entity) SetPosition(p physics.Vec2) { e.position = p }
func (e *Entity) Velocity() physics.Vec2     { return e.velocity }
func (e *Entity) SetVelocity(v physics.Vec2) { e.velocity = v }

// Radius is the circle collider radius; zero means the entity has no collider.
func (e *Entity) Radius() float64 { return e.radius }

func (e *Entity) SetRadius(r float64) {
	if r < 0 {
		r = 0
	}
	e.radius = r
}

// Body returns the collider snapshot used by the contact tracker.
func (e *Entity) Body() physics.Body {
	return physics.Body{ID: uint64(e.id), Position: e.position, Radius: e.radius}
}

func (e *Entity) Tags() []string { return slices.Clone(e.tags) }

func (e *Entity) AddTag(tag string) {
	if !e.HasTag(tag) {
		e.tags = append(e.tags, tag)
	}
}

func (e *Entity) RemoveTag(tag string) {
	e.tags = slices.DeleteFunc(e.tags, func(t string) bool { return t == tag })
}

func (e *Entity) HasTag(tag string) bool { return slices.Contains(e.tags, tag) }
