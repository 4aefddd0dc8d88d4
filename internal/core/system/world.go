package system

import (
	"errors"
	"fmt"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/events/bus"
	"github.com/zeusync/behave/internal/core/input"
	"github.com/zeusync/behave/internal/core/models"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/systems/physics"
)

var ErrEntityNotFound = errors.New("entity not found")

// SpawnSpec describes an entity to create. Component is optional; when set it
// must name a registered type and is applied with FromJSON after creation.
type SpawnSpec struct {
	Name      string
	Position  physics.Vec2
	Velocity  physics.Vec2
	Radius    float64
	Tags      []string
	Component custom.Document
}

type entry struct {
	entity    *models.Entity
	component custom.Component
	despawn   bool
}

func (e *entry) pendingRemoval() bool {
	return e.despawn || (e.component != nil && e.component.RemoveFlag())
}

// World owns entities and their custom components and drives them once per
// step. It is single-threaded: call its methods from the goroutine that calls
// Step (or Run), and use Do from any other goroutine.
type World struct {
	log      log.Log
	lib      *custom.Library
	bus      bus.EventBus
	devices  input.Devices
	contacts *physics.ContactTracker

	nextID  models.EntityID
	order   []models.EntityID
	entries map[models.EntityID]*entry

	commands chan *command
	tick     uint64
	elapsed  float64
}

type Option func(*World)

func WithLogger(l log.Log) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

func WithBus(b bus.EventBus) Option {
	return func(w *World) {
		if b != nil {
			w.bus = b
		}
	}
}

// WithInput sets the devices Run polls before every step.
func WithInput(d input.Devices) Option {
	return func(w *World) { w.devices = d }
}

// WithCommandBuffer sizes the queue used by Do.
func WithCommandBuffer(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.commands = make(chan *command, n)
		}
	}
}

func New(lib *custom.Library, opts ...Option) *World {
	w := &World{
		log:      log.NewNop(),
		lib:      lib,
		bus:      bus.New(),
		contacts: physics.NewContactTracker(),
		entries:  make(map[models.EntityID]*entry),
		commands: make(chan *command, 64),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Library() *custom.Library { return w.lib }
func (w *World) Bus() bus.EventBus        { return w.bus }

// Tick is the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// Elapsed is the simulated time in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

func (w *World) Len() int { return len(w.order) }

// Spawn creates an entity. If the spec carries a component document the
// component is created through the library and configured with FromJSON; any
// failure aborts the spawn and nothing is added to the world.
func (w *World) Spawn(spec SpawnSpec) (*models.Entity, error) {
	id := w.nextID + 1
	e := models.NewEntity(id, spec.Name)
	e.SetPosition(spec.Position)
	e.SetVelocity(spec.Velocity)
	e.SetRadius(spec.Radius)
	for _, tag := range spec.Tags {
		e.AddTag(tag)
	}

	var component custom.Component
	if spec.Component != nil {
		c, err := w.configure(e, spec.Component)
		if err != nil {
			w.log.Warn("spawn aborted", log.String("entity", spec.Name), log.Error(err))
			return nil, fmt.Errorf("spawn %q: %w", spec.Name, err)
		}
		component = c
	}

	w.nextID = id
	w.entries[id] = &entry{entity: e, component: component}
	w.order = append(w.order, id)

	w.log.Debug("entity spawned",
		log.Uint64("id", uint64(id)), log.String("name", spec.Name), log.String("type", typeName(component)))
	w.publish(EventEntitySpawned, EntityEvent{ID: id, Name: spec.Name, Type: typeName(component)})
	return e, nil
}

// Attach replaces the component of an existing entity. The previous component,
// if any, is dropped; the entity keeps its contacts.
func (w *World) Attach(id models.EntityID, doc custom.Document) (custom.Component, error) {
	ent, ok := w.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	c, err := w.configure(ent.entity, doc)
	if err != nil {
		return nil, fmt.Errorf("attach to %d: %w", id, err)
	}
	ent.component = c
	return c, nil
}

// Despawn marks an entity for removal at the end of the next step, exactly
// as if its component had requested it.
func (w *World) Despawn(id models.EntityID) error {
	ent, ok := w.entries[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	ent.despawn = true
	return nil
}

func (w *World) Entity(id models.EntityID) (*models.Entity, bool) {
	ent, ok := w.entries[id]
	if !ok {
		return nil, false
	}
	return ent.entity, true
}

// Component returns the custom component of an entity; ok is false when the
// entity does not exist or has no component.
func (w *World) Component(id models.EntityID) (custom.Component, bool) {
	ent, ok := w.entries[id]
	if !ok || ent.component == nil {
		return nil, false
	}
	return ent.component, true
}

// Entities returns the live entities in spawn order.
func (w *World) Entities() []*models.Entity {
	out := make([]*models.Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entries[id].entity)
	}
	return out
}

// HandleInput forwards one input poll to every component.
func (w *World) HandleInput(devices input.Devices, dt float64) {
	if devices == nil {
		return
	}
	for _, id := range w.snapshot() {
		if ent, ok := w.entries[id]; ok && ent.component != nil {
			ent.component.HandleInput(devices, dt)
		}
	}
}

// Step advances the world by dt seconds: queued commands run first, then every
// component's OnStep, movement, contact dispatch, and finally the removal
// sweep for entities whose removal was requested.
func (w *World) Step(dt float64) {
	w.drainCommands()

	for _, id := range w.snapshot() {
		if ent, ok := w.entries[id]; ok && ent.component != nil {
			ent.component.OnStep(dt)
		}
	}

	for _, id := range w.order {
		e := w.entries[id].entity
		if v := e.Velocity(); v != (physics.Vec2{}) {
			e.SetPosition(e.Position().Add(v.Scale(dt)))
		}
	}

	w.dispatchContacts()
	w.sweep()

	w.tick++
	w.elapsed += dt
}

func (w *World) configure(e *models.Entity, doc custom.Document) (custom.Component, error) {
	c, err := w.lib.CreateInstance(e, doc)
	if err != nil {
		return nil, err
	}
	if !c.FromJSON(doc) {
		return nil, fmt.Errorf("%w: %s", custom.ErrMalformedConfig, c.TypeName())
	}
	return c, nil
}

func (w *World) dispatchContacts() {
	bodies := make([]physics.Body, 0, len(w.order))
	for _, id := range w.order {
		e := w.entries[id].entity
		if e.Radius() > 0 {
			bodies = append(bodies, e.Body())
		}
	}

	begin, end := w.contacts.Update(bodies)
	for _, p := range begin {
		a, b := w.entries[models.EntityID(p.A)], w.entries[models.EntityID(p.B)]
		if a.component != nil {
			a.component.OnBeginContact(b.entity)
		}
		if b.component != nil {
			b.component.OnBeginContact(a.entity)
		}
		w.publish(EventContactBegin, ContactEvent{A: a.entity.ID(), B: b.entity.ID()})
	}
	for _, p := range end {
		w.endContact(models.EntityID(p.A), models.EntityID(p.B))
	}
}

// endContact notifies whichever side of a contact is still in the world.
func (w *World) endContact(a, b models.EntityID) {
	ea, okA := w.entries[a]
	eb, okB := w.entries[b]
	if okA && okB {
		if ea.component != nil {
			ea.component.OnEndContact(eb.entity)
		}
		if eb.component != nil {
			eb.component.OnEndContact(ea.entity)
		}
	}
	w.publish(EventContactEnd, ContactEvent{A: a, B: b})
}

func (w *World) sweep() {
	var removed []*entry
	kept := w.order[:0]
	for _, id := range w.order {
		ent := w.entries[id]
		if ent.pendingRemoval() {
			removed = append(removed, ent)
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept

	for _, ent := range removed {
		delete(w.entries, ent.entity.ID())
	}
	// partners removed in the same sweep are not notified
	for _, ent := range removed {
		id := ent.entity.ID()
		for _, p := range w.contacts.Forget(uint64(id)) {
			partner, ok := w.entries[models.EntityID(p.Other(uint64(id)))]
			if ok && partner.component != nil {
				partner.component.OnEndContact(ent.entity)
			}
			w.publish(EventContactEnd, ContactEvent{A: models.EntityID(p.A), B: models.EntityID(p.B)})
		}
		w.log.Debug("entity removed", log.Uint64("id", uint64(id)), log.String("name", ent.entity.Name()))
		w.publish(EventEntityRemoved, EntityEvent{ID: id, Name: ent.entity.Name(), Type: typeName(ent.component)})
	}
}

func (w *World) snapshot() []models.EntityID {
	out := make([]models.EntityID, len(w.order))
	copy(out, w.order)
	return out
}

func (w *World) publish(eventType string, data any) {
	if err := w.bus.Publish(bus.NewEvent(eventType, "world", data)); err != nil {
		w.log.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

func typeName(c custom.Component) string {
	if c == nil {
		return ""
	}
	return c.TypeName()
}
