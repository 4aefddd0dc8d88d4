package custom

import (
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/input"
	"github.com/zeusync/behave/internal/core/models"
)

// Component defines behaviour for the entity it is attached to. The world calls
// OnStep once per step, HandleInput once per input poll and the contact hooks
// when the entity's collider starts or stops touching another one.
//
// Implementations embed Base, which supplies no-op hooks, empty serialization
// and the removal flag, and then override what they need. TypeName has no
// default: it must return the name the type was registered under so that
// serialized state can be routed back to the right factory.
type Component interface {
	Entity() *models.Entity

	OnStep(dt float64)
	HandleInput(devices input.Devices, dt float64)
	OnBeginContact(other *models.Entity)
	OnEndContact(other *models.Entity)
	GUIControls(ui gui.Controls)

	ToJSON() Document
	// FromJSON applies doc to the instance. False means doc was malformed;
	// the caller decides whether to abandon the instance.
	FromJSON(doc Document) bool

	TypeName() string

	// RemoveFlag reports whether the component asked its world to remove the
	// owning entity. Once true it stays true.
	RemoveFlag() bool
}

// Base is embedded by Component implementations. It must not be copied; the
// component it belongs to is tied to exactly one entity.
type Base struct {
	_ noCopy

	entity     *models.Entity
	removeFlag bool
}

// NewBase binds a Base to the entity passed to the factory.
func NewBase(e *models.Entity) Base {
	return Base{entity: e}
}

func (b *Base) Entity() *models.Entity { return b.entity }

func (b *Base) OnStep(float64)                     {}
func (b *Base) HandleInput(input.Devices, float64) {}
func (b *Base) OnBeginContact(*models.Entity)      {}
func (b *Base) OnEndContact(*models.Entity)        {}
func (b *Base) GUIControls(gui.Controls)           {}

func (b *Base) ToJSON() Document       { return Document{} }
func (b *Base) FromJSON(Document) bool { return true }

func (b *Base) RemoveFlag() bool { return b.removeFlag }

// RequestRemoval signals the world that the owning entity should be removed at
// the end of the current step. There is no way to withdraw the request.
func (b *Base) RequestRemoval() { b.removeFlag = true }
