package builtin

import (
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/models"
)

const lifetimeSchema = `{
	"type": "object",
	"required": ["seconds"],
	"properties": {
		"seconds": {"type": "number", "exclusiveMinimum": 0}
	}
}`

// minSeconds keeps edited lifetimes inside the schema's exclusive minimum.
const minSeconds = 0.01

// Lifetime removes its entity once the configured number of seconds has been
// simulated.
type Lifetime struct {
	custom.Base

	Seconds   float64
	Remaining float64
}

func newLifetime(e *models.Entity) custom.Component {
	return &Lifetime{Base: custom.NewBase(e)}
}

func (l *Lifetime) TypeName() string { return TypeLifetime }

func (l *Lifetime) OnStep(dt float64) {
	if l.RemoveFlag() {
		return
	}
	l.Remaining -= dt
	if l.Remaining <= 0 {
		l.Remaining = 0
		l.RequestRemoval()
	}
}

func (l *Lifetime) GUIControls(ui gui.Controls) {
	ui.Float("seconds", &l.Seconds, minSeconds, 3600)
	l.Remaining = min(l.Remaining, l.Seconds)
	ui.Float("remaining", &l.Remaining, 0, l.Seconds)
}

func (l *Lifetime) ToJSON() custom.Document {
	return custom.Document{"seconds": l.Seconds, "remaining": l.Remaining}
}

func (l *Lifetime) FromJSON(doc custom.Document) bool {
	var state struct {
		Seconds   float64  `json:"seconds"`
		Remaining *float64 `json:"remaining"`
	}
	if err := doc.Decode(&state); err != nil || state.Seconds <= 0 {
		return false
	}
	l.Seconds = state.Seconds
	l.Remaining = state.Seconds
	if state.Remaining != nil {
		if *state.Remaining < 0 || *state.Remaining > state.Seconds {
			return false
		}
		l.Remaining = *state.Remaining
	}
	return true
}
