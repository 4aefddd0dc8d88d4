package builtin

import (
	"strconv"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/models"
)

const contactCounterSchema = `{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "minimum": 0},
		"count": {"type": "integer", "minimum": 0}
	}
}`

// ContactCounter counts begin-contacts. With a positive limit it removes its
// entity once the limit is reached.
type ContactCounter struct {
	custom.Base

	Limit   int
	Count   int
	touches map[models.EntityID]int
}

func newContactCounter(e *models.Entity) custom.Component {
	return &ContactCounter{Base: custom.NewBase(e), touches: make(map[models.EntityID]int)}
}

func (c *ContactCounter) TypeName() string { return TypeContactCounter }

func (c *ContactCounter) OnBeginContact(other *models.Entity) {
	c.Count++
	c.touches[other.ID()]++
	if c.Limit > 0 && c.Count >= c.Limit {
		c.RequestRemoval()
	}
}

// Touches reports how many contacts began with the given entity.
func (c *ContactCounter) Touches(id models.EntityID) int { return c.touches[id] }

func (c *ContactCounter) GUIControls(ui gui.Controls) {
	ui.Int("limit", &c.Limit, 0, 1000)
	ui.Text("count", strconv.Itoa(c.Count))
}

func (c *ContactCounter) ToJSON() custom.Document {
	return custom.Document{"limit": c.Limit, "count": c.Count}
}

func (c *ContactCounter) FromJSON(doc custom.Document) bool {
	var state struct {
		Limit int `json:"limit"`
		Count int `json:"count"`
	}
	if err := doc.Decode(&state); err != nil || state.Limit < 0 || state.Count < 0 {
		return false
	}
	c.Limit, c.Count = state.Limit, state.Count
	return true
}
