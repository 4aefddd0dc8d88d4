package custom

import (
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/models"
)

const testTypeName = "test.counter"

// counter is a component with symmetric ToJSON/FromJSON.
type counter struct {
	Base
	Count int
	Label string
	steps int
}

func newCounter(e *models.Entity) Component {
	return &counter{Base: NewBase(e)}
}

func (c *counter) TypeName() string { return testTypeName }

func (c *counter) OnStep(float64) {
	c.steps++
	if c.Count > 0 && c.steps >= c.Count {
		c.RequestRemoval()
	}
}

func (c *counter) GUIControls(ui gui.Controls) {
	ui.Int("count", &c.Count, 0, 100)
}

func (c *counter) ToJSON() Document {
	return Document{"count": c.Count, "label": c.Label}
}

func (c *counter) FromJSON(doc Document) bool {
	var state struct {
		Count *int   `json:"count"`
		Label string `json:"label"`
	}
	if err := doc.Decode(&state); err != nil || state.Count == nil {
		return false
	}
	c.Count, c.Label = *state.Count, state.Label
	return true
}

// hasCount accepts documents carrying a numeric count field.
func hasCount(doc Document) bool {
	_, ok := doc["count"].(float64)
	if !ok {
		_, ok = doc["count"].(int)
	}
	return ok
}

// countingFactory wraps newCounter and records how often it ran.
func countingFactory(calls *int) Factory {
	return func(e *models.Entity) Component {
		*calls++
		return newCounter(e)
	}
}
