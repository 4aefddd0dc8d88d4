package builtin

import (
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/input"
	"github.com/zeusync/behave/internal/core/models"
	"github.com/zeusync/behave/internal/core/systems/physics"
)

const playerControllerSchema = `{
	"type": "object",
	"required": ["speed"],
	"properties": {
		"speed": {"type": "number", "exclusiveMinimum": 0}
	}
}`

const minSpeed = 0.01

// PlayerController steers its entity with WASD or the arrow keys.
type PlayerController struct {
	custom.Base

	Speed float64
}

func newPlayerController(e *models.Entity) custom.Component {
	return &PlayerController{Base: custom.NewBase(e)}
}

func (p *PlayerController) TypeName() string { return TypePlayerController }

func (p *PlayerController) HandleInput(d input.Devices, _ float64) {
	dir := physics.V(
		input.Axis(d, input.KeyA, input.KeyD)+input.Axis(d, input.KeyLeft, input.KeyRight),
		input.Axis(d, input.KeyS, input.KeyW)+input.Axis(d, input.KeyDown, input.KeyUp),
	)
	p.Entity().SetVelocity(dir.Normalized().Scale(p.Speed))
}

func (p *PlayerController) GUIControls(ui gui.Controls) {
	ui.Float("speed", &p.Speed, minSpeed, 100)
}

func (p *PlayerController) ToJSON() custom.Document {
	return custom.Document{"speed": p.Speed}
}

func (p *PlayerController) FromJSON(doc custom.Document) bool {
	var state struct {
		Speed float64 `json:"speed"`
	}
	if err := doc.Decode(&state); err != nil || state.Speed <= 0 {
		return false
	}
	p.Speed = state.Speed
	return true
}
