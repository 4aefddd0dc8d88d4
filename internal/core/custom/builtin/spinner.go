package builtin

import (
	"math"
	"strconv"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/models"
)

const spinnerSchema = `{
	"type": "object",
	"required": ["rate"],
	"properties": {
		"rate": {"type": "number"},
		"angle": {"type": "number"}
	}
}`

// Spinner turns at Rate radians per second. Angle stays within [0, 2π).
type Spinner struct {
	custom.Base

	Rate  float64
	Angle float64
}

func newSpinner(e *models.Entity) custom.Component {
	return &Spinner{Base: custom.NewBase(e)}
}

func (s *Spinner) TypeName() string { return TypeSpinner }

func (s *Spinner) OnStep(dt float64) {
	s.Angle = math.Mod(s.Angle+s.Rate*dt, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
}

func (s *Spinner) GUIControls(ui gui.Controls) {
	ui.Float("rate", &s.Rate, -20, 20)
	ui.Text("angle", strconv.FormatFloat(s.Angle, 'f', 3, 64))
}

func (s *Spinner) ToJSON() custom.Document {
	return custom.Document{"rate": s.Rate, "angle": s.Angle}
}

func (s *Spinner) FromJSON(doc custom.Document) bool {
	var state struct {
		Rate  float64 `json:"rate"`
		Angle float64 `json:"angle"`
	}
	if err := doc.Decode(&state); err != nil {
		return false
	}
	s.Rate, s.Angle = state.Rate, state.Angle
	return true
}
