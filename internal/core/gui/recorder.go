package gui

import (
	"encoding/json"
	"math"
)

// Recorder captures the controls drawn in one GUIControls pass. When edits are
// supplied, matching labels are written back into the bound values, clamped to
// the control's range.
type Recorder struct {
	controls []Control
	edits    map[string]any
	applied  []string
}

var _ Controls = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewEditor returns a Recorder that applies edits keyed by control label.
func NewEditor(edits map[string]any) *Recorder {
	return &Recorder{edits: edits}
}

// Controls returns the controls drawn so far with their post-edit values.
func (r *Recorder) Controls() []Control { return r.controls }

// Applied returns the labels whose values were changed by an edit.
func (r *Recorder) Applied() []string { return r.applied }

func (r *Recorder) Text(label, value string) {
	r.controls = append(r.controls, Control{Label: label, Kind: KindText, Value: value})
}

func (r *Recorder) Float(label string, v *float64, min, max float64) bool {
	changed := false
	if n, ok := r.number(label); ok {
		n = clamp(n, min, max)
		if n != *v {
			*v = n
			changed = true
		}
	}
	r.record(Control{Label: label, Kind: KindFloat, Value: *v, Min: &min, Max: &max}, changed)
	return changed
}

func (r *Recorder) Int(label string, v *int, min, max int) bool {
	changed := false
	if n, ok := r.number(label); ok {
		i := toInt(clamp(n, float64(min), float64(max)))
		if i != *v {
			*v = i
			changed = true
		}
	}
	lo, hi := float64(min), float64(max)
	r.record(Control{Label: label, Kind: KindInt, Value: *v, Min: &lo, Max: &hi}, changed)
	return changed
}

func (r *Recorder) Bool(label string, v *bool) bool {
	changed := false
	if raw, ok := r.edits[label]; ok {
		if b, ok := raw.(bool); ok && b != *v {
			*v = b
			changed = true
		}
	}
	r.record(Control{Label: label, Kind: KindBool, Value: *v}, changed)
	return changed
}

func (r *Recorder) record(c Control, changed bool) {
	r.controls = append(r.controls, c)
	if changed {
		r.applied = append(r.applied, c.Label)
	}
}

func (r *Recorder) number(label string) (float64, bool) {
	raw, ok := r.edits[label]
	if !ok {
		return 0, false
	}
	switch n := raw.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// clamp treats min > max as an unbounded range.
func clamp(v, min, max float64) float64 {
	if min > max {
		return v
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// toInt saturates at the int range instead of relying on an out-of-range
// float conversion.
func toInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
