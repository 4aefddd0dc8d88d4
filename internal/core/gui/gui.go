// Package gui defines the immediate-mode controls surface components draw their
// editable state onto, and a headless Recorder that implements it for editors
// that live outside the process.
package gui

// Controls is an immediate-mode widget sink. Each call draws one control bound
// to a value; the editable variants write the user's edit through the pointer
// and return true when the value changed during this call.
type Controls interface {
	Text(label, value string)
	Float(label string, v *float64, min, max float64) bool
	Int(label string, v *int, min, max int) bool
	Bool(label string, v *bool) bool
}

type ControlKind string

const (
	KindText  ControlKind = "text"
	KindFloat ControlKind = "float"
	KindInt   ControlKind = "int"
	KindBool  ControlKind = "bool"
)

// Control describes one drawn widget.
type Control struct {
	Label string      `json:"label"`
	Kind  ControlKind `json:"kind"`
	Value any         `json:"value"`
	Min   *float64    `json:"min,omitempty"`
	Max   *float64    `json:"max,omitempty"`
}
