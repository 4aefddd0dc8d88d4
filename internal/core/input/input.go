package input

// Key identifies a keyboard key by a stable, lowercase name ("w", "space", "left").
type Key string

const (
	KeyW     Key = "w"
	KeyA     Key = "a"
	KeyS     Key = "s"
	KeyD     Key = "d"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Devices is the read-only view of input hardware handed to components once per
// input poll.
type Devices interface {
	KeyDown(key Key) bool
	MouseButtonDown(button Button) bool
	MousePosition() (x, y float64)
}

// State is a mutable snapshot of input devices. The host fills it from its
// windowing layer (or a test does) and passes it to the world.
type State struct {
	keys    map[Key]bool
	buttons map[Button]bool
	mouseX  float64
	mouseY  float64
}

var _ Devices = (*State)(nil)

func NewState() *State {
	return &State{
		keys:    make(map[Key]bool),
		buttons: make(map[Button]bool),
	}
}

func (s *State) Press(keys ...Key) {
	for _, k := range keys {
		s.keys[k] = true
	}
}

func (s *State) Release(keys ...Key) {
	for _, k := range keys {
		delete(s.keys, k)
	}
}

func (s *State) PressButton(b Button)   { s.buttons[b] = true }
func (s *State) ReleaseButton(b Button) { delete(s.buttons, b) }

func (s *State) MoveMouse(x, y float64) {
	s.mouseX, s.mouseY = x, y
}

func (s *State) KeyDown(key Key) bool               { return s.keys[key] }
func (s *State) MouseButtonDown(button Button) bool { return s.buttons[button] }
func (s *State) MousePosition() (x, y float64)      { return s.mouseX, s.mouseY }

// Axis returns -1, 0 or 1 depending on which of the two keys is held.
func Axis(d Devices, negative, positive Key) float64 {
	v := 0.0
	if d.KeyDown(negative) {
		v--
	}
	if d.KeyDown(positive) {
		v++
	}
	return v
}
