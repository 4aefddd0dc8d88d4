package editor

import (
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/systems/physics"
)

// Operations understood by the editor endpoint.
const (
	OpTypes    = "types"
	OpValidate = "validate"
	OpSpawn    = "spawn"
	OpInspect  = "inspect"
	OpEdit     = "edit"
	OpRemove   = "remove"
	OpSnapshot = "snapshot"
)

// Request is one editor command. Which fields are read depends on Op.
type Request struct {
	ID       string          `json:"id"`
	Op       string          `json:"op"`
	Entity   uint64          `json:"entity,omitempty"`
	Name     string          `json:"name,omitempty"`
	Position physics.Vec2    `json:"position"`
	Radius   float64         `json:"radius,omitempty"`
	Config   custom.Document `json:"config,omitempty"`
	Edits    map[string]any  `json:"edits,omitempty"`
}

// Response answers the Request with the same ID. Exactly one of Result and
// Error is set.
type Response struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

type ValidateResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type SpawnResult struct {
	Entity uint64 `json:"entity"`
}

type InspectResult struct {
	Entity   uint64        `json:"entity"`
	Type     string        `json:"type"`
	Controls []gui.Control `json:"controls"`
	Applied  []string      `json:"applied,omitempty"`
}
