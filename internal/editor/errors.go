package editor

import (
	"errors"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/system"
)

var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrNoComponent    = errors.New("entity has no component")
	ErrServerRunning  = errors.New("editor server is already running")
	ErrInvalidRequest = errors.New("invalid request")
)

// Error codes sent to clients alongside the message.
const (
	CodeBadRequest      = "bad_request"
	CodeUnknownType     = "unknown_type"
	CodeInvalidConfig   = "invalid_config"
	CodeMalformedConfig = "malformed_config"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal"
)

func errorCode(err error) string {
	switch {
	case errors.Is(err, custom.ErrUnknownType):
		return CodeUnknownType
	case errors.Is(err, custom.ErrInvalidConfig):
		return CodeInvalidConfig
	case errors.Is(err, custom.ErrMalformedConfig):
		return CodeMalformedConfig
	case errors.Is(err, system.ErrEntityNotFound), errors.Is(err, ErrNoComponent):
		return CodeNotFound
	case errors.Is(err, ErrUnknownOp), errors.Is(err, ErrInvalidRequest):
		return CodeBadRequest
	default:
		return CodeInternal
	}
}
