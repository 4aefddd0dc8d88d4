package custom

import "errors"

var (
	ErrInvalidType     = errors.New("invalid component type")
	ErrDuplicateType   = errors.New("component type already registered")
	ErrUnknownType     = errors.New("unknown component type")
	ErrMissingTypeName = errors.New("configuration has no type name")
	ErrInvalidConfig   = errors.New("configuration rejected by verifier")
	ErrMalformedConfig = errors.New("configuration could not be applied")
	ErrNilInstance     = errors.New("factory returned no instance")
)
