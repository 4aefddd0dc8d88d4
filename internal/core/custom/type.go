package custom

import (
	"fmt"

	"github.com/zeusync/behave/internal/core/models"
)

// Factory creates a new component bound to the given entity. The caller owns
// the returned instance.
type Factory func(e *models.Entity) Component

// Verifier reports whether a document is an acceptable configuration for a
// type. It must not have side effects.
type Verifier func(doc Document) bool

// AcceptAll is the verifier for types that take any configuration.
func AcceptAll(Document) bool { return true }

// Type binds a registered name to a factory and a verifier. A Type is owned by
// the Library it is registered with and is never copied.
type Type struct {
	_ noCopy

	name    string
	factory Factory
	verify  Verifier
}

// NewType describes a component type. A nil verifier accepts every document.
func NewType(name string, factory Factory, verify Verifier) *Type {
	if verify == nil {
		verify = AcceptAll
	}
	return &Type{name: name, factory: factory, verify: verify}
}

func (t *Type) Name() string { return t.name }

// CreateInstance runs the factory without looking at any configuration.
func (t *Type) CreateInstance(e *models.Entity) Component {
	return t.factory(e)
}

func (t *Type) VerifyJSON(doc Document) bool {
	return t.verify(doc)
}

// CreateInstanceFromJSON verifies doc first and only invokes the factory when
// the verifier accepts it. Applying doc to the instance is left to the caller
// (see Component.FromJSON).
func (t *Type) CreateInstanceFromJSON(e *models.Entity, doc Document) (Component, error) {
	if !t.VerifyJSON(doc) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, t.name)
	}
	c := t.CreateInstance(e)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilInstance, t.name)
	}
	return c, nil
}

func (t *Type) validate() error {
	switch {
	case t == nil:
		return fmt.Errorf("%w: nil", ErrInvalidType)
	case t.name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidType)
	case t.factory == nil:
		return fmt.Errorf("%w: %s has no factory", ErrInvalidType, t.name)
	}
	return nil
}
