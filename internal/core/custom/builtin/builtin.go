// Package builtin provides the stock component types shipped with the engine.
package builtin

import (
	"errors"

	"github.com/zeusync/behave/internal/core/custom"
)

const (
	TypeLifetime         = "lifetime"
	TypeContactCounter   = "contact_counter"
	TypePlayerController = "player_controller"
	TypeSpinner          = "spinner"
)

// Types returns fresh descriptors for every builtin component type.
func Types() []*custom.Type {
	return []*custom.Type{
		custom.NewType(TypeLifetime, newLifetime, custom.MustSchemaVerifier(TypeLifetime, lifetimeSchema)),
		custom.NewType(TypeContactCounter, newContactCounter, custom.MustSchemaVerifier(TypeContactCounter, contactCounterSchema)),
		custom.NewType(TypePlayerController, newPlayerController, custom.MustSchemaVerifier(TypePlayerController, playerControllerSchema)),
		custom.NewType(TypeSpinner, newSpinner, custom.MustSchemaVerifier(TypeSpinner, spinnerSchema)),
	}
}

// Register adds every builtin type to lib. Types that are already registered
// are reported in the joined error; the rest are still added.
func Register(lib *custom.Library) error {
	var errs error
	for _, t := range Types() {
		if err := lib.RegisterType(t); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
