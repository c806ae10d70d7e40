package component

import (
	"context"
	"fmt"
)

// Kind tags the construction convention of a registered export.
// Declaring the kind at the registration boundary replaces any runtime
// guessing about how an export should be invoked.
type Kind string

const (
	// KindConstructor marks an export that is constructed first and then
	// initialized via its Init hook.
	KindConstructor Kind = "constructor"
	// KindFactory marks an export that is invoked as a function returning
	// the finished instance.
	KindFactory Kind = "factory"
)

// Constructor builds the raw component object from the shared state.
// The result must implement Initializer; the loader rejects it otherwise.
// Start/End capabilities are discovered on the same object.
type Constructor func(state *State) any

// Factory produces the finished instance directly. The loader assigns
// the derived name onto the result when the factory leaves it empty.
type Factory func(ctx context.Context, state *State) (*Instance, error)

// Export is a tagged union: exactly one of Constructor or Factory is
// set, matching Kind.
type Export struct {
	Kind        Kind
	Constructor Constructor
	Factory     Factory
}

// Validate checks that the export declares a known kind and carries the
// matching callable.
func (e Export) Validate() error {
	switch e.Kind {
	case KindConstructor:
		if e.Constructor == nil {
			return fmt.Errorf("constructor-shaped export has no constructor")
		}
		if e.Factory != nil {
			return fmt.Errorf("constructor-shaped export must not carry a factory")
		}
	case KindFactory:
		if e.Factory == nil {
			return fmt.Errorf("factory-shaped export has no factory")
		}
		if e.Constructor != nil {
			return fmt.Errorf("factory-shaped export must not carry a constructor")
		}
	default:
		return fmt.Errorf("unknown export kind %q", e.Kind)
	}
	return nil
}
