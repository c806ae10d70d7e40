package component

import (
	"context"

	"github.com/google/uuid"

	"github.com/evanx/component-validator/logger"
)

// Hook is a single lifecycle operation. Hooks honor the context for
// cancellation and deadlines and are called at most once each by the
// orchestrating caller — the component never invokes its own hooks.
type Hook func(ctx context.Context) error

// Instance is the minimal lifecycle contract every loaded component
// must satisfy: a name plus invocable start and end hooks. Missing
// hooks are left nil for the validator to flag.
type Instance struct {
	Name  string
	Start Hook
	End   Hook
}

// Capability interfaces for constructor-shaped components. The loader
// adapts a constructed object onto an Instance by asserting these one
// at a time; whichever capability the object lacks stays unbound.

// Initializer is the post-construction hook required of every
// constructor-shaped component. Init is awaited before the instance
// is handed to the caller.
type Initializer interface {
	Init(ctx context.Context, state *State) error
}

// Starter provides the start hook.
type Starter interface {
	Start(ctx context.Context) error
}

// Ender provides the end hook.
type Ender interface {
	End(ctx context.Context) error
}

// Named is optionally implemented by components that set their own name.
// The loader falls back to the name derived from the module reference.
type Named interface {
	Name() string
}

// Metrics records named numeric observations.
type Metrics interface {
	Record(ctx context.Context, name string, value float64)
}

// Reporter accepts error reports attributed to a component.
type Reporter interface {
	Error(component string, err error)
}

// State is the fixed collaborator bundle passed into a component at
// construction. It is built fresh per load, handed to exactly one
// instance, and never mutated after construction.
type State struct {
	// Name is the component's assigned name, derived from the module reference.
	Name string
	// LoadID uniquely identifies this load cycle.
	LoadID uuid.UUID
	// Props is opaque caller-supplied configuration, read-only by convention.
	Props map[string]any
	// Logger is pre-tagged with the component name.
	Logger *logger.Logger
	// Metrics records named numeric observations.
	Metrics Metrics
	// Reporter accepts error reports from the component.
	Reporter Reporter
}

// NewState builds the collaborator bundle for one load. Props are
// copied so later mutation by the caller cannot leak into the bundle.
func NewState(name string, props map[string]any, log *logger.Logger, metrics Metrics, reporter Reporter) *State {
	copied := make(map[string]any, len(props))
	for k, v := range props {
		copied[k] = v
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &State{
		Name:     name,
		LoadID:   uuid.New(),
		Props:    copied,
		Logger:   log.WithComponent(name),
		Metrics:  metrics,
		Reporter: reporter,
	}
}
