package demo

import (
	"context"
	"fmt"

	"github.com/evanx/component-validator/component"
)

// Module references of the built-in components.
const (
	RefHello        = "demo/hello-component"
	RefHelloClass   = "demo/hello-component-class"
	RefNoInitClass  = "demo/hello-component-class-no-init"
	RefNoEndFactory = "demo/hello-component-no-end"
	RefBrokenClass  = "demo/hello-component-class-broken"
)

// NewHello is the factory-shaped hello component. The greeting comes
// from props when set.
func NewHello(ctx context.Context, state *component.State) (*component.Instance, error) {
	greeting := "hello"
	if g, ok := state.Props["greeting"].(string); ok && g != "" {
		greeting = g
	}
	log := state.Logger

	return &component.Instance{
		Start: func(ctx context.Context) error {
			log.Info(fmt.Sprintf("%s from %s", greeting, state.Name))
			if state.Metrics != nil {
				state.Metrics.Record(ctx, "hello.greetings", 1)
			}
			return nil
		},
		End: func(ctx context.Context) error {
			log.Info("goodbye")
			return nil
		},
	}, nil
}

// HelloClass is the constructor-shaped hello component.
type HelloClass struct {
	state    *component.State
	greeting string
	started  bool
}

// NewHelloClass constructs the component. Initialization happens in Init.
func NewHelloClass(state *component.State) any {
	return &HelloClass{}
}

func (h *HelloClass) Init(ctx context.Context, state *component.State) error {
	h.state = state
	h.greeting = "hello"
	if g, ok := state.Props["greeting"].(string); ok && g != "" {
		h.greeting = g
	}
	state.Logger.Debug("hello class initialized")
	return nil
}

func (h *HelloClass) Start(ctx context.Context) error {
	if h.started {
		return fmt.Errorf("already started")
	}
	h.started = true
	h.state.Logger.Info(fmt.Sprintf("%s from %s", h.greeting, h.state.Name))
	if h.state.Metrics != nil {
		h.state.Metrics.Record(ctx, "hello.greetings", 1)
	}
	return nil
}

func (h *HelloClass) End(ctx context.Context) error {
	if !h.started {
		return fmt.Errorf("not started")
	}
	h.started = false
	h.state.Logger.Info("goodbye")
	return nil
}

// Started reports whether the component is between Start and End.
func (h *HelloClass) Started() bool { return h.started }
