package demo

import (
	"context"
	"fmt"

	"github.com/evanx/component-validator/component"
)

// noInitClass looks like a component but never implements Init, so the
// loader rejects it with INIT_FAILED.
type noInitClass struct{}

func newNoInitClass(state *component.State) any { return &noInitClass{} }

func (n *noInitClass) Start(ctx context.Context) error { return nil }
func (n *noInitClass) End(ctx context.Context) error   { return nil }

// newNoEnd is a factory whose instance lacks the end hook, tripping the
// validator's "component: end" check.
func newNoEnd(ctx context.Context, state *component.State) (*component.Instance, error) {
	return &component.Instance{
		Start: func(ctx context.Context) error { return nil },
	}, nil
}

// brokenClass initializes fine but fails on start.
type brokenClass struct{}

func newBrokenClass(state *component.State) any { return &brokenClass{} }

func (b *brokenClass) Init(ctx context.Context, state *component.State) error { return nil }
func (b *brokenClass) Start(ctx context.Context) error {
	return fmt.Errorf("nothing to say")
}
func (b *brokenClass) End(ctx context.Context) error { return nil }
