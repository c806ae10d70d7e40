package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/errors"
	"github.com/evanx/component-validator/validator"
)

// CallLog records hook invocations in order.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

// Append records one call.
func (c *CallLog) Append(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

// Calls returns a copy of the recorded calls.
func (c *CallLog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.calls))
	copy(out, c.calls)
	return out
}

// Instance builds a valid instance whose hooks record into the log.
// A nil log is allowed.
func Instance(name string, log *CallLog) *component.Instance {
	record := func(hook string) component.Hook {
		return func(ctx context.Context) error {
			if log != nil {
				log.Append(hook)
			}
			return nil
		}
	}
	return &component.Instance{
		Name:  name,
		Start: record("start"),
		End:   record("end"),
	}
}

// FailingInstance builds an instance whose named hook returns err.
func FailingInstance(name, hook string, err error) *component.Instance {
	inst := Instance(name, nil)
	failing := func(ctx context.Context) error { return err }
	switch hook {
	case "start":
		inst.Start = failing
	case "end":
		inst.End = failing
	}
	return inst
}

// State builds a collaborator bundle for tests.
func State(t *testing.T, name string, props map[string]any) *component.State {
	t.Helper()
	return component.NewState(name, props, nil, nil, nil)
}

// AssertConformance validates the instance structurally and exercises
// its start and end hooks. Use it in component test suites to prove
// the full lifecycle contract in one call.
func AssertConformance(t *testing.T, ctx context.Context, inst *component.Instance) {
	t.Helper()
	if err := validator.Validate(inst); err != nil {
		t.Fatalf("instance failed structural validation: %v", err)
	}
	if err := validator.NewProber().Exercise(ctx, inst); err != nil {
		t.Fatalf("instance failed lifecycle probe: %v", err)
	}
}

// AssertCode fails the test unless err carries the expected code.
func AssertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if !errors.HasCode(err, code) {
		t.Fatalf("expected code %s, got %s (%v)", code, errors.CodeOf(err), err)
	}
}

// AssertNoError fails the test when err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
