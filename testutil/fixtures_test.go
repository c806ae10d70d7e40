package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/evanx/component-validator/errors"
)

func TestInstance_RecordsCalls(t *testing.T) {
	log := &CallLog{}
	inst := Instance("hello-component", log)

	ctx := context.Background()
	if err := inst.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := inst.End(ctx); err != nil {
		t.Fatal(err)
	}

	calls := log.Calls()
	if len(calls) != 2 || calls[0] != "start" || calls[1] != "end" {
		t.Errorf("expected [start end], got %v", calls)
	}
}

func TestFailingInstance(t *testing.T) {
	boom := fmt.Errorf("boom")
	inst := FailingInstance("hello-component", "start", boom)

	if err := inst.Start(context.Background()); err != boom {
		t.Errorf("expected injected error, got %v", err)
	}
	if err := inst.End(context.Background()); err != nil {
		t.Errorf("expected untouched end hook, got %v", err)
	}
}

func TestAssertConformance(t *testing.T) {
	log := &CallLog{}
	AssertConformance(t, context.Background(), Instance("hello-component", log))

	calls := log.Calls()
	if len(calls) != 2 || calls[0] != "start" || calls[1] != "end" {
		t.Errorf("expected conformance probe to run start then end, got %v", calls)
	}
}

func TestAssertCode(t *testing.T) {
	err := errors.Contract("component: start")
	AssertCode(t, err, errors.ErrCodeContract)
}

func TestState(t *testing.T) {
	state := State(t, "hello-component", map[string]any{"k": "v"})
	if state.Name != "hello-component" {
		t.Errorf("expected name set, got %q", state.Name)
	}
	if state.Props["k"] != "v" {
		t.Errorf("expected props set, got %v", state.Props)
	}
}
