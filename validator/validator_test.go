package validator

import (
	"context"
	"testing"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/errors"
)

func noopHook(ctx context.Context) error { return nil }

func validInstance() *component.Instance {
	return &component.Instance{
		Name:  "hello-component",
		Start: noopHook,
		End:   noopHook,
	}
}

func TestValidate_Success(t *testing.T) {
	if err := Validate(validInstance()); err != nil {
		t.Errorf("expected valid instance, got %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		inst    *component.Instance
		message string
	}{
		{
			name:    "nil instance",
			inst:    nil,
			message: "component: empty",
		},
		{
			name:    "empty name",
			inst:    &component.Instance{Start: noopHook, End: noopHook},
			message: "component name: empty",
		},
		{
			name:    "missing start",
			inst:    &component.Instance{Name: "c", End: noopHook},
			message: "component: start",
		},
		{
			name:    "missing end",
			inst:    &component.Instance{Name: "c", Start: noopHook},
			message: "component: end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.inst)
			if err == nil {
				t.Fatal("expected contract violation")
			}
			if !errors.HasCode(err, errors.ErrCodeContract) {
				t.Errorf("expected CONTRACT_VIOLATION, got %s", errors.CodeOf(err))
			}
			appErr := err.(*errors.AppError)
			if appErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, appErr.Message)
			}
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	// Both hooks missing: start is reported first.
	inst := &component.Instance{Name: "c"}
	err := Validate(inst)
	if err == nil {
		t.Fatal("expected contract violation")
	}
	if err.(*errors.AppError).Message != "component: start" {
		t.Errorf("expected start reported before end, got %q", err.(*errors.AppError).Message)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	inst := validInstance()
	for i := 0; i < 3; i++ {
		if err := Validate(inst); err != nil {
			t.Fatalf("validation changed outcome on pass %d: %v", i, err)
		}
	}
}
