package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeShape, "not callable")
	if err.Code != ErrCodeShape {
		t.Errorf("expected code %s, got %s", ErrCodeShape, err.Code)
	}
	if err.Message != "not callable" {
		t.Errorf("expected message 'not callable', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_SHAPE should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "deadline exceeded")
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_Resolution_Success(t *testing.T) {
	cause := fmt.Errorf("not registered")
	err := Resolution("demo/hello-component", cause)
	if err.Code != ErrCodeResolution {
		t.Errorf("expected RESOLUTION_FAILED, got %s", err.Code)
	}
	if err.Details["module"] != "demo/hello-component" {
		t.Errorf("expected module detail, got %v", err.Details["module"])
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Retryable {
		t.Error("Resolution should not be retryable")
	}
}

func TestAppError_Shape_Success(t *testing.T) {
	err := Shape("demo/broken", "export is not callable")
	if err.Code != ErrCodeShape {
		t.Errorf("expected INVALID_SHAPE, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "demo/broken") {
		t.Errorf("expected message to name the module, got %q", err.Message)
	}
}

func TestAppError_Init_Success(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Init("hello-component-class", "init failed", cause)
	if err.Code != ErrCodeInit {
		t.Errorf("expected INIT_FAILED, got %s", err.Code)
	}
	if err.Details["component"] != "hello-component-class" {
		t.Errorf("expected component detail, got %v", err.Details["component"])
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_Contract_ExactDetail(t *testing.T) {
	for _, detail := range []string{
		"component: empty",
		"component name: empty",
		"component: start",
		"component: end",
	} {
		err := Contract(detail)
		if err.Code != ErrCodeContract {
			t.Errorf("expected CONTRACT_VIOLATION, got %s", err.Code)
		}
		if err.Message != detail {
			t.Errorf("expected message %q verbatim, got %q", detail, err.Message)
		}
	}
}

func TestAppError_Lifecycle_Success(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Lifecycle("hello-component", "start", cause)
	if err.Code != ErrCodeLifecycle {
		t.Errorf("expected LIFECYCLE_FAILED, got %s", err.Code)
	}
	if err.Details["hook"] != "start" {
		t.Errorf("expected hook=start, got %v", err.Details["hook"])
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Contract("component: start").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := Shape("m", "bad").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info in details")
	}
	if err.Details["module"] != "m" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Init("c", "init failed", cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := Contract("component: end")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	orig := Resolution("x", nil)
	wrapped := fmt.Errorf("outer: %w", orig)
	if CodeOf(wrapped) != ErrCodeResolution {
		t.Errorf("expected RESOLUTION_FAILED through wrapping, got %s", CodeOf(wrapped))
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	if CodeOf(fmt.Errorf("plain")) != "" {
		t.Error("expected empty code for plain error")
	}
}

func TestHasCode_Success(t *testing.T) {
	err := Timeout("c", "start")
	if !HasCode(err, ErrCodeTimeout) {
		t.Error("expected HasCode to match TIMEOUT")
	}
	if HasCode(err, ErrCodeContract) {
		t.Error("expected HasCode to reject mismatched code")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		retryable bool
	}{
		{"Resolution", Resolution("m", nil), ErrCodeResolution, false},
		{"Shape", Shape("m", "bad"), ErrCodeShape, false},
		{"Init", Init("c", "failed", nil), ErrCodeInit, false},
		{"Contract", Contract("component: empty"), ErrCodeContract, false},
		{"Lifecycle", Lifecycle("c", "end", nil), ErrCodeLifecycle, false},
		{"Config", Config("COMPONENT_MODULE is required"), ErrCodeConfig, false},
		{"Timeout", Timeout("c", "start"), ErrCodeTimeout, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestErrorCode_IsRetryableCode_Table(t *testing.T) {
	if !IsRetryableCode(ErrCodeTimeout) {
		t.Error("expected TIMEOUT to be retryable")
	}
	nonRetryable := []ErrorCode{ErrCodeResolution, ErrCodeShape, ErrCodeInit, ErrCodeContract, ErrCodeLifecycle, ErrCodeConfig}
	for _, code := range nonRetryable {
		if IsRetryableCode(code) {
			t.Errorf("expected %s to NOT be retryable", code)
		}
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Contract("component: start")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
