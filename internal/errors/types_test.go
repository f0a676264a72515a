package errors

import (
	stderrors "errors"
	"testing"
)

func TestHabError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *HabError
		expected string
	}{
		{
			name:     "message only",
			err:      New(ErrorTypeNetwork, "request failed"),
			expected: "request failed",
		},
		{
			name:     "wrapped cause",
			err:      Wrap(stderrors.New("connection refused"), ErrorTypeNetwork, "request failed"),
			expected: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestHabError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrorTypeInternal, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Errorf("errors.Is() did not reach the cause through Unwrap")
	}
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeNotFound, "missing")

	if !IsType(err, ErrorTypeNotFound) {
		t.Errorf("IsType() = false for matching type")
	}
	if IsType(err, ErrorTypeNetwork) {
		t.Errorf("IsType() = true for non-matching type")
	}
	if IsType(stderrors.New("plain"), ErrorTypeNotFound) {
		t.Errorf("IsType() = true for a plain error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(ErrorTypeNotFound, "missing")) {
		t.Errorf("IsNotFound() = false for a not-found error")
	}
	if IsNotFound(New(ErrorTypeNetwork, "down")) {
		t.Errorf("IsNotFound() = true for a network error")
	}
}

func TestGetType(t *testing.T) {
	if got := GetType(New(ErrorTypeConfig, "bad")); got != ErrorTypeConfig {
		t.Errorf("GetType() = %v, expected config", got)
	}
	if got := GetType(stderrors.New("plain")); got != ErrorTypeInternal {
		t.Errorf("GetType() = %v for plain error, expected internal", got)
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrorTypeValidation, "bad port").WithContext("field", "port")

	ctx := GetContext(err)
	if ctx["field"] != "port" {
		t.Errorf("GetContext()[field] = %v, expected port", ctx["field"])
	}
}
