package errors

import "testing"

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "string error field is preferred",
			body:     `{"error": "item not found"}`,
			expected: "item not found",
		},
		{
			name:     "object error falls back to message",
			body:     `{"error": {"message": "Item X does not exist!", "http-code": 404}}`,
			expected: "Item X does not exist!",
		},
		{
			name:     "no error field",
			body:     `{"name": "Heating", "state": "ON"}`,
			expected: "",
		},
		{
			name:     "not JSON",
			body:     `<html>nope</html>`,
			expected: "",
		},
		{
			name:     "empty body",
			body:     ``,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMessage([]byte(tt.body)); got != tt.expected {
				t.Errorf("ExtractMessage(%q) = %q, expected %q", tt.body, got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "network error with url context",
			err:      New(ErrorTypeNetwork, "connection refused").WithContext("url", "http://hab.local"),
			expected: "Error accessing http://hab.local: connection refused",
		},
		{
			name:     "not found with item context",
			err:      New(ErrorTypeNotFound, "does not exist").WithContext("item", "Heating"),
			expected: "Item Heating not found",
		},
		{
			name:     "validation with field context",
			err:      New(ErrorTypeValidation, "must be a positive integer").WithContext("field", "port"),
			expected: "Invalid port: must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestRecoveryActions(t *testing.T) {
	actions := RecoveryActions()
	if len(actions) != 3 {
		t.Fatalf("RecoveryActions() returned %d actions, expected 3", len(actions))
	}
	if actions[0] != ActionSetHost || actions[1] != ActionDisableREST {
		t.Errorf("RecoveryActions() order = %v", actions)
	}
}
