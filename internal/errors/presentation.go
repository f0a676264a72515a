package errors

import (
	"encoding/json"
	"fmt"
)

// RecoveryAction is a fixed, user-selectable remediation offered alongside
// an error message. Dismissing the message performs no action.
type RecoveryAction string

const (
	ActionSetHost     RecoveryAction = "Set host"
	ActionDisableREST RecoveryAction = "Disable REST API"
	ActionDismiss     RecoveryAction = "Dismiss"
)

// RecoveryActions lists the choices presented with a failed server call,
// in display order.
func RecoveryActions() []RecoveryAction {
	return []RecoveryAction{ActionSetHost, ActionDisableREST, ActionDismiss}
}

// UserMessage returns a user-friendly error message
func UserMessage(err error) string {
	if hErr, ok := err.(*HabError); ok {
		return formatUserError(hErr)
	}
	return err.Error()
}

// formatUserError creates user-friendly error messages based on error type
func formatUserError(hErr *HabError) string {
	switch hErr.Type {
	case ErrorTypeValidation:
		msg := hErr.Message
		if field, ok := hErr.Context["field"]; ok {
			msg = fmt.Sprintf("Invalid %s: %s", field, msg)
		}
		return msg
	case ErrorTypeNetwork:
		msg := hErr.Message
		if url, ok := hErr.Context["url"]; ok {
			msg = fmt.Sprintf("Error accessing %s: %s", url, msg)
		}
		return msg
	case ErrorTypeNotFound:
		if name, ok := hErr.Context["item"]; ok {
			return fmt.Sprintf("Item %s not found", name)
		}
		return hErr.Message
	case ErrorTypeConfig:
		msg := hErr.Message
		if configType, ok := hErr.Context["config_type"]; ok {
			msg = fmt.Sprintf("Configuration error (%s): %s", configType, msg)
		}
		return msg
	default:
		return hErr.Message
	}
}

// errorBody matches the error envelope the server embeds in response
// bodies: either {"error": "text"} or {"error": {"message": "text"}}.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
}

// ExtractMessage pulls a displayable message out of a raw JSON response
// body carrying an error field. The field is preferred when it is a plain
// string; otherwise its nested message is used. Returns "" when the body
// carries no usable message.
func ExtractMessage(body []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(envelope.Error, &asString); err == nil {
		return asString
	}

	var detail errorDetail
	if err := json.Unmarshal(envelope.Error, &detail); err == nil {
		return detail.Message
	}

	return ""
}

// DebugInfo returns detailed error information for debugging
func DebugInfo(err error) map[string]interface{} {
	info := map[string]interface{}{
		"error":   err.Error(),
		"type":    "unknown",
		"context": map[string]interface{}{},
	}

	if hErr, ok := err.(*HabError); ok {
		info["type"] = string(hErr.Type)
		info["message"] = hErr.Message
		info["context"] = hErr.Context

		if hErr.Cause != nil {
			info["cause"] = hErr.Cause.Error()
		}
	}

	return info
}
