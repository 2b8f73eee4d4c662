package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeUnreachable    = "SERVER_UNREACHABLE"
	ErrCodeBadStatus      = "SERVER_ERROR"
	ErrCodeBadPayload     = "BAD_PAYLOAD"
	ErrCodePrefs          = "PREFS_FAILED"
	ErrCodeSSHConnectFail = "SSH_CONNECTION_FAILED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var dashErr *errors.Error
	if stderrors.As(err, &dashErr) {
		return &JSONError{
			Code:       mapErrorCode(dashErr.Code),
			Message:    dashErr.Message,
			Suggestion: dashErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode string) string {
	switch internalCode {
	case errors.ErrConfig:
		return ErrCodeConfigInvalid
	case errors.ErrTransport:
		return ErrCodeUnreachable
	case errors.ErrStatus:
		return ErrCodeBadStatus
	case errors.ErrPayload:
		return ErrCodeBadPayload
	case errors.ErrPrefs:
		return ErrCodePrefs
	case errors.ErrSSH:
		return ErrCodeSSHConnectFail
	}
	return ErrCodeUnknown
}
