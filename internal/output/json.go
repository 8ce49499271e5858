package output

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// Response represents a standard JSON response
type Response struct {
	SchemaVersion   string            `json:"schema_version"`
	Success         bool              `json:"success"`
	Data            any               `json:"data,omitempty"`
	Error           string            `json:"error,omitempty"`
	ErrorCode       string            `json:"error_code,omitempty"`
	ErrorContext    map[string]string `json:"error_context,omitempty"`
	SuggestedAction string            `json:"suggested_action,omitempty"`
}

// recoverableError is the structural contract for errors that carry a
// machine-readable code, context, and remediation hint. The library's error
// types satisfy it without importing this package.
type recoverableError interface {
	error
	ErrorCode() string
	Context() map[string]string
	SuggestedAction() string
}

// Success wraps a successful response with data
func Success(data any) Response {
	return Response{
		SchemaVersion: "v1",
		Success:       true,
		Data:          data,
	}
}

// Error wraps an error in a response, lifting enriched fields when the error
// chain provides them.
func Error(err error) Response {
	resp := Response{
		SchemaVersion: "v1",
		Success:       false,
		Error:         err.Error(),
	}
	var enriched recoverableError
	if errors.As(err, &enriched) {
		resp.ErrorCode = enriched.ErrorCode()
		resp.ErrorContext = enriched.Context()
		resp.SuggestedAction = enriched.SuggestedAction()
	}
	return resp
}

// Config controls where and how Print writes.
type Config struct {
	Writer io.Writer
	Pretty bool
}

// DefaultConfig returns stdout output, compact unless TEMPNAMED_PRETTY_JSON
// is set to 1 or true.
func DefaultConfig() Config {
	pretty := os.Getenv("TEMPNAMED_PRETTY_JSON") == "1" || os.Getenv("TEMPNAMED_PRETTY_JSON") == "true"
	return Config{Writer: os.Stdout, Pretty: pretty}
}

// PrintWith prints a value as JSON using cfg.
func PrintWith(cfg Config, v any) error {
	enc := json.NewEncoder(cfg.Writer)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// Print prints a value as JSON to stdout.
// Default to compact JSON to minimize token/output size for agent consumption.
// Enable pretty JSON for humans via env var: TEMPNAMED_PRETTY_JSON=1.
func Print(v any) error {
	return PrintWith(DefaultConfig(), v)
}

// PrintSuccess prints a success response
func PrintSuccess(data any) error {
	return Print(Success(data))
}

// PrintError prints an error response
func PrintError(err error) error {
	return Print(Error(err))
}

// Keep output package focused: commands should handle human-readable formatting.
