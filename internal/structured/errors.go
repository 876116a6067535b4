package structured

import (
	"errors"
	"fmt"
	"strings"
)

// rawPreviewLimit caps how much raw model text is echoed in error messages.
const rawPreviewLimit = 200

// FieldError represents a single shape violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// MalformedOutputError reports that generated text does not parse into the
// expected shape. It is an expected condition, not a bug: callers decide
// whether to retry, fall back, or surface it.
type MalformedOutputError struct {
	Reason string
	Raw    string
	Fields []FieldError
	Cause  error
}

func (e *MalformedOutputError) Error() string {
	var sb strings.Builder
	sb.WriteString("malformed output: ")
	sb.WriteString(e.Reason)
	for _, f := range e.Fields {
		sb.WriteString(fmt.Sprintf("; %s: %s", f.Field, f.Message))
	}
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	if preview := truncate(e.Raw, rawPreviewLimit); preview != "" {
		sb.WriteString(fmt.Sprintf(" (content: %s)", preview))
	}
	return sb.String()
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// IsMalformed reports whether err is (or wraps) a MalformedOutputError.
func IsMalformed(err error) bool {
	var me *MalformedOutputError
	return errors.As(err, &me)
}

// SchemaError reports that the caller-supplied schema itself failed to load.
// Unlike MalformedOutputError this indicates a programming mistake.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
