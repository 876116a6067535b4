// Package structured is the single chokepoint for turning raw generated text
// into validated, typed values. Model output is untrusted: it may wrap JSON in
// markdown fences, prepend prose, or return garbage. Every consumer of
// generated JSON goes through Parse so that malformed output is handled once.
package structured

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Parse locates a JSON payload inside raw model text, validates it against the
// given JSON Schema, and decodes it into v.
//
// Any parse or shape failure is returned as *MalformedOutputError so callers
// can branch on it (retry, fall back, or surface). A broken schema is the
// caller's bug and is returned as *SchemaError instead.
func Parse(raw string, schema string, v any) error {
	payload := LocateJSON(raw)
	if payload == "" {
		return &MalformedOutputError{Reason: "no JSON payload found", Raw: raw}
	}

	if !json.Valid([]byte(payload)) {
		return &MalformedOutputError{Reason: "payload is not valid JSON", Raw: raw}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return &SchemaError{Message: "schema failed to load", Cause: err}
	}

	if !result.Valid() {
		fields := make([]FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			fields = append(fields, FieldError{Field: field, Message: desc.Description()})
		}
		return &MalformedOutputError{Reason: "payload does not match expected shape", Raw: raw, Fields: fields}
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &MalformedOutputError{Reason: "payload does not decode into target type", Raw: raw, Cause: err}
	}

	return nil
}

// LocateJSON extracts the JSON payload from raw model text. It strips markdown
// code fences, then scans for the outermost object or array. Returns "" when
// no payload is present.
func LocateJSON(raw string) string {
	text := stripFences(strings.TrimSpace(raw))

	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	start := objStart
	closer := byte('}')
	if start < 0 || (arrStart >= 0 && arrStart < start) {
		start = arrStart
		closer = ']'
	}
	if start < 0 {
		return ""
	}

	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return ""
	}

	return text[start : end+1]
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
