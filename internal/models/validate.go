package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FieldError is one violated constraint on one field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every violated field for a payload, so clients see
// all problems at once. Handlers map it to HTTP 422.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// getString returns the field as a string. A present non-string value records
// a type error; an absent or null value is simply not present.
func getString(raw map[string]interface{}, field string, ve *ValidationError) (string, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		ve.add(field, "must be a string")
		return "", false
	}
	return s, true
}

// getInt returns the field as an int. JSON numbers arrive as float64; only
// integral values are accepted.
func getInt(raw map[string]interface{}, field string, ve *ValidationError) (int, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			ve.add(field, "must be an integer")
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		ve.add(field, "must be an integer")
		return 0, false
	}
}

func getBool(raw map[string]interface{}, field string, ve *ValidationError) (bool, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		ve.add(field, "must be a boolean")
		return false, false
	}
	return b, true
}

// getStringList returns the field as a []string. Accepts []interface{} of
// strings (the shape encoding/json produces) or []string directly.
func getStringList(raw map[string]interface{}, field string, ve *ValidationError) ([]string, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, false
	}
	switch list := v.(type) {
	case []string:
		return list, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				ve.add(field, "must be a list of strings")
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		ve.add(field, "must be a list of strings")
		return nil, false
	}
}

// getTime parses the field as an RFC 3339 timestamp, with a date-only
// fallback.
func getTime(raw map[string]interface{}, field string, ve *ValidationError) (time.Time, bool) {
	s, ok := getString(raw, field, ve)
	if !ok {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	ve.add(field, "must be an RFC 3339 timestamp")
	return time.Time{}, false
}

func checkLength(s, field string, min, max int, ve *ValidationError) {
	n := len([]rune(s))
	if n < min {
		ve.add(field, fmt.Sprintf("must be at least %d characters", min))
	} else if n > max {
		ve.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func checkRange(n int, field string, min, max int, ve *ValidationError) {
	if n < min || n > max {
		ve.add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}
