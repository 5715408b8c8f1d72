package errors

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const metaFields = "fields"

// FieldError is one rejected field of a config or character file.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (f FieldError) String() string {
	return f.Field + " " + f.Reason
}

// ValidationBuilder collects field errors in the order they were found, so
// the message for a bad .env or character file is stable between runs.
type ValidationBuilder struct {
	fields []FieldError
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.add(field, "is required")
}

// InvalidField records a field whose value cannot be used
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.add(field, "is invalid: "+reason)
}

func (vb *ValidationBuilder) add(field, reason string) *ValidationBuilder {
	vb.fields = append(vb.fields, FieldError{Field: field, Reason: reason})
	return vb
}

// Build returns nil when nothing was recorded. Otherwise it returns a single
// InvalidArgument naming every field; FieldErrors recovers the list.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	parts := make([]string, len(vb.fields))
	for i, f := range vb.fields {
		parts[i] = f.String()
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(metaFields, slices.Clone(vb.fields))
}

// FieldErrors returns the fields rejected by a Build error, through any
// number of Wraps.
func FieldErrors(err error) []FieldError {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	fields, _ := e.Meta[metaFields].([]FieldError)
	return fields
}

// ValidateRequired records field as missing when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.InvalidField(field, fmt.Sprintf("must be between %d and %d", minValue, maxValue))
	}
}
