package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// Parameter locations reported in a FieldViolation.
const (
	LocationPath   = "path"
	LocationQuery  = "query"
	LocationBody   = "body"
	LocationForm   = "form"
	LocationHeader = "header"
	LocationCookie = "cookie"
)

// FieldViolation describes one constraint a single input field failed.
type FieldViolation struct {
	Field    string `json:"field"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

// ValidationError aggregates every violated field of one request, in
// declaration order.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError from a single violation.
func NewValidationError(field, location, reason string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Location: location, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s.%s %s", v.Location, v.Field, v.Reason))
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields lists the offending field names.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Field
	}
	return out
}
