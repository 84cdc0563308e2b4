package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sirpyerre/user-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Every violated field is reported, in struct declaration order.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Constraint failures come
// back as *domain.ValidationError.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &domain.ValidationError{Violations: make([]domain.FieldViolation, 0, len(ve))}
	for _, fe := range ve {
		location, field := splitWireName(fe.Field())
		out.Violations = append(out.Violations, domain.FieldViolation{
			Field:    field,
			Location: location,
			Reason:   fieldReason(fe),
		})
	}
	return out
}

// tagLocations maps binding tags to where the value travels in the request.
var tagLocations = []struct {
	tag      string
	location string
}{
	{"json", domain.LocationBody},
	{"query", domain.LocationQuery},
	{"param", domain.LocationPath},
	{"form", domain.LocationForm},
	{"header", domain.LocationHeader},
	{"cookie", domain.LocationCookie},
}

// wireName reports a field as "<location>|<name>" so violations carry both.
func wireName(fld reflect.StructField) string {
	for _, tl := range tagLocations {
		name, _, _ := strings.Cut(fld.Tag.Get(tl.tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return tl.location + "|" + name
		}
	}
	return ""
}

func splitWireName(s string) (location, field string) {
	location, field, ok := strings.Cut(s, "|")
	if !ok {
		return domain.LocationBody, s
	}
	return location, field
}

// fieldReason converts a single FieldError into a human-readable reason.
func fieldReason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "credit_card":
		return "must be a valid payment card number"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
