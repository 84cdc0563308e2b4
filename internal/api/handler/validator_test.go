package handler

import (
	"testing"

	"github.com/sirpyerre/user-api/internal/core/domain"
)

func TestValidator_ReportsLocation(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name     string
		input    any
		field    string
		location string
	}{
		{"path", &userIDParam{UserID: 0}, "user_id", domain.LocationPath},
		{"query", &userDetailQuery{}, "age", domain.LocationQuery},
		{"form", &loginRequest{Password: "x"}, "username", domain.LocationForm},
		{"body", &UserInput{LastName: "Doe", Email: "a@b.co", Password: "password123"}, "first_name", domain.LocationBody},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := violationsOf(t, v.Validate(tc.input))
			got, ok := vs[tc.field]
			if !ok || got.Location != tc.location {
				t.Fatalf("expected %s violation on %s, got %+v", tc.location, tc.field, vs)
			}
			if len(vs) != 1 {
				t.Fatalf("expected exactly one violation, got %+v", vs)
			}
		})
	}
}

func TestValidator_ValidInput(t *testing.T) {
	role := "manager"
	in := &UserInput{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: "password123", Role: &role}

	if err := NewValidator().Validate(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
