package handler

import (
	"github.com/sirpyerre/user-api/internal/core/domain"
)

// ErrorResponse is the error envelope returned on every 4xx/5xx response.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []domain.FieldViolation `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// UserInput is the write schema of a user, shared by create and update.
// Must stay exported: the validator cannot read fields promoted through an
// unexported embedded struct.
type UserInput struct {
	FirstName        string  `json:"first_name"         validate:"required,min=1,max=50"`
	LastName         string  `json:"last_name"          validate:"required,min=1,max=50"`
	Email            string  `json:"email"              validate:"required,email"`
	Password         string  `json:"password"           validate:"required,min=8"`
	CreditCardNumber *string `json:"credit_card_number" validate:"omitempty,credit_card"`
	Role             *string `json:"role"               validate:"omitempty,oneof=admin user manager"`
	PhotoURL         *string `json:"photo_url"          validate:"omitempty,url"`
	IsActive         *bool   `json:"is_active"`
}

type locationRequest struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

type updateUserRequest struct {
	UserInput
	Location *locationRequest `json:"location"`
}

type userIDParam struct {
	UserID int `param:"user_id" validate:"gt=0"`
}

type userDetailQuery struct {
	Age         string  `query:"age"         validate:"required,min=1,max=50"`
	Description *string `query:"description"`
}

type loginRequest struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

type contactRequest struct {
	FirstName string  `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string  `form:"last_name"  validate:"required,min=1,max=20"`
	Email     string  `form:"email"      validate:"required,email"`
	Message   string  `form:"message"    validate:"required,min=20"`
	UserAgent *string `header:"User-Agent"`
	Ads       *string `cookie:"ads"`
}

// --- Request → domain ---

func (r UserInput) toDomain() domain.User {
	role := domain.DefaultRole
	if r.Role != nil {
		role = domain.Role(*r.Role)
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.User{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Password:         r.Password,
		CreditCardNumber: r.CreditCardNumber,
		Role:             role,
		PhotoURL:         r.PhotoURL,
		IsActive:         active,
	}
}

func (r *locationRequest) toDomain() *domain.Location {
	if r == nil {
		return nil
	}
	return &domain.Location{City: r.City, State: r.State, Country: r.Country}
}

func (r contactRequest) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Message:   r.Message,
		UserAgent: r.UserAgent,
		Ads:       r.Ads,
	}
}
