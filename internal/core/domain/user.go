package domain

// Role is the access level a user is created with.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

// DefaultRole is applied when a request omits the role.
const DefaultRole = RoleUser

// Valid reports whether r is one of the declared roles. Matching is case-sensitive.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	}
	return false
}

// User is the validated input form of a user. Password is write-only and
// never leaves the process through Public.
type User struct {
	FirstName        string
	LastName         string
	Email            string
	Password         string
	CreditCardNumber *string
	Role             Role
	PhotoURL         *string
	IsActive         bool
}

// PublicUser is the output form of a user.
type PublicUser struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	CreditCardNumber *string `json:"credit_card_number"`
	Role             Role    `json:"role"`
	PhotoURL         *string `json:"photo_url"`
	IsActive         bool    `json:"is_active"`
}

// Public strips the password.
func (u User) Public() PublicUser {
	return PublicUser{
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		CreditCardNumber: u.CreditCardNumber,
		Role:             u.Role,
		PhotoURL:         u.PhotoURL,
		IsActive:         u.IsActive,
	}
}

// Fields returns the user as a flat key/value representation keyed by the
// wire field names, password included.
func (u User) Fields() map[string]any {
	return map[string]any{
		"first_name":         u.FirstName,
		"last_name":          u.LastName,
		"email":              u.Email,
		"password":           u.Password,
		"credit_card_number": u.CreditCardNumber,
		"role":               u.Role,
		"photo_url":          u.PhotoURL,
		"is_active":          u.IsActive,
	}
}

// Location is an optional address attached to a user update.
type Location struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

// MergeInto writes the location fields over fields. Location wins on key collision.
func (l Location) MergeInto(fields map[string]any) map[string]any {
	fields["city"] = l.City
	fields["state"] = l.State
	fields["country"] = l.Country
	return fields
}

// MaxUsernameLength bounds LoginResult.Username.
const MaxUsernameLength = 20

// LoginResult is the only thing a login echoes back.
type LoginResult struct {
	Username string `json:"username"`
}

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
	UserAgent *string
	Ads       *string
}
