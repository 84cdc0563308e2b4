package ports

import (
	"context"

	"github.com/sirpyerre/user-api/internal/core/domain"
)

// UserDetail is the echo of the query-string detail lookup.
type UserDetail struct {
	Age         string  `json:"age"`
	Description *string `json:"description"`
}

// UploadInput carries an uploaded file read fully into memory.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// UserService defines the use-case operations behind the HTTP surface.
// Inputs reaching it have already passed schema validation.
type UserService interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.PublicUser, error)
	GetUserDetail(ctx context.Context, age string, description *string) (*UserDetail, error)
	// GetUserByID returns {"<id>": "Exists"} or domain.ErrUserNotFound.
	GetUserByID(ctx context.Context, userID int) (map[string]string, error)
	// UpdateUser echoes the validated user, with location merged over it when given.
	UpdateUser(ctx context.Context, userID int, user domain.User, location *domain.Location) (map[string]any, error)
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	// SubmitContact returns the User-Agent header value verbatim.
	SubmitContact(ctx context.Context, msg domain.ContactMessage) (*string, error)
	DescribeUpload(ctx context.Context, in UploadInput) (*domain.UploadSummary, error)
}
