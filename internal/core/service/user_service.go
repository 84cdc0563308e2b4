package service

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/user-api/internal/core/domain"
	"github.com/sirpyerre/user-api/internal/core/ports"
	"github.com/sirpyerre/user-api/pkg/logger"
)

const existsMarker = "Exists"

// UserService implements ports.UserService. Nothing is stored: every
// mutation echoes its validated input.
type UserService struct {
	directory ports.UserDirectory
	logger    zerolog.Logger
}

func NewUserService(directory ports.UserDirectory, log zerolog.Logger) *UserService {
	return &UserService{directory: directory, logger: log}
}

// CreateUser applies defaults and returns the user without its password.
func (s *UserService) CreateUser(ctx context.Context, user domain.User) (*domain.PublicUser, error) {
	if err := normalizeRole(&user); err != nil {
		return nil, err
	}
	out := user.Public()

	log := logger.FromContext(ctx, s.logger)
	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user created")
	return &out, nil
}

func (s *UserService) GetUserDetail(_ context.Context, age string, description *string) (*ports.UserDetail, error) {
	return &ports.UserDetail{Age: age, Description: description}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int) (map[string]string, error) {
	ok, err := s.directory.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	if !ok {
		log := logger.FromContext(ctx, s.logger)
		log.Debug().Int("user_id", userID).Msg("user lookup miss")
		return nil, domain.ErrUserNotFound
	}
	return map[string]string{strconv.Itoa(userID): existsMarker}, nil
}

// UpdateUser returns the validated user as a flat representation. A non-nil
// location is merged over it.
func (s *UserService) UpdateUser(ctx context.Context, userID int, user domain.User, location *domain.Location) (map[string]any, error) {
	if err := normalizeRole(&user); err != nil {
		return nil, err
	}
	fields := user.Fields()
	if location != nil {
		fields = location.MergeInto(fields)
	}

	log := logger.FromContext(ctx, s.logger)
	log.Info().Int("user_id", userID).Bool("with_location", location != nil).Msg("user updated")
	return fields, nil
}

// Login never checks the password.
func (s *UserService) Login(_ context.Context, username, _ string) (*domain.LoginResult, error) {
	if utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return nil, domain.NewValidationError("username", domain.LocationForm,
			fmt.Sprintf("must not exceed %d characters", domain.MaxUsernameLength))
	}
	return &domain.LoginResult{Username: username}, nil
}

func (s *UserService) SubmitContact(ctx context.Context, msg domain.ContactMessage) (*string, error) {
	log := logger.FromContext(ctx, s.logger)
	log.Debug().
		Str("email", msg.Email).
		Int("message_len", len(msg.Message)).
		Bool("ads_cookie", msg.Ads != nil).
		Msg("contact message received")
	return msg.UserAgent, nil
}

func (s *UserService) DescribeUpload(_ context.Context, in ports.UploadInput) (*domain.UploadSummary, error) {
	return &domain.UploadSummary{
		Filename:    in.Filename,
		ContentType: in.ContentType,
		SizeKB:      domain.SizeKB(len(in.Content)),
	}, nil
}

func normalizeRole(user *domain.User) error {
	if user.Role == "" {
		user.Role = domain.DefaultRole
	}
	if !user.Role.Valid() {
		return domain.NewValidationError("role", domain.LocationBody, "must be one of: admin user manager")
	}
	return nil
}
