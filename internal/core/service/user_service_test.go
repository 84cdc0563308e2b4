package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirpyerre/user-api/internal/core/domain"
	"github.com/sirpyerre/user-api/internal/core/ports"
	"github.com/sirpyerre/user-api/pkg/logger"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDirectory struct {
	ids []int
	err error
}

func (d *stubDirectory) Exists(_ context.Context, userID int) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	for _, id := range d.ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func newUserSvc(dir ports.UserDirectory) *UserService {
	return NewUserService(dir, zerolog.Nop())
}

func validUser() domain.User {
	return domain.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
		Role:      domain.RoleManager,
		IsActive:  true,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserService_CreateUser_StripsPassword(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})

	out, err := svc.CreateUser(context.Background(), validUser())
	require.NoError(t, err)

	assert.Equal(t, "John", out.FirstName)
	assert.Equal(t, domain.RoleManager, out.Role)
	assert.True(t, out.IsActive)
}

func TestUserService_CreateUser_DefaultsRole(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	u := validUser()
	u.Role = ""

	out, err := svc.CreateUser(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, out.Role)
}

func TestUserService_CreateUser_RejectsUnknownRole(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	u := validUser()
	u.Role = "superadmin"

	_, err := svc.CreateUser(context.Background(), u)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_GetUserDetail_Echoes(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	desc := "tall"

	out, err := svc.GetUserDetail(context.Background(), "twenty", &desc)
	require.NoError(t, err)
	assert.Equal(t, "twenty", out.Age)
	assert.Equal(t, &desc, out.Description)

	out, err = svc.GetUserDetail(context.Background(), "42", nil)
	require.NoError(t, err)
	assert.Nil(t, out.Description)
}

func TestUserService_GetUserByID(t *testing.T) {
	svc := newUserSvc(&stubDirectory{ids: []int{1, 2, 3, 4, 5}})

	for _, id := range []int{1, 2, 3, 4, 5} {
		out, err := svc.GetUserByID(context.Background(), id)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	}

	out, err := svc.GetUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"3": "Exists"}, out)

	_, err = svc.GetUserByID(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_GetUserByID_DirectoryError(t *testing.T) {
	boom := errors.New("redis timeout")
	svc := newUserSvc(&stubDirectory{err: boom})

	_, err := svc.GetUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_UpdateUser_RoundTrip(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	u := validUser()
	card := "4111111111111111"
	u.CreditCardNumber = &card

	out, err := svc.UpdateUser(context.Background(), 1, u, nil)
	require.NoError(t, err)

	assert.Equal(t, u.Fields(), out)
	assert.NotContains(t, out, "city")
}

func TestUserService_UpdateUser_MergesLocation(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	city, country := "Nairobi", "Kenya"

	out, err := svc.UpdateUser(context.Background(), 2, validUser(), &domain.Location{City: &city, Country: &country})
	require.NoError(t, err)

	assert.Equal(t, "John", out["first_name"])
	assert.Equal(t, &city, out["city"])
	assert.Equal(t, &country, out["country"])
	assert.Nil(t, out["state"])
}

func TestUserService_Login_IgnoresPassword(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})

	for _, pwd := range []string{"anything8+", "", "x"} {
		out, err := svc.Login(context.Background(), "johndoe", pwd)
		require.NoError(t, err)
		assert.Equal(t, domain.LoginResult{Username: "johndoe"}, *out)
	}
}

func TestUserService_Login_UsernameTooLong(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})

	_, err := svc.Login(context.Background(), "abcdefghijklmnopqrstu", "x")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(context.Background(), "abcdefghijklmnopqrst", "x")
	assert.NoError(t, err)
}

func TestUserService_SubmitContact_ReturnsUserAgent(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})
	ua := "Mozilla/5.0"

	out, err := svc.SubmitContact(context.Background(), domain.ContactMessage{UserAgent: &ua})
	require.NoError(t, err)
	assert.Equal(t, &ua, out)

	out, err = svc.SubmitContact(context.Background(), domain.ContactMessage{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUserService_DescribeUpload(t *testing.T) {
	svc := newUserSvc(&stubDirectory{})

	out, err := svc.DescribeUpload(context.Background(), ports.UploadInput{
		Filename:    "a.png",
		ContentType: "image/png",
		Content:     make([]byte, 2048),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UploadSummary{Filename: "a.png", ContentType: "image/png", SizeKB: 2.0}, *out)
}

func TestUserService_LogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	svc := NewUserService(&stubDirectory{}, zerolog.New(&buf))

	ctx := logger.WithRequestID(context.Background(), "req-7")
	_, err := svc.CreateUser(ctx, validUser())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.NotContains(t, buf.String(), "password123")
}
