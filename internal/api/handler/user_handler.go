package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirpyerre/user-api/internal/api/metrics"
	"github.com/sirpyerre/user-api/internal/core/domain"
	"github.com/sirpyerre/user-api/internal/core/ports"
)

// UserHandler handles the user, login, contact and upload endpoints.
type UserHandler struct {
	service ports.UserService
	log     zerolog.Logger
}

func NewUserHandler(service ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// Home handles GET /.
//
// @Summary      Status check
// @Tags         system
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       / [get]
func (h *UserHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Status OK"})
}

// Create handles POST /user/new.
//
// @Summary      Create a user
// @Description  Validates the user and echoes it back without the password.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UserInput  true  "User to create"
// @Success      201   {object}  domain.PublicUser
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /user/new [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req UserInput
	var v violations
	if err := v.absorb(bindJSON(c, &req)); err != nil {
		return err
	}
	if err := v.absorb(c.Validate(&req)); err != nil {
		return err
	}
	if err := v.err(); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Detail handles GET /user/detail.
//
// @Summary      Echo user details from the query string
// @Tags         users
// @Produce      json
// @Param        age          query     string  true   "Age, 1-50 characters"
// @Param        description  query     string  false  "Free-form description"
// @Success      200          {object}  ports.UserDetail
// @Failure      422          {object}  ErrorResponse
// @Router       /user/detail [get]
func (h *UserHandler) Detail(c echo.Context) error {
	req := userDetailQuery{
		Age:         c.QueryParam("age"),
		Description: optionalQuery(c, "description"),
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.GetUserDetail(c.Request().Context(), req.Age, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// DetailByID handles GET /user/detail/:user_id.
//
// @Summary      Check that a user id exists
// @Tags         users
// @Produce      json
// @Param        user_id  path      int  true  "User id, greater than 0"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Router       /user/detail/{user_id} [get]
func (h *UserHandler) DetailByID(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	out, err := h.service.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.UserLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.UserLookupsTotal.WithLabelValues("exists").Inc()
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /user/update/:user_id.
//
// @Summary      Update a user
// @Description  Validates the user (and optional location) and acknowledges with 204.
// @Tags         users
// @Accept       json
// @Param        user_id  path  int                true  "User id, greater than 0"
// @Param        body     body  updateUserRequest  true  "User fields with optional location"
// @Success      204
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Router       /user/update/{user_id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var v violations

	id, err := userID(c)
	if err := v.absorb(err); err != nil {
		return err
	}

	var req updateUserRequest
	if err := v.absorb(bindJSON(c, &req)); err != nil {
		return err
	}
	if err := v.absorb(c.Validate(&req)); err != nil {
		return err
	}
	if err := v.err(); err != nil {
		return err
	}

	updated, err := h.service.UpdateUser(c.Request().Context(), id, req.UserInput.toDomain(), req.Location.toDomain())
	if err != nil {
		return err
	}

	h.log.Debug().Int("user_id", id).Int("fields", len(updated)).Msg("update echoed")
	return c.NoContent(http.StatusNoContent)
}

// Login handles POST /user/login.
//
// @Summary      Log in
// @Description  Echoes the username. The password is accepted and discarded.
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username, at most 20 characters"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  domain.LoginResult
// @Failure      415       {object}  ErrorResponse
// @Failure      422       {object}  ErrorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// userID parses and validates the user_id path parameter.
func userID(c echo.Context) (int, error) {
	id, err := pathInt(c, "user_id")
	if err != nil {
		return 0, err
	}
	if err := c.Validate(&userIDParam{UserID: id}); err != nil {
		return 0, err
	}
	return id, nil
}
