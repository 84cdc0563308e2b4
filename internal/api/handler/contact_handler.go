package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/user-api/internal/api/metrics"
)

// Contact handles POST /contact.
//
// @Summary      Submit the contact form
// @Description  Accepts the form and returns the caller's User-Agent header verbatim (null when absent). An optional ads cookie is accepted and ignored.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        first_name  formData  string  true   "First name, 1-20 characters"
// @Param        last_name   formData  string  true   "Last name, 1-20 characters"
// @Param        email       formData  string  true   "Email address"
// @Param        message     formData  string  true   "Message, at least 20 characters"
// @Param        User-Agent  header    string  false  "Client user agent"
// @Success      200         {string}  string
// @Failure      415         {object}  ErrorResponse
// @Failure      422         {object}  ErrorResponse
// @Router       /contact [post]
func (h *UserHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := bindForm(c, &req); err != nil {
		return err
	}
	req.UserAgent = optionalHeader(c, "User-Agent")
	req.Ads = optionalCookie(c, "ads")

	if err := c.Validate(&req); err != nil {
		return err
	}

	ua, err := h.service.SubmitContact(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.ContactSubmissionsTotal.Inc()
	return c.JSON(http.StatusOK, ua)
}
