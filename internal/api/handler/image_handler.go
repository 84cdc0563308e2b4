package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/user-api/internal/api/metrics"
	"github.com/sirpyerre/user-api/internal/core/domain"
	"github.com/sirpyerre/user-api/internal/core/ports"
)

const uploadField = "file"

// UploadImage handles POST /post-image.
//
// @Summary      Upload an image
// @Description  Reads the whole file and reports its name, declared content type and size in KB.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  domain.UploadSummary
// @Failure      413   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /post-image [post]
func (h *UserHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return domain.NewValidationError(uploadField, domain.LocationForm, "is required")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload").SetInternal(err)
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	summary, err := h.service.DescribeUpload(c.Request().Context(), ports.UploadInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		return err
	}

	metrics.UploadSizeBytes.WithLabelValues(metrics.UploadContentType(contentType)).Observe(float64(len(content)))
	return c.JSON(http.StatusOK, summary)
}
