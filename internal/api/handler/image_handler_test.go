package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sirpyerre/user-api/internal/api/metrics"
	"github.com/sirpyerre/user-api/internal/core/domain"
)

func newUploadContext(t *testing.T, e *echo.Echo, field, filename, contentType string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/post-image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_UploadImage(t *testing.T) {
	e := newTestEcho()
	c, rec := newUploadContext(t, e, "file", "a.png", "image/png", make([]byte, 2048))

	if err := newTestHandler().UploadImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["Filename"] != "a.png" || resp["Format"] != "image/png" || resp["Size(kb)"] != float64(2) {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestUserHandler_UploadImage_RoundsSize(t *testing.T) {
	e := newTestEcho()
	c, rec := newUploadContext(t, e, "file", "b.jpg", "image/jpeg", make([]byte, 1536))

	if err := newTestHandler().UploadImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["Size(kb)"] != 1.5 {
		t.Fatalf("unexpected size: %+v", resp)
	}
}

func TestUserHandler_UploadImage_MissingFile(t *testing.T) {
	h := newTestHandler()

	t.Run("wrong field", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newUploadContext(t, e, "image", "a.png", "image/png", []byte("x"))
		v := violationsOf(t, h.UploadImage(c))["file"]
		if v.Location != domain.LocationForm || v.Reason != "is required" {
			t.Fatalf("unexpected violation: %+v", v)
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(e, http.MethodPost, "/post-image", "{}")
		if _, ok := violationsOf(t, h.UploadImage(c))["file"]; !ok {
			t.Fatalf("expected file violation")
		}
	})
}

func TestUserHandler_UploadImage_BoundsMetricLabels(t *testing.T) {
	h := newTestHandler()

	for i := 0; i < 20; i++ {
		e := newTestEcho()
		c, rec := newUploadContext(t, e, "file", "x.bin", fmt.Sprintf("x/custom-%d", i), []byte("data"))
		if err := h.UploadImage(c); err != nil {
			t.Fatalf("upload %d: handler error: %v", i, err)
		}
		if resp := decodeBody(t, rec); resp["Format"] != fmt.Sprintf("x/custom-%d", i) {
			t.Fatalf("declared type should still be echoed: %+v", resp)
		}
	}

	// image/png, image/jpeg, image/gif, image/webp and other.
	if n := testutil.CollectAndCount(metrics.UploadSizeBytes); n > 5 {
		t.Fatalf("expected at most 5 upload series, got %d", n)
	}
}
