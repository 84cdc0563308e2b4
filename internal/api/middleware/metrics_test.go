package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sirpyerre/user-api/internal/api/metrics"
)

func TestMetrics_CountsByRouteAndCode(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/user/detail/:user_id", func(c echo.Context) error {
		if c.Param("user_id") == "9" {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return c.NoContent(http.StatusOK)
	})

	okCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/user/detail/:user_id", "200")
	missCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/user/detail/:user_id", "404")
	okBefore := testutil.ToFloat64(okCounter)
	missBefore := testutil.ToFloat64(missCounter)

	for _, path := range []string{"/user/detail/1", "/user/detail/2", "/user/detail/9"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(okCounter) - okBefore; got != 2 {
		t.Fatalf("expected 2 successful requests counted, got %v", got)
	}
	if got := testutil.ToFloat64(missCounter) - missBefore; got != 1 {
		t.Fatalf("expected 1 not-found request counted, got %v", got)
	}
}
