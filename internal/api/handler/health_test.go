package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Liveness(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	if err := NewHealthHandler(nil).Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || decodeBody(t, rec)["status"] != "ok" {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealthHandler_Readiness_NoDependencies(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health/ready", "")

	if err := NewHealthHandler(nil).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness_Degraded(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health/ready", "")

	h := NewHealthHandler(map[string]Pinger{
		"redis": stubPinger{err: errors.New("connection refused")},
		"mongo": stubPinger{},
	})
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	deps, _ := resp["dependencies"].(map[string]any)
	redis, _ := deps["redis"].(map[string]any)
	mongo, _ := deps["mongo"].(map[string]any)
	if resp["status"] != "degraded" || redis["error"] != "connection refused" || mongo["status"] != "ok" {
		t.Fatalf("unexpected readiness payload: %+v", resp)
	}
}
