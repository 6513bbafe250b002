package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	Healthz(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestMethodNotAllowedSetsAllowHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/users", nil)
	rr := httptest.NewRecorder()
	MethodNotAllowed(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); allow != allowedMethods {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestMethodNotAllowedBareOptions(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	rr := httptest.NewRecorder()
	MethodNotAllowed(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}
