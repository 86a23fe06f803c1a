package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminEndpointsRequireToken(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/admin/me"},
		{http.MethodPost, "/api/v1/admin/logout"},
		{http.MethodGet, "/api/v1/admin/voters"},
		{http.MethodPost, "/api/v1/admin/voters"},
		{http.MethodGet, "/api/v1/admin/tally"},
		{http.MethodGet, "/api/v1/admin/stats"},
		{http.MethodGet, "/api/v1/admin/nominations"},
		{http.MethodPost, "/api/v1/admin/nominations/nom-1/promote"},
		{http.MethodPost, "/api/v1/admin/nominations/nom-1/reject"},
		{http.MethodDelete, "/api/v1/admin/nominations/nom-1"},
		{http.MethodPost, "/api/v1/admin/candidates/cand-1/photo"},
		{http.MethodDelete, "/api/v1/admin/candidates/cand-1/photo"},
		{http.MethodGet, "/api/v1/admin/reminders"},
		{http.MethodPost, "/api/v1/admin/reminders"},
		{http.MethodGet, "/api/v1/admin/election/active"},
		{http.MethodPost, "/api/v1/admin/election/active"},
		{http.MethodPut, "/api/v1/admin/election/active"},
		{http.MethodPost, "/api/v1/admin/election/publish"},
		{http.MethodPost, "/api/v1/admin/election/demo-phase"},
		{http.MethodPost, "/api/v1/admin/reset-voters"},
		{http.MethodPost, "/api/v1/admin/reset-election"},
		{http.MethodGet, "/api/v1/admin/notifications"},
		{http.MethodPost, "/api/v1/admin/notifications"},
	}
	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestAdminEndpointsRejectForgedToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
	req.Header.Set("X-Admin-Token", "eyJhbGciOiJIUzI1NiJ9.forged.signature")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminEndpointsRejectVoterSessionToken(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Pedro Penduko")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/voters", nil)
	req.Header.Set("X-Admin-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
