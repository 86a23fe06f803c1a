package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVoterEndpointsRequireSessionToken(t *testing.T) {
	server := newTestServer()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/nominate"},
		{http.MethodGet, "/api/v1/my-nomination"},
		{http.MethodPost, "/api/v1/ballot/submit"},
		{http.MethodGet, "/api/v1/my-votes"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodPost, "/api/v1/notifications"},
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

func TestBallotSubmitWithoutActiveElection(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Liza Reyes")

	body := []byte(`{"selections":{}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ballot/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestNominateWithoutActiveElection(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Ramon Dizon")

	body := []byte(`{"position_id":"pos-1","nominee_full_name":"Clara Luna","nominee_batch_year":2012}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nominate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMyVotesStartsEmpty(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Bea Soriano")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/my-votes", nil)
	req.Header.Set("X-Session-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoterInboxStartsEmpty(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Nina Velasco")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("X-Session-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}
