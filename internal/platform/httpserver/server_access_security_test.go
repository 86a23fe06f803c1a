package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gatehttp "alumvote/contexts/access-control/gate-service/transport/http"
)

func TestAccessStatusListsDefaultGate(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/access/status", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp gatehttp.AccessStatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if len(resp.Gates) != 1 {
		t.Fatalf("expected one gate, got %d", len(resp.Gates))
	}
	if resp.Gates[0].Name != "default" || resp.Gates[0].Version != 1 {
		t.Fatalf("unexpected gate %+v", resp.Gates[0])
	}
}

func TestAccessCheckAcceptsSeededPasscode(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"passcode":"demo-passcode"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/access/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp gatehttp.AccessCheckResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode check: %v", err)
	}
	if !resp.OK || resp.Name != "default" {
		t.Fatalf("unexpected check response %+v", resp)
	}
}

func TestAccessCheckRejectsWrongPasscode(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"passcode":"guess"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/access/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAccessCheckRequiresPasscode(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"passcode":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/access/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAccessRotateRequiresAdminToken(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"new_passcode":"rotated"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/access/rotate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
