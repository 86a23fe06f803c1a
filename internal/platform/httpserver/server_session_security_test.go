package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	gateservice "alumvote/contexts/access-control/gate-service"
	ballotservice "alumvote/contexts/election-operations/ballot-service"
	balloterrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	ballotports "alumvote/contexts/election-operations/ballot-service/ports"
	electionservice "alumvote/contexts/election-operations/election-service"
	electionmemory "alumvote/contexts/election-operations/election-service/adapters/memory"
	electionapp "alumvote/contexts/election-operations/election-service/application"
	nominationservice "alumvote/contexts/election-operations/nomination-service"
	nominationmemory "alumvote/contexts/election-operations/nomination-service/adapters/memory"
	nominationerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	nominationports "alumvote/contexts/election-operations/nomination-service/ports"
	notificationservice "alumvote/contexts/engagement/notification-service"
	notificationapp "alumvote/contexts/engagement/notification-service/application"
	sessionservice "alumvote/contexts/identity-access/session-service"
	sessionhttp "alumvote/contexts/identity-access/session-service/transport/http"
)

// The stubs below mirror the composition root's cross-context adapters
// over the in-memory stores, so the full route table is exercisable
// without Postgres.

type nominationElectionStub struct {
	elections electionapp.Service
}

func (r nominationElectionStub) ActiveElection(ctx context.Context) (nominationports.ElectionState, error) {
	view, ok, err := r.elections.CurrentElection(ctx)
	if err != nil {
		return nominationports.ElectionState{}, err
	}
	if !ok {
		return nominationports.ElectionState{}, nominationerrors.ErrNoActiveElection
	}
	return nominationports.ElectionState{ElectionID: view.Election.ID, Phase: view.Phase}, nil
}

type ballotElectionStub struct {
	elections electionapp.Service
}

func (r ballotElectionStub) ActiveElection(ctx context.Context) (ballotports.ElectionState, error) {
	view, ok, err := r.elections.CurrentElection(ctx)
	if err != nil {
		return ballotports.ElectionState{}, err
	}
	if !ok {
		return ballotports.ElectionState{}, balloterrors.ErrNoActiveElection
	}
	return ballotports.ElectionState{ElectionID: view.Election.ID, Phase: view.Phase}, nil
}

type nominationPositionStub struct {
	store *electionmemory.Store
}

func (r nominationPositionStub) GetActivePosition(ctx context.Context, electionID string, positionID string) (nominationports.PositionInfo, error) {
	positions, err := r.store.ListPositions(ctx, electionID, true)
	if err != nil {
		return nominationports.PositionInfo{}, err
	}
	for _, position := range positions {
		if position.ID == positionID {
			return nominationports.PositionInfo{
				ID:          position.ID,
				Name:        position.Name,
				DisplayName: position.DisplayName(),
			}, nil
		}
	}
	return nominationports.PositionInfo{}, nominationerrors.ErrInvalidPosition
}

type ballotPositionStub struct {
	store *electionmemory.Store
}

func (r ballotPositionStub) ListActivePositions(ctx context.Context, electionID string) ([]ballotports.PositionInfo, error) {
	positions, err := r.store.ListPositions(ctx, electionID, true)
	if err != nil {
		return nil, err
	}
	infos := make([]ballotports.PositionInfo, 0, len(positions))
	for _, position := range positions {
		infos = append(infos, ballotports.PositionInfo{
			ID:          position.ID,
			Name:        position.Name,
			DisplayName: position.DisplayName(),
		})
	}
	return infos, nil
}

type ballotCandidateStub struct {
	store *nominationmemory.Store
}

func (r ballotCandidateStub) GetOfficialCandidate(ctx context.Context, candidateID string) (ballotports.CandidateInfo, error) {
	candidate, err := r.store.GetOfficialCandidate(ctx, candidateID)
	if err != nil {
		return ballotports.CandidateInfo{}, balloterrors.ErrInvalidCandidate
	}
	return ballotports.CandidateInfo{
		ID:         candidate.ID,
		PositionID: candidate.PositionID,
		FullName:   candidate.FullName,
		IsOfficial: candidate.IsOfficial,
	}, nil
}

type notificationWriterStub struct {
	notifications notificationapp.Service
}

func (w notificationWriterStub) Append(ctx context.Context, record nominationports.NotificationRecord) error {
	_, err := w.notifications.Append(ctx, notificationapp.AppendInput{
		Type:    record.Type,
		Message: record.Message,
		VoterID: record.VoterID,
	})
	return err
}

func newTestServer() *Server {
	logger := slog.Default()
	notifications := notificationservice.NewInMemoryModule(logger)
	gates := gateservice.NewInMemoryModule(logger)
	sessions := sessionservice.NewInMemoryModule(logger)
	elections := electionservice.NewInMemoryModule(logger, electionservice.CrossContext{})
	nominations := nominationservice.NewInMemoryModule(logger,
		nominationElectionStub{elections: elections.Service},
		nominationPositionStub{store: elections.Store},
		notificationWriterStub{notifications: notifications.Service},
	)
	ballots := ballotservice.NewInMemoryModule(logger,
		ballotElectionStub{elections: elections.Service},
		ballotPositionStub{store: elections.Store},
		ballotCandidateStub{store: nominations.Store},
	)
	return New(Modules{
		Gates:         gates,
		Sessions:      sessions,
		Elections:     elections,
		Nominations:   nominations,
		Ballots:       ballots,
		Notifications: notifications,
	}, logger, ":0")
}

// quickLogin registers a voter through the public endpoint and returns a
// live session token.
func quickLogin(t *testing.T, server *Server, name string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"batch_year":2015,"privacy_consent":true}`, name)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/voter/quick-login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("quick login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp sessionhttp.VoterSessionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode quick login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("quick login returned an empty token, body=%s", rr.Body.String())
	}
	return resp.Token
}

func TestVoterMeRequiresSessionToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/voter/me", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoterMeRejectsUnknownToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/voter/me", nil)
	req.Header.Set("X-Session-Token", "not-a-real-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestQuickLoginIssuesUsableToken(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Maria Santos")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/voter/me", nil)
	req.Header.Set("X-Session-Token", token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var profile sessionhttp.VoterProfile
	if err := json.Unmarshal(rr.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Name != "Maria Santos" || profile.VoterID == "" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestQuickLoginRequiresConsent(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Jose Rizal","batch_year":2010,"privacy_consent":false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/voter/quick-login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestQuickLoginRequiresBatchYear(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Jose Rizal","privacy_consent":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/voter/quick-login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoterLogoutInvalidatesToken(t *testing.T) {
	server := newTestServer()
	token := quickLogin(t, server, "Ana Cruz")

	logout := httptest.NewRequest(http.MethodPost, "/api/v1/voter/logout", nil)
	logout.Header.Set("X-Session-Token", token)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, logout)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	me := httptest.NewRequest(http.MethodGet, "/api/v1/voter/me", nil)
	me.Header.Set("X-Session-Token", token)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, me)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminLoginRejectsUnknownAccount(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"username":"nobody","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}
