package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gateservice "alumvote/contexts/access-control/gate-service"
	ballotservice "alumvote/contexts/election-operations/ballot-service"
	electionservice "alumvote/contexts/election-operations/election-service"
	nominationservice "alumvote/contexts/election-operations/nomination-service"
	notificationservice "alumvote/contexts/engagement/notification-service"
	sessionservice "alumvote/contexts/identity-access/session-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "alumvote/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	gates         gateservice.Module
	sessions      sessionservice.Module
	elections     electionservice.Module
	nominations   nominationservice.Module
	ballots       ballotservice.Module
	notifications notificationservice.Module
}

type Modules struct {
	Gates         gateservice.Module
	Sessions      sessionservice.Module
	Elections     electionservice.Module
	Nominations   nominationservice.Module
	Ballots       ballotservice.Module
	Notifications notificationservice.Module
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		gates:         modules.Gates,
		sessions:      modules.Sessions,
		elections:     modules.Elections,
		nominations:   modules.Nominations,
		ballots:       modules.Ballots,
		notifications: modules.Notifications,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/v1/access/status", s.handleAccessStatus)
	s.mux.HandleFunc("POST /api/v1/access/check", s.handleAccessCheck)
	s.mux.HandleFunc("POST /api/v1/access/rotate", s.handleAccessRotate)

	s.mux.HandleFunc("POST /api/v1/voter/login", s.handleVoterLogin)
	s.mux.HandleFunc("POST /api/v1/voter/quick-login", s.handleQuickLogin)
	s.mux.HandleFunc("POST /api/v1/voter/logout", s.handleVoterLogout)
	s.mux.HandleFunc("GET /api/v1/voter/me", s.handleVoterMe)

	s.mux.HandleFunc("GET /api/v1/elections/current", s.handleCurrentElection)
	s.mux.HandleFunc("GET /api/v1/elections/results", s.handleResults)
	s.mux.HandleFunc("GET /api/v1/positions", s.handlePositions)
	s.mux.HandleFunc("GET /api/v1/candidates", s.handleCandidates)

	s.mux.HandleFunc("POST /api/v1/nominate", s.handleNominate)
	s.mux.HandleFunc("GET /api/v1/my-nomination", s.handleMyNomination)
	s.mux.HandleFunc("POST /api/v1/ballot/submit", s.handleBallotSubmit)
	s.mux.HandleFunc("GET /api/v1/my-votes", s.handleMyVotes)
	s.mux.HandleFunc("GET /api/v1/notifications", s.handleVoterInbox)
	s.mux.HandleFunc("POST /api/v1/notifications", s.handleVoterNotificationAction)

	s.mux.HandleFunc("POST /api/v1/admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("POST /api/v1/admin/logout", s.handleAdminLogout)
	s.mux.HandleFunc("GET /api/v1/admin/me", s.handleAdminMe)
	s.mux.HandleFunc("GET /api/v1/admin/voters", s.handleAdminListVoters)
	s.mux.HandleFunc("POST /api/v1/admin/voters", s.handleAdminCreateVoter)
	s.mux.HandleFunc("GET /api/v1/admin/tally", s.handleAdminTally)
	s.mux.HandleFunc("GET /api/v1/admin/stats", s.handleAdminStats)
	s.mux.HandleFunc("GET /api/v1/admin/nominations", s.handleAdminNominations)
	s.mux.HandleFunc("POST /api/v1/admin/nominations/{nomination_id}/promote", s.handlePromoteNomination)
	s.mux.HandleFunc("POST /api/v1/admin/nominations/{nomination_id}/reject", s.handleRejectNomination)
	s.mux.HandleFunc("DELETE /api/v1/admin/nominations/{nomination_id}", s.handleDeleteNomination)
	s.mux.HandleFunc("POST /api/v1/admin/candidates/{candidate_id}/photo", s.handleSetCandidatePhoto)
	s.mux.HandleFunc("DELETE /api/v1/admin/candidates/{candidate_id}/photo", s.handleClearCandidatePhoto)
	s.mux.HandleFunc("GET /api/v1/admin/reminders", s.handleListReminders)
	s.mux.HandleFunc("POST /api/v1/admin/reminders", s.handleCreateReminder)
	s.mux.HandleFunc("GET /api/v1/admin/election/active", s.handleAdminElection)
	s.mux.HandleFunc("POST /api/v1/admin/election/active", s.handleCreateElection)
	s.mux.HandleFunc("PUT /api/v1/admin/election/active", s.handleUpdateElection)
	s.mux.HandleFunc("POST /api/v1/admin/election/publish", s.handlePublishResults)
	s.mux.HandleFunc("POST /api/v1/admin/election/demo-phase", s.handleDemoPhase)
	s.mux.HandleFunc("POST /api/v1/admin/reset-voters", s.handleResetVoters)
	s.mux.HandleFunc("POST /api/v1/admin/reset-election", s.handleResetElection)
	s.mux.HandleFunc("GET /api/v1/admin/notifications", s.handleAdminInbox)
	s.mux.HandleFunc("POST /api/v1/admin/notifications", s.handleAdminNotificationAction)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
