package httpserver

import (
	"net/http"
	"strings"

	sessionentities "alumvote/contexts/identity-access/session-service/domain/entities"
)

const (
	sessionTokenHeader = "X-Session-Token"
	adminTokenHeader   = "X-Admin-Token"
)

// requireVoter resolves the voter session token to a voter row. It
// writes the error response itself; callers bail out when ok is false.
func (s *Server) requireVoter(w http.ResponseWriter, r *http.Request) (sessionentities.Voter, bool) {
	token := strings.TrimSpace(r.Header.Get(sessionTokenHeader))
	if token == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return sessionentities.Voter{}, false
	}
	voter, err := s.sessions.Service.Authenticate(r.Context(), token)
	if err != nil {
		writeDomainError(w, err)
		return sessionentities.Voter{}, false
	}
	return voter, true
}

// requireAdmin verifies the signed admin token. Any defect in the token
// yields the same unauthenticated response.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (sessionentities.AdminAccount, bool) {
	token := strings.TrimSpace(r.Header.Get(adminTokenHeader))
	if token == "" {
		writeError(w, http.StatusUnauthorized, "admin_unauthenticated", "admin authentication required")
		return sessionentities.AdminAccount{}, false
	}
	admin, err := s.sessions.Service.AuthenticateAdmin(r.Context(), token)
	if err != nil {
		writeDomainError(w, err)
		return sessionentities.AdminAccount{}, false
	}
	return admin, true
}
