package httpserver

import (
	"encoding/json"
	"net/http"

	ballotapp "alumvote/contexts/election-operations/ballot-service/application"
	ballothttp "alumvote/contexts/election-operations/ballot-service/transport/http"
)

func (s *Server) handleBallotSubmit(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	var req ballothttp.SubmitBallotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	principal := ballotapp.Voter{
		ID:             voter.ID,
		HasVoted:       voter.HasVoted,
		PrivacyConsent: voter.PrivacyConsent,
	}
	resp, err := s.ballots.Handler.SubmitHandler(r.Context(), principal, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyVotes(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	resp, err := s.ballots.Handler.MyVotesHandler(r.Context(), voter.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
