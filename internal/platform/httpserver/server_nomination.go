package httpserver

import (
	"encoding/json"
	"net/http"

	nominationapp "alumvote/contexts/election-operations/nomination-service/application"
	nominationhttp "alumvote/contexts/election-operations/nomination-service/transport/http"
)

func (s *Server) handleNominate(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	var req nominationhttp.SubmitNominationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	nominator := nominationapp.Nominator{
		ID:             voter.ID,
		Name:           voter.Name,
		BatchYear:      voter.BatchYear,
		PrivacyConsent: voter.PrivacyConsent,
	}
	resp, err := s.nominations.Handler.SubmitHandler(r.Context(), nominator, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMyNomination(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	resp, err := s.nominations.Handler.MyNominationHandler(r.Context(), voter.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	positionID := r.URL.Query().Get("position_id")
	resp, err := s.nominations.Handler.CandidatesHandler(r.Context(), positionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminNominations(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	resp, err := s.nominations.Handler.AdminListHandler(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePromoteNomination(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	resp, err := s.nominations.Handler.PromoteHandler(r.Context(), r.PathValue("nomination_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectNomination(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	var req nominationhttp.RejectNominationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.nominations.Handler.RejectHandler(r.Context(), r.PathValue("nomination_id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteNomination(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	resp, err := s.nominations.Handler.DeleteHandler(r.Context(), r.PathValue("nomination_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetCandidatePhoto(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	var req nominationhttp.CandidatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.nominations.Handler.SetPhotoHandler(r.Context(), r.PathValue("candidate_id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearCandidatePhoto(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	resp, err := s.nominations.Handler.ClearPhotoHandler(r.Context(), r.PathValue("candidate_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
