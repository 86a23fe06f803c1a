package httpserver

import (
	"encoding/json"
	"net/http"

	notificationhttp "alumvote/contexts/engagement/notification-service/transport/http"
)

func (s *Server) handleVoterInbox(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	history := r.URL.Query().Get("history") == "true"
	resp, err := s.notifications.Handler.InboxHandler(r.Context(), voter.ID, history)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVoterNotificationAction(w http.ResponseWriter, r *http.Request) {
	voter, ok := s.requireVoter(w, r)
	if !ok {
		return
	}
	var req notificationhttp.NotificationActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.notifications.Handler.ActionHandler(r.Context(), voter.ID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminInbox(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	history := r.URL.Query().Get("history") == "true"
	resp, err := s.notifications.Handler.InboxHandler(r.Context(), "", history)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAdminNotificationAction covers both inbox actions and pushing a
// new notification, discriminated by the presence of an action.
func (s *Server) handleAdminNotificationAction(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	var raw struct {
		notificationhttp.NotificationActionRequest
		notificationhttp.AppendNotificationRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if raw.Action != "" {
		resp, err := s.notifications.Handler.ActionHandler(r.Context(), "", raw.NotificationActionRequest)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp, err := s.notifications.Handler.AppendHandler(r.Context(), raw.AppendNotificationRequest)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
