package httpserver

import (
	"errors"
	"net/http"

	gateerrors "alumvote/contexts/access-control/gate-service/domain/errors"
	balloterrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	electionerrors "alumvote/contexts/election-operations/election-service/domain/errors"
	nominationerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	notificationerrors "alumvote/contexts/engagement/notification-service/domain/errors"
	sessionerrors "alumvote/contexts/identity-access/session-service/domain/errors"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// writeDomainError translates context sentinel errors into the HTTP
// error taxonomy. Unmapped errors become opaque 500s.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	// Authentication. Credential failures stay deliberately vague.
	case errors.Is(err, sessionerrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, sessionerrors.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
	case errors.Is(err, sessionerrors.ErrAdminInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	case errors.Is(err, sessionerrors.ErrAdminUnauthenticated):
		writeError(w, http.StatusUnauthorized, "admin_unauthenticated", "admin authentication required")

	// Access gate.
	case errors.Is(err, gateerrors.ErrPasscodeRequired):
		writeError(w, http.StatusBadRequest, "passcode_required", err.Error())
	case errors.Is(err, gateerrors.ErrPasscodeIncorrect):
		writeError(w, http.StatusForbidden, "passcode_incorrect", err.Error())
	case errors.Is(err, gateerrors.ErrGateNotFound):
		writeError(w, http.StatusNotFound, "gate_not_found", err.Error())
	case errors.Is(err, gateerrors.ErrGateExists):
		writeError(w, http.StatusConflict, "gate_exists", err.Error())

	// Validation.
	case errors.Is(err, sessionerrors.ErrNameRequired),
		errors.Is(err, sessionerrors.ErrBatchYearRequired),
		errors.Is(err, electionerrors.ErrNameEmpty),
		errors.Is(err, electionerrors.ErrInvalidTimestamp),
		errors.Is(err, electionerrors.ErrInvalidMode),
		errors.Is(err, electionerrors.ErrInvalidDemoAction),
		errors.Is(err, electionerrors.ErrTimelineIncomplete),
		errors.Is(err, electionerrors.ErrNominationWindowOrder),
		errors.Is(err, electionerrors.ErrVotingWindowOrder),
		errors.Is(err, electionerrors.ErrWindowOverlap),
		errors.Is(err, electionerrors.ErrRemindAtRequired),
		errors.Is(err, nominationerrors.ErrNomineeNameRequired),
		errors.Is(err, nominationerrors.ErrNomineeYearRequired),
		errors.Is(err, nominationerrors.ErrReasonRequired),
		errors.Is(err, notificationerrors.ErrMessageRequired),
		errors.Is(err, notificationerrors.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())

	// Consent is a distinct forbidden condition.
	case errors.Is(err, sessionerrors.ErrConsentRequired),
		errors.Is(err, nominationerrors.ErrConsentRequired),
		errors.Is(err, balloterrors.ErrConsentRequired):
		writeError(w, http.StatusForbidden, "consent_required", err.Error())

	// Phase and state gates.
	case errors.Is(err, nominationerrors.ErrNominationClosed):
		writeError(w, http.StatusConflict, "nomination_closed", err.Error())
	case errors.Is(err, balloterrors.ErrVotingClosed):
		writeError(w, http.StatusConflict, "voting_closed", err.Error())
	case errors.Is(err, electionerrors.ErrResultsNotPublished):
		writeError(w, http.StatusForbidden, "results_not_published", err.Error())

	// Conflicts.
	case errors.Is(err, nominationerrors.ErrAlreadyNominated):
		writeError(w, http.StatusConflict, "already_nominated", err.Error())
	case errors.Is(err, balloterrors.ErrAlreadyVoted),
		errors.Is(err, balloterrors.ErrDuplicateVote):
		writeError(w, http.StatusConflict, "already_voted", err.Error())
	case errors.Is(err, sessionerrors.ErrVoterIDTaken):
		writeError(w, http.StatusConflict, "voter_id_taken", err.Error())

	// Ballot shape.
	case errors.Is(err, balloterrors.ErrIncompleteBallot):
		writeError(w, http.StatusBadRequest, "incomplete_ballot", err.Error())
	case errors.Is(err, balloterrors.ErrInvalidCandidate),
		errors.Is(err, nominationerrors.ErrInvalidPosition):
		writeError(w, http.StatusBadRequest, "invalid_selection", err.Error())

	// Not found.
	case errors.Is(err, sessionerrors.ErrVoterNotFound),
		errors.Is(err, nominationerrors.ErrNominationNotFound),
		errors.Is(err, nominationerrors.ErrCandidateNotFound),
		errors.Is(err, notificationerrors.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, electionerrors.ErrNoElection),
		errors.Is(err, electionerrors.ErrNoActiveElection),
		errors.Is(err, nominationerrors.ErrNoActiveElection),
		errors.Is(err, balloterrors.ErrNoActiveElection):
		writeError(w, http.StatusNotFound, "no_active_election", err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
