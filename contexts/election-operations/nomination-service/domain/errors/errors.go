package errors

import "errors"

var (
	ErrConsentRequired     = errors.New("consent is required to continue")
	ErrNoActiveElection    = errors.New("no active election")
	ErrNominationClosed    = errors.New("nomination period is closed")
	ErrInvalidPosition     = errors.New("invalid position")
	ErrAlreadyNominated    = errors.New("nomination already submitted")
	ErrNominationNotFound  = errors.New("nomination not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrReasonRequired      = errors.New("rejection reason is required")
	ErrNomineeNameRequired = errors.New("nominee full name is required")
	ErrNomineeYearRequired = errors.New("valid nominee batch year is required")
)
