package errors

import "errors"

var (
	ErrNoElection            = errors.New("no election configured")
	ErrNoActiveElection      = errors.New("no active election")
	ErrTimelineIncomplete    = errors.New("nomination and voting windows are required")
	ErrNominationWindowOrder = errors.New("nomination end must be after start")
	ErrVotingWindowOrder     = errors.New("voting end must be after start")
	ErrWindowOverlap         = errors.New("voting start must be after nomination end")
	ErrInvalidTimestamp      = errors.New("invalid timestamp")
	ErrInvalidMode           = errors.New("invalid mode")
	ErrInvalidDemoAction     = errors.New("invalid demo action")
	ErrNameEmpty             = errors.New("election name cannot be empty")
	ErrResultsNotPublished   = errors.New("results not published")
	ErrRemindAtRequired      = errors.New("remind_at is required")
)
