package errors

import "errors"

var (
	ErrNoActiveElection = errors.New("no active election")
	ErrConsentRequired  = errors.New("privacy consent required")
	ErrVotingClosed     = errors.New("voting window is not open")
	ErrAlreadyVoted     = errors.New("voter has already voted")
	ErrIncompleteBallot = errors.New("ballot must cover every active position exactly once")
	ErrInvalidCandidate = errors.New("candidate is not an official candidate for the position")
	ErrDuplicateVote    = errors.New("a vote for this position already exists")
)
