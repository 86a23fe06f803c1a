package ports

import (
	"context"
	"time"

	"alumvote/contexts/election-operations/nomination-service/domain/entities"
	"alumvote/contracts/schedule"
)

type NominationRepository interface {
	GetNomination(ctx context.Context, id string) (entities.Nomination, error)
	// GetByNominator returns ErrNominationNotFound when the voter has no
	// nomination in the election, regardless of status.
	GetByNominator(ctx context.Context, electionID string, nominatorID string) (entities.Nomination, error)
	ListByElection(ctx context.Context, electionID string) ([]entities.Nomination, error)
	CreateNomination(ctx context.Context, nomination entities.Nomination) error
	// Resubmit overwrites the nominee fields of an existing row and
	// resets status to pending, clearing any rejection and promotion.
	Resubmit(ctx context.Context, nomination entities.Nomination) error
	// Reject persists status, rejection_reason, promoted, promoted_at.
	Reject(ctx context.Context, id string, reason string) error
	DeleteNomination(ctx context.Context, id string) error
	// Promote finds or creates the official candidate for the nominee in
	// one transaction, backfills a missing candidate photo from the
	// nomination, and marks the nomination promoted. created reports
	// whether a new candidate row was minted.
	Promote(ctx context.Context, nomination entities.Nomination, candidateID string, at time.Time) (candidate entities.Candidate, created bool, err error)
}

// CandidateVotes pairs a candidate with its current vote count.
type CandidateVotes struct {
	Candidate entities.Candidate
	Votes     int
}

type CandidateRepository interface {
	// GetOfficialCandidate returns ErrCandidateNotFound for unknown ids
	// and for unofficial rows alike.
	GetOfficialCandidate(ctx context.Context, id string) (entities.Candidate, error)
	// ListOfficialWithVotes returns official candidates for the election
	// ordered by position display order then full name. positionID
	// narrows to one position when non-empty.
	ListOfficialWithVotes(ctx context.Context, electionID string, positionID string) ([]CandidateVotes, error)
	// SetPhoto persists only the photo_path column; nil clears it.
	SetPhoto(ctx context.Context, id string, photoPath *string) error
}

// ElectionState is the projection of the active election this context
// needs: identity plus resolved phase.
type ElectionState struct {
	ElectionID string
	Phase      schedule.Phase
}

// ElectionReader resolves the active election, returning
// ErrNoActiveElection when nothing is active.
type ElectionReader interface {
	ActiveElection(ctx context.Context) (ElectionState, error)
}

// PositionInfo is the slice of a position this context needs for
// validation and notification copy.
type PositionInfo struct {
	ID          string
	Name        string
	DisplayName string
}

type PositionReader interface {
	// GetActivePosition returns ErrInvalidPosition when the position does
	// not belong to the election or is inactive.
	GetActivePosition(ctx context.Context, electionID string, positionID string) (PositionInfo, error)
}

// NotificationRecord mirrors the engagement context's append shape. An
// empty VoterID routes the item to the admin inbox.
type NotificationRecord struct {
	Type    string
	Message string
	VoterID string
}

type NotificationWriter interface {
	Append(ctx context.Context, record NotificationRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
