package ports

import (
	"context"
	"time"

	"alumvote/contexts/election-operations/ballot-service/domain/entities"
	"alumvote/contracts/schedule"
)

// VoteDetail decorates a vote with the names a voter recognizes.
type VoteDetail struct {
	Vote          entities.Vote
	PositionName  string
	CandidateName string
}

type VoteRepository interface {
	// CastBallot persists every vote and flips the voter's has_voted flag
	// in one transaction. It re-checks per-position duplicates inside the
	// transaction and returns ErrDuplicateVote when any position already
	// has a vote from this voter, leaving nothing written.
	CastBallot(ctx context.Context, voterID string, votes []entities.Vote) error
	ListVotesByVoter(ctx context.Context, voterID string) ([]VoteDetail, error)
	// DeleteVotesByPositions removes every vote for the given positions,
	// reporting how many rows went away.
	DeleteVotesByPositions(ctx context.Context, positionIDs []string) (int64, error)
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

type PositionInfo struct {
	ID          string
	Name        string
	DisplayName string
}

type PositionReader interface {
	// ListActivePositions returns the election's active positions in
	// display order. A complete ballot covers exactly this set.
	ListActivePositions(ctx context.Context, electionID string) ([]PositionInfo, error)
}

// CandidateInfo is the slice of a candidate needed to validate a
// selection.
type CandidateInfo struct {
	ID         string
	PositionID string
	FullName   string
	IsOfficial bool
}

type CandidateReader interface {
	// GetOfficialCandidate returns ErrInvalidCandidate for unknown ids
	// and for unofficial rows alike.
	GetOfficialCandidate(ctx context.Context, candidateID string) (CandidateInfo, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
