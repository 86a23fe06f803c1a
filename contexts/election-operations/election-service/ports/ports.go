package ports

import (
	"context"
	"time"

	"alumvote/contexts/election-operations/election-service/domain/entities"
)

// TimePatch is a tri-state timestamp change: absent (Set false), explicit
// clear (Set true, Value nil), or a new value.
type TimePatch struct {
	Set   bool
	Value *time.Time
}

// ElectionUpdate names exactly the columns an update intends to persist;
// nil pointer fields and unset patches are left untouched.
type ElectionUpdate struct {
	Name               *string
	Description        *string
	Mode               *string
	DemoPhase          *string
	NominationStart    TimePatch
	NominationEnd      TimePatch
	VotingStart        TimePatch
	VotingEnd          TimePatch
	ResultsAt          TimePatch
	IsActive           *bool
	AutoPublishResults *bool
	ResultsPublished   *bool
	ResultsPublishedAt TimePatch
}

// Empty reports whether the update would touch no columns.
func (u ElectionUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Mode == nil &&
		u.DemoPhase == nil && !u.NominationStart.Set && !u.NominationEnd.Set &&
		!u.VotingStart.Set && !u.VotingEnd.Set && !u.ResultsAt.Set &&
		u.IsActive == nil && u.AutoPublishResults == nil &&
		u.ResultsPublished == nil && !u.ResultsPublishedAt.Set
}

type ElectionRepository interface {
	GetElection(ctx context.Context, id string) (entities.Election, error)
	// GetActiveElection returns ErrNoActiveElection when nothing is active.
	GetActiveElection(ctx context.Context) (entities.Election, error)
	// GetLatestElection orders by nomination_start then creation, newest
	// first, and returns ErrNoElection on an empty table.
	GetLatestElection(ctx context.Context) (entities.Election, error)
	CreateElection(ctx context.Context, election entities.Election) error
	UpdateElection(ctx context.Context, id string, update ElectionUpdate) error
	// ActivateExclusive flips the election active and deactivates every
	// other election in the same transaction.
	ActivateExclusive(ctx context.Context, id string) error
}

type PositionRepository interface {
	// ListPositions orders by display_order then name.
	ListPositions(ctx context.Context, electionID string, activeOnly bool) ([]entities.Position, error)
	CreatePosition(ctx context.Context, position entities.Position) error
}

type ReminderRepository interface {
	ListReminders(ctx context.Context, electionID string) ([]entities.Reminder, error)
	CreateReminder(ctx context.Context, reminder entities.Reminder) error
}

// CandidateTally is a read-model row contributed by the ballot context.
type CandidateTally struct {
	CandidateID   string
	FullName      string
	BatchYear     int
	CampusChapter string
	PhotoPath     string
	Votes         int
}

// TallyReader counts votes per official candidate for one position,
// ordered by full name.
type TallyReader interface {
	TallyByPosition(ctx context.Context, positionID string) ([]CandidateTally, error)
}

// TurnoutReader reports voter totals for the stats endpoint.
type TurnoutReader interface {
	CountVoters(ctx context.Context) (total int, voted int, err error)
}

// BallotPurger and NominationPurger delete per-election artifacts during a
// full reset. Both report how many rows went away.
type BallotPurger interface {
	DeleteVotesByPositions(ctx context.Context, positionIDs []string) (int64, error)
}

type NominationPurger interface {
	DeleteNominationsByElection(ctx context.Context, electionID string) (int64, error)
}

// VoterResetter clears has_voted and sessions for every voter.
type VoterResetter interface {
	ResetAllVoters(ctx context.Context) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
