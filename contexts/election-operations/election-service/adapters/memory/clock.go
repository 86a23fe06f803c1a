package memory

import (
	"context"
	"time"

	"alumvote/contexts/election-operations/election-service/ports"

	"github.com/google/uuid"
)

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// Unwired stands in for the cross-context tally, turnout, and purge ports
// when no ballot, nomination, or voter store is attached.
type Unwired struct{}

func (Unwired) TallyByPosition(_ context.Context, _ string) ([]ports.CandidateTally, error) {
	return nil, nil
}

func (Unwired) CountVoters(_ context.Context) (int, int, error) { return 0, 0, nil }

func (Unwired) DeleteVotesByPositions(_ context.Context, _ []string) (int64, error) {
	return 0, nil
}

func (Unwired) DeleteNominationsByElection(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (Unwired) ResetAllVoters(_ context.Context) (int, error) { return 0, nil }
