package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumvote/contexts/election-operations/ballot-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	"alumvote/contexts/election-operations/ballot-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory vote repository for tests and local runs. The
// position and candidate names returned by ListVotesByVoter come from
// the lookup tables seeded by the test.
type Store struct {
	mu             sync.Mutex
	votes          map[string]entities.Vote
	byVoterPos     map[string]string
	voted          map[string]bool
	positionNames  map[string]string
	candidateNames map[string]string
}

func NewStore() *Store {
	return &Store{
		votes:          make(map[string]entities.Vote),
		byVoterPos:     make(map[string]string),
		voted:          make(map[string]bool),
		positionNames:  make(map[string]string),
		candidateNames: make(map[string]string),
	}
}

// SeedNames installs the position and candidate name lookups used by
// ListVotesByVoter.
func (s *Store) SeedNames(positionNames map[string]string, candidateNames map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, name := range positionNames {
		s.positionNames[id] = name
	}
	for id, name := range candidateNames {
		s.candidateNames[id] = name
	}
}

// HasVoted reports whether CastBallot flipped the voter's flag.
func (s *Store) HasVoted(voterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voted[voterID]
}

func (s *Store) CastBallot(_ context.Context, voterID string, votes []entities.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vote := range votes {
		if _, ok := s.byVoterPos[voterID+"/"+vote.PositionID]; ok {
			return domainerrors.ErrDuplicateVote
		}
	}
	for _, vote := range votes {
		s.votes[vote.ID] = vote
		s.byVoterPos[voterID+"/"+vote.PositionID] = vote.ID
	}
	s.voted[voterID] = true
	return nil
}

func (s *Store) ListVotesByVoter(_ context.Context, voterID string) ([]ports.VoteDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var details []ports.VoteDetail
	for _, vote := range s.votes {
		if vote.VoterID != voterID {
			continue
		}
		details = append(details, ports.VoteDetail{
			Vote:          vote,
			PositionName:  s.positionNames[vote.PositionID],
			CandidateName: s.candidateNames[vote.CandidateID],
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Vote.PositionID < details[j].Vote.PositionID
	})
	return details, nil
}

func (s *Store) DeleteVotesByPositions(_ context.Context, positionIDs []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	targets := make(map[string]bool, len(positionIDs))
	for _, id := range positionIDs {
		targets[id] = true
	}
	var deleted int64
	for id, vote := range s.votes {
		if targets[vote.PositionID] {
			delete(s.votes, id)
			delete(s.byVoterPos, vote.VoterID+"/"+vote.PositionID)
			deleted++
		}
	}
	return deleted, nil
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
