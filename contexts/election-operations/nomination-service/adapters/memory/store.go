package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumvote/contexts/election-operations/nomination-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	"alumvote/contexts/election-operations/nomination-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory nomination and candidate repository for tests
// and local runs. Vote counts are set directly by tests.
type Store struct {
	mu          sync.RWMutex
	nominations map[string]entities.Nomination
	candidates  map[string]entities.Candidate
	votes       map[string]int
}

func NewStore() *Store {
	return &Store{
		nominations: make(map[string]entities.Nomination),
		candidates:  make(map[string]entities.Candidate),
		votes:       make(map[string]int),
	}
}

// SetVotes pins a candidate's vote count for listing assertions.
func (s *Store) SetVotes(candidateID string, votes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[candidateID] = votes
}

// SeedCandidate installs a candidate row directly.
func (s *Store) SeedCandidate(candidate entities.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[candidate.ID] = candidate
}

func (s *Store) GetNomination(_ context.Context, id string) (entities.Nomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nomination, ok := s.nominations[id]
	if !ok {
		return entities.Nomination{}, domainerrors.ErrNominationNotFound
	}
	return nomination, nil
}

func (s *Store) GetByNominator(_ context.Context, electionID string, nominatorID string) (entities.Nomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, nomination := range s.nominations {
		if nomination.ElectionID == electionID && nomination.NominatorID == nominatorID {
			return nomination, nil
		}
	}
	return entities.Nomination{}, domainerrors.ErrNominationNotFound
}

func (s *Store) ListByElection(_ context.Context, electionID string) ([]entities.Nomination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var nominations []entities.Nomination
	for _, nomination := range s.nominations {
		if nomination.ElectionID == electionID {
			nominations = append(nominations, nomination)
		}
	}
	sort.Slice(nominations, func(i, j int) bool {
		return nominations[i].CreatedAt.After(nominations[j].CreatedAt)
	})
	return nominations, nil
}

func (s *Store) CreateNomination(_ context.Context, nomination entities.Nomination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominations[nomination.ID] = nomination
	return nil
}

func (s *Store) Resubmit(_ context.Context, nomination entities.Nomination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nominations[nomination.ID]; !ok {
		return domainerrors.ErrNominationNotFound
	}
	s.nominations[nomination.ID] = nomination
	return nil
}

func (s *Store) Reject(_ context.Context, id string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	nomination, ok := s.nominations[id]
	if !ok {
		return domainerrors.ErrNominationNotFound
	}
	nomination.Status = entities.StatusRejected
	nomination.RejectionReason = reason
	nomination.Promoted = false
	nomination.PromotedAt = nil
	s.nominations[id] = nomination
	return nil
}

func (s *Store) DeleteNomination(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nominations[id]; !ok {
		return domainerrors.ErrNominationNotFound
	}
	delete(s.nominations, id)
	return nil
}

func (s *Store) Promote(_ context.Context, nomination entities.Nomination, candidateID string, at time.Time) (entities.Candidate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.nominations[nomination.ID]
	if !ok {
		return entities.Candidate{}, false, domainerrors.ErrNominationNotFound
	}

	var candidate entities.Candidate
	created := false
	for _, existing := range s.candidates {
		if existing.PositionID == nomination.PositionID &&
			existing.FullName == nomination.NomineeFullName && existing.IsOfficial {
			candidate = existing
			break
		}
	}
	if candidate.ID == "" {
		candidate = entities.Candidate{
			ID:                 candidateID,
			PositionID:         nomination.PositionID,
			FullName:           nomination.NomineeFullName,
			BatchYear:          nomination.NomineeBatchYear,
			CampusChapter:      nomination.NomineeCampusChapter,
			ContactEmail:       nomination.ContactEmail,
			ContactPhone:       nomination.ContactPhone,
			Bio:                nomination.Reason,
			PhotoPath:          nomination.PhotoPath,
			IsOfficial:         true,
			SourceNominationID: nomination.ID,
			CreatedAt:          at.UTC(),
		}
		created = true
	} else if candidate.PhotoPath == "" && nomination.PhotoPath != "" {
		candidate.PhotoPath = nomination.PhotoPath
	}
	s.candidates[candidate.ID] = candidate

	promotedAt := at
	stored.Promoted = true
	stored.PromotedAt = &promotedAt
	stored.Status = entities.StatusPromoted
	stored.RejectionReason = ""
	s.nominations[stored.ID] = stored
	return candidate, created, nil
}

func (s *Store) GetOfficialCandidate(_ context.Context, id string) (entities.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.candidates[id]
	if !ok || !candidate.IsOfficial {
		return entities.Candidate{}, domainerrors.ErrCandidateNotFound
	}
	return candidate, nil
}

func (s *Store) ListOfficialWithVotes(_ context.Context, _ string, positionID string) ([]ports.CandidateVotes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []ports.CandidateVotes
	for _, candidate := range s.candidates {
		if !candidate.IsOfficial {
			continue
		}
		if positionID != "" && candidate.PositionID != positionID {
			continue
		}
		results = append(results, ports.CandidateVotes{
			Candidate: candidate,
			Votes:     s.votes[candidate.ID],
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Candidate.FullName < results[j].Candidate.FullName
	})
	return results, nil
}

// TallyByPosition mirrors the sql tally helper so in-memory wiring can
// serve the election context's tally port.
func (s *Store) TallyByPosition(ctx context.Context, positionID string) ([]ports.CandidateVotes, error) {
	return s.ListOfficialWithVotes(ctx, "", positionID)
}

func (s *Store) SetPhoto(_ context.Context, id string, photoPath *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return domainerrors.ErrCandidateNotFound
	}
	if photoPath == nil {
		candidate.PhotoPath = ""
	} else {
		candidate.PhotoPath = *photoPath
	}
	s.candidates[id] = candidate
	return nil
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
