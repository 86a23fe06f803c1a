package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"alumvote/contexts/identity-access/session-service/domain/entities"
	domainerrors "alumvote/contexts/identity-access/session-service/domain/errors"
)

// Store is an in-memory voter and admin repository for tests and local runs.
type Store struct {
	mu     sync.RWMutex
	voters map[string]entities.Voter
	admins map[string]entities.AdminAccount
}

func NewStore() *Store {
	return &Store{
		voters: make(map[string]entities.Voter),
		admins: make(map[string]entities.AdminAccount),
	}
}

// SeedAdmin installs an admin account, keyed by id.
func (s *Store) SeedAdmin(admin entities.AdminAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[admin.ID] = admin
}

func (s *Store) GetVoterByID(_ context.Context, id string) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voter, ok := s.voters[id]
	if !ok {
		return entities.Voter{}, domainerrors.ErrVoterNotFound
	}
	return voter, nil
}

func (s *Store) GetVoterByVoterID(_ context.Context, voterID string) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, voter := range s.voters {
		if voter.VoterID == voterID {
			return voter, nil
		}
	}
	return entities.Voter{}, domainerrors.ErrVoterNotFound
}

func (s *Store) GetVoterBySessionToken(_ context.Context, token string) (entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, voter := range s.voters {
		if voter.SessionToken != "" && voter.SessionToken == token {
			return voter, nil
		}
	}
	return entities.Voter{}, domainerrors.ErrVoterNotFound
}

func (s *Store) ListVotersByBatchYear(_ context.Context, batchYear int) ([]entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var voters []entities.Voter
	for _, voter := range s.voters {
		if voter.BatchYear == batchYear {
			voters = append(voters, voter)
		}
	}
	sortVoters(voters)
	return voters, nil
}

func (s *Store) ListVoters(_ context.Context) ([]entities.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voters := make([]entities.Voter, 0, len(s.voters))
	for _, voter := range s.voters {
		voters = append(voters, voter)
	}
	sortVoters(voters)
	return voters, nil
}

func (s *Store) CreateVoter(_ context.Context, voter entities.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.voters {
		if existing.VoterID == voter.VoterID {
			return domainerrors.ErrVoterIDTaken
		}
	}
	s.voters[voter.ID] = voter
	return nil
}

func (s *Store) UpdateSession(_ context.Context, id string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[id]
	if !ok {
		return domainerrors.ErrVoterNotFound
	}
	voter.SessionToken = token
	s.voters[id] = voter
	return nil
}

func (s *Store) ReactivateForQuickEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[id]
	if !ok {
		return domainerrors.ErrVoterNotFound
	}
	voter.IsActive = true
	voter.PrivacyConsent = true
	s.voters[id] = voter
	return nil
}

func (s *Store) ResetVoter(_ context.Context, id string, pinHash *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[id]
	if !ok {
		return domainerrors.ErrVoterNotFound
	}
	voter.HasVoted = false
	voter.IsActive = true
	voter.SessionToken = ""
	if pinHash != nil {
		voter.PINHash = *pinHash
	}
	s.voters[id] = voter
	return nil
}

func (s *Store) GetAdminByUsername(_ context.Context, username string) (entities.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return entities.AdminAccount{}, domainerrors.ErrAdminInvalidCredentials
}

func (s *Store) GetAdminByID(_ context.Context, id string) (entities.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admin, ok := s.admins[id]
	if !ok {
		return entities.AdminAccount{}, domainerrors.ErrAdminUnauthenticated
	}
	return admin, nil
}

func sortVoters(voters []entities.Voter) {
	sort.Slice(voters, func(i, j int) bool {
		return strings.ToLower(voters[i].Name) < strings.ToLower(voters[j].Name)
	})
}
