package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumvote/contexts/election-operations/election-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/election-service/domain/errors"
	"alumvote/contexts/election-operations/election-service/ports"
)

// Store is an in-memory election, position, and reminder repository for
// tests and local runs.
type Store struct {
	mu        sync.RWMutex
	elections map[string]entities.Election
	positions map[string]entities.Position
	reminders map[string]entities.Reminder
}

func NewStore() *Store {
	return &Store{
		elections: make(map[string]entities.Election),
		positions: make(map[string]entities.Position),
		reminders: make(map[string]entities.Reminder),
	}
}

func (s *Store) GetElection(_ context.Context, id string) (entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	election, ok := s.elections[id]
	if !ok {
		return entities.Election{}, domainerrors.ErrNoElection
	}
	return election, nil
}

func (s *Store) GetActiveElection(_ context.Context) (entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *entities.Election
	for _, election := range s.elections {
		if !election.IsActive {
			continue
		}
		e := election
		if found == nil || e.CreatedAt.After(found.CreatedAt) {
			found = &e
		}
	}
	if found == nil {
		return entities.Election{}, domainerrors.ErrNoActiveElection
	}
	return *found, nil
}

func (s *Store) GetLatestElection(_ context.Context) (entities.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	elections := make([]entities.Election, 0, len(s.elections))
	for _, election := range s.elections {
		elections = append(elections, election)
	}
	if len(elections) == 0 {
		return entities.Election{}, domainerrors.ErrNoElection
	}
	sort.Slice(elections, func(i, j int) bool {
		a, b := elections[i], elections[j]
		switch {
		case a.NominationStart != nil && b.NominationStart != nil:
			if !a.NominationStart.Equal(*b.NominationStart) {
				return a.NominationStart.After(*b.NominationStart)
			}
		case a.NominationStart != nil:
			return true
		case b.NominationStart != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return elections[0], nil
}

func (s *Store) CreateElection(_ context.Context, election entities.Election) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elections[election.ID] = election
	return nil
}

func (s *Store) UpdateElection(_ context.Context, id string, update ports.ElectionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	election, ok := s.elections[id]
	if !ok {
		return domainerrors.ErrNoElection
	}
	if update.Name != nil {
		election.Name = *update.Name
	}
	if update.Description != nil {
		election.Description = *update.Description
	}
	if update.Mode != nil {
		election.Mode = *update.Mode
	}
	if update.DemoPhase != nil {
		election.DemoPhase = *update.DemoPhase
	}
	applyPatch(&election.NominationStart, update.NominationStart)
	applyPatch(&election.NominationEnd, update.NominationEnd)
	applyPatch(&election.VotingStart, update.VotingStart)
	applyPatch(&election.VotingEnd, update.VotingEnd)
	applyPatch(&election.ResultsAt, update.ResultsAt)
	applyPatch(&election.ResultsPublishedAt, update.ResultsPublishedAt)
	if update.IsActive != nil {
		election.IsActive = *update.IsActive
	}
	if update.AutoPublishResults != nil {
		election.AutoPublishResults = *update.AutoPublishResults
	}
	if update.ResultsPublished != nil {
		election.ResultsPublished = *update.ResultsPublished
	}
	s.elections[id] = election
	return nil
}

func (s *Store) ActivateExclusive(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.elections[id]
	if !ok {
		return domainerrors.ErrNoElection
	}
	for key, election := range s.elections {
		if key == id {
			continue
		}
		if election.IsActive {
			election.IsActive = false
			s.elections[key] = election
		}
	}
	target.IsActive = true
	s.elections[id] = target
	return nil
}

func (s *Store) ListPositions(_ context.Context, electionID string, activeOnly bool) ([]entities.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var positions []entities.Position
	for _, position := range s.positions {
		if position.ElectionID != electionID {
			continue
		}
		if activeOnly && !position.IsActive {
			continue
		}
		positions = append(positions, position)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].DisplayOrder != positions[j].DisplayOrder {
			return positions[i].DisplayOrder < positions[j].DisplayOrder
		}
		return positions[i].Name < positions[j].Name
	})
	return positions, nil
}

func (s *Store) CreatePosition(_ context.Context, position entities.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[position.ID] = position
	return nil
}

func (s *Store) ListReminders(_ context.Context, electionID string) ([]entities.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var reminders []entities.Reminder
	for _, reminder := range s.reminders {
		if reminder.ElectionID == electionID {
			reminders = append(reminders, reminder)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
	return reminders, nil
}

func (s *Store) CreateReminder(_ context.Context, reminder entities.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[reminder.ID] = reminder
	return nil
}

func applyPatch(field **time.Time, patch ports.TimePatch) {
	if !patch.Set {
		return
	}
	if patch.Value == nil {
		*field = nil
		return
	}
	value := *patch.Value
	*field = &value
}
