package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alumvote/contexts/engagement/notification-service/domain/entities"
	domainerrors "alumvote/contexts/engagement/notification-service/domain/errors"

	"github.com/google/uuid"
)

// Store is an in-memory notification repository for tests and local
// runs.
type Store struct {
	mu            sync.RWMutex
	notifications map[string]entities.Notification
}

func NewStore() *Store {
	return &Store{notifications: make(map[string]entities.Notification)}
}

func (s *Store) CreateNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[notification.ID] = notification
	return nil
}

func (s *Store) GetNotification(_ context.Context, scope string, id string) (entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notification, ok := s.notifications[id]
	if !ok || notification.VoterID != scope {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}
	return notification, nil
}

func (s *Store) ListInbox(_ context.Context, scope string, includeHidden bool, limit int) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notifications []entities.Notification
	for _, notification := range s.notifications {
		if notification.VoterID != scope {
			continue
		}
		if notification.IsHidden && !includeHidden {
			continue
		}
		notifications = append(notifications, notification)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (s *Store) CountUnread(_ context.Context, scope string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, notification := range s.notifications {
		if notification.VoterID == scope && !notification.IsRead && !notification.IsHidden {
			count++
		}
	}
	return count, nil
}

func (s *Store) MarkRead(_ context.Context, scope string, id string) error {
	return s.update(scope, id, func(notification *entities.Notification) {
		notification.IsRead = true
	})
}

func (s *Store) MarkAllRead(_ context.Context, scope string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var affected int64
	for id, notification := range s.notifications {
		if notification.VoterID == scope && !notification.IsRead {
			notification.IsRead = true
			s.notifications[id] = notification
			affected++
		}
	}
	return affected, nil
}

func (s *Store) Dismiss(_ context.Context, scope string, id string) error {
	return s.update(scope, id, func(notification *entities.Notification) {
		notification.IsHidden = true
		notification.IsRead = true
	})
}

func (s *Store) DeleteNotification(_ context.Context, scope string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[id]
	if !ok || notification.VoterID != scope {
		return domainerrors.ErrNotificationNotFound
	}
	delete(s.notifications, id)
	return nil
}

func (s *Store) DeleteAll(_ context.Context, scope string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var affected int64
	for id, notification := range s.notifications {
		if notification.VoterID == scope {
			delete(s.notifications, id)
			affected++
		}
	}
	return affected, nil
}

func (s *Store) update(scope string, id string, apply func(*entities.Notification)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[id]
	if !ok || notification.VoterID != scope {
		return domainerrors.ErrNotificationNotFound
	}
	apply(&notification)
	s.notifications[id] = notification
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
