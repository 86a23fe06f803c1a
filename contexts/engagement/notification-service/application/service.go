package application

import (
	"context"
	"log/slog"
	"strings"

	"alumvote/contexts/engagement/notification-service/domain/entities"
	domainerrors "alumvote/contexts/engagement/notification-service/domain/errors"
	"alumvote/contexts/engagement/notification-service/ports"
)

// inboxLimit caps how many items one inbox read returns.
const inboxLimit = 100

const (
	ActionMarkRead    = "mark_read"
	ActionMarkAllRead = "mark_all_read"
	ActionDismiss     = "dismiss"
	ActionDelete      = "delete"
	ActionDeleteAll   = "delete_all"
)

// Service manages the append-only notification feed. A scope is a
// voter id, or "" for the shared admin inbox; every read and action is
// confined to its scope.
type Service struct {
	Notifications ports.NotificationRepository
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

type AppendInput struct {
	Type    string
	Message string
	VoterID string
}

// Inbox is one scope's view of the feed.
type Inbox struct {
	Notifications []entities.Notification
	Unread        int
}

// Append records a new notification. Other contexts reach this through
// their notification writer ports.
func (s Service) Append(ctx context.Context, input AppendInput) (entities.Notification, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return entities.Notification{}, domainerrors.ErrMessageRequired
	}
	kind := strings.TrimSpace(input.Type)
	if kind == "" {
		kind = "info"
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Notification{}, err
	}
	notification := entities.Notification{
		ID:        id,
		Type:      kind,
		Message:   message,
		VoterID:   input.VoterID,
		CreatedAt: s.Clock.Now().UTC(),
	}
	if err := s.Notifications.CreateNotification(ctx, notification); err != nil {
		return entities.Notification{}, err
	}
	ResolveLogger(s.Logger).Info("notification appended",
		"event", "notification_appended",
		"module", "engagement/notification-service",
		"layer", "application",
		"notification_id", notification.ID,
		"type", notification.Type,
	)
	return notification, nil
}

// ReadInbox returns the scope's newest notifications and its unread
// count. history includes dismissed items.
func (s Service) ReadInbox(ctx context.Context, scope string, history bool) (Inbox, error) {
	notifications, err := s.Notifications.ListInbox(ctx, scope, history, inboxLimit)
	if err != nil {
		return Inbox{}, err
	}
	unread, err := s.Notifications.CountUnread(ctx, scope)
	if err != nil {
		return Inbox{}, err
	}
	return Inbox{Notifications: notifications, Unread: unread}, nil
}

// Act applies one inbox action inside the scope. Single-item actions
// need an id; the bulk actions ignore it. affected reports how many
// rows changed.
func (s Service) Act(ctx context.Context, scope string, action string, notificationID string) (affected int64, err error) {
	switch action {
	case ActionMarkRead:
		if err := s.mustOwn(ctx, scope, notificationID); err != nil {
			return 0, err
		}
		return 1, s.Notifications.MarkRead(ctx, scope, notificationID)
	case ActionMarkAllRead:
		return s.Notifications.MarkAllRead(ctx, scope)
	case ActionDismiss:
		if err := s.mustOwn(ctx, scope, notificationID); err != nil {
			return 0, err
		}
		return 1, s.Notifications.Dismiss(ctx, scope, notificationID)
	case ActionDelete:
		if err := s.mustOwn(ctx, scope, notificationID); err != nil {
			return 0, err
		}
		return 1, s.Notifications.DeleteNotification(ctx, scope, notificationID)
	case ActionDeleteAll:
		return s.Notifications.DeleteAll(ctx, scope)
	default:
		return 0, domainerrors.ErrInvalidAction
	}
}

func (s Service) mustOwn(ctx context.Context, scope string, notificationID string) error {
	_, err := s.Notifications.GetNotification(ctx, scope, notificationID)
	return err
}
