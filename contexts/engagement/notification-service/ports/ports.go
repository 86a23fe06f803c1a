package ports

import (
	"context"
	"time"

	"alumvote/contexts/engagement/notification-service/domain/entities"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification entities.Notification) error
	// GetNotification returns ErrNotificationNotFound when the id does not
	// exist in the given scope (a voter id, or "" for the admin inbox).
	GetNotification(ctx context.Context, scope string, id string) (entities.Notification, error)
	// ListInbox returns the scope's newest notifications up to limit.
	// Hidden items are skipped unless includeHidden is set.
	ListInbox(ctx context.Context, scope string, includeHidden bool, limit int) ([]entities.Notification, error)
	// CountUnread counts visible unread notifications in the scope.
	CountUnread(ctx context.Context, scope string) (int, error)
	MarkRead(ctx context.Context, scope string, id string) error
	MarkAllRead(ctx context.Context, scope string) (int64, error)
	// Dismiss hides the notification and marks it read.
	Dismiss(ctx context.Context, scope string, id string) error
	DeleteNotification(ctx context.Context, scope string, id string) error
	DeleteAll(ctx context.Context, scope string) (int64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
