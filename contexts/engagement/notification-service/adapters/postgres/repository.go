package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alumvote/contexts/engagement/notification-service/domain/entities"
	domainerrors "alumvote/contexts/engagement/notification-service/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Type      string    `gorm:"column:type"`
	Message   string    `gorm:"column:message"`
	VoterID   *string   `gorm:"column:voter_id;index"`
	IsRead    bool      `gorm:"column:is_read"`
	IsHidden  bool      `gorm:"column:is_hidden"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (notificationModel) TableName() string { return "notifications" }

func (m notificationModel) toEntity() entities.Notification {
	voterID := ""
	if m.VoterID != nil {
		voterID = *m.VoterID
	}
	return entities.Notification{
		ID:        m.ID,
		Type:      m.Type,
		Message:   m.Message,
		VoterID:   voterID,
		IsRead:    m.IsRead,
		IsHidden:  m.IsHidden,
		CreatedAt: m.CreatedAt,
	}
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the notifications table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&notificationModel{})
}

func (r *Repository) CreateNotification(ctx context.Context, notification entities.Notification) error {
	row := notificationModel{
		ID:        notification.ID,
		Type:      notification.Type,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		IsHidden:  notification.IsHidden,
		CreatedAt: notification.CreatedAt,
	}
	if notification.VoterID != "" {
		voterID := notification.VoterID
		row.VoterID = &voterID
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("notification_repo_create_failed", err)
	}
	return nil
}

func (r *Repository) GetNotification(ctx context.Context, scope string, id string) (entities.Notification, error) {
	var row notificationModel
	err := r.scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Notification{}, domainerrors.ErrNotificationNotFound
		}
		return entities.Notification{}, r.logError("notification_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListInbox(ctx context.Context, scope string, includeHidden bool, limit int) ([]entities.Notification, error) {
	query := r.scoped(r.db.WithContext(ctx), scope)
	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}
	var rows []notificationModel
	err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, r.logError("notification_repo_list_failed", err)
	}
	notifications := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toEntity())
	}
	return notifications, nil
}

func (r *Repository) CountUnread(ctx context.Context, scope string) (int, error) {
	var count int64
	err := r.scoped(r.db.WithContext(ctx).Model(&notificationModel{}), scope).
		Where("is_read = ? AND is_hidden = ?", false, false).
		Count(&count).
		Error
	if err != nil {
		return 0, r.logError("notification_repo_count_failed", err)
	}
	return int(count), nil
}

func (r *Repository) MarkRead(ctx context.Context, scope string, id string) error {
	return r.updateScoped(ctx, scope, id, map[string]any{"is_read": true})
}

func (r *Repository) MarkAllRead(ctx context.Context, scope string) (int64, error) {
	result := r.scoped(r.db.WithContext(ctx).Model(&notificationModel{}), scope).
		Where("is_read = ?", false).
		Updates(map[string]any{"is_read": true})
	if result.Error != nil {
		return 0, r.logError("notification_repo_mark_all_failed", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) Dismiss(ctx context.Context, scope string, id string) error {
	return r.updateScoped(ctx, scope, id, map[string]any{"is_hidden": true, "is_read": true})
}

func (r *Repository) DeleteNotification(ctx context.Context, scope string, id string) error {
	result := r.scoped(r.db.WithContext(ctx), scope).Where("id = ?", id).Delete(&notificationModel{})
	if result.Error != nil {
		return r.logError("notification_repo_delete_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context, scope string) (int64, error) {
	result := r.scoped(r.db.WithContext(ctx), scope).Delete(&notificationModel{})
	if result.Error != nil {
		return 0, r.logError("notification_repo_delete_all_failed", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) updateScoped(ctx context.Context, scope string, id string, columns map[string]any) error {
	result := r.scoped(r.db.WithContext(ctx).Model(&notificationModel{}), scope).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return r.logError("notification_repo_update_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

// scoped narrows a query to one voter's rows, or to the admin inbox
// (NULL voter_id) when scope is empty.
func (r *Repository) scoped(query *gorm.DB, scope string) *gorm.DB {
	if scope == "" {
		return query.Where("voter_id IS NULL")
	}
	return query.Where("voter_id = ?", scope)
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "engagement/notification-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("notification repository operation failed", fields...)
	return err
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
