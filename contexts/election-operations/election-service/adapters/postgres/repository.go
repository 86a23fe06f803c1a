package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alumvote/contexts/election-operations/election-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/election-service/domain/errors"
	"alumvote/contexts/election-operations/election-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type electionModel struct {
	ID                 string     `gorm:"column:id;primaryKey"`
	Name               string     `gorm:"column:name"`
	Description        string     `gorm:"column:description"`
	NominationStart    *time.Time `gorm:"column:nomination_start"`
	NominationEnd      *time.Time `gorm:"column:nomination_end"`
	VotingStart        *time.Time `gorm:"column:voting_start"`
	VotingEnd          *time.Time `gorm:"column:voting_end"`
	ResultsAt          *time.Time `gorm:"column:results_at"`
	AutoPublishResults bool       `gorm:"column:auto_publish_results"`
	ResultsPublished   bool       `gorm:"column:results_published"`
	ResultsPublishedAt *time.Time `gorm:"column:results_published_at"`
	IsActive           bool       `gorm:"column:is_active;index"`
	Mode               string     `gorm:"column:mode"`
	DemoPhase          string     `gorm:"column:demo_phase"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
}

func (electionModel) TableName() string { return "elections" }

func (m electionModel) toEntity() entities.Election {
	return entities.Election{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		NominationStart:    m.NominationStart,
		NominationEnd:      m.NominationEnd,
		VotingStart:        m.VotingStart,
		VotingEnd:          m.VotingEnd,
		ResultsAt:          m.ResultsAt,
		AutoPublishResults: m.AutoPublishResults,
		ResultsPublished:   m.ResultsPublished,
		ResultsPublishedAt: m.ResultsPublishedAt,
		IsActive:           m.IsActive,
		Mode:               m.Mode,
		DemoPhase:          m.DemoPhase,
		CreatedAt:          m.CreatedAt,
	}
}

type positionModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	ElectionID   string `gorm:"column:election_id;index"`
	Name         string `gorm:"column:name"`
	Seats        int    `gorm:"column:seats"`
	DisplayOrder int    `gorm:"column:display_order"`
	IsActive     bool   `gorm:"column:is_active"`
}

func (positionModel) TableName() string { return "positions" }

func (m positionModel) toEntity() entities.Position {
	return entities.Position{
		ID:           m.ID,
		ElectionID:   m.ElectionID,
		Name:         m.Name,
		Seats:        m.Seats,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
	}
}

type reminderModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ElectionID string    `gorm:"column:election_id;index"`
	RemindAt   time.Time `gorm:"column:remind_at"`
	Note       string    `gorm:"column:note"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reminderModel) TableName() string { return "election_reminders" }

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

// AutoMigrate creates the elections, positions, and election_reminders
// tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&electionModel{}, &positionModel{}, &reminderModel{})
}

func (r *Repository) GetElection(ctx context.Context, id string) (entities.Election, error) {
	var row electionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Election{}, domainerrors.ErrNoElection
		}
		return entities.Election{}, r.logError("election_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetActiveElection(ctx context.Context) (entities.Election, error) {
	var row electionModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Election{}, domainerrors.ErrNoActiveElection
		}
		return entities.Election{}, r.logError("election_repo_active_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetLatestElection(ctx context.Context) (entities.Election, error) {
	var row electionModel
	err := r.db.WithContext(ctx).
		Order("nomination_start DESC NULLS LAST, created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Election{}, domainerrors.ErrNoElection
		}
		return entities.Election{}, r.logError("election_repo_latest_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateElection(ctx context.Context, election entities.Election) error {
	row := electionModel{
		ID:                 election.ID,
		Name:               election.Name,
		Description:        election.Description,
		NominationStart:    election.NominationStart,
		NominationEnd:      election.NominationEnd,
		VotingStart:        election.VotingStart,
		VotingEnd:          election.VotingEnd,
		ResultsAt:          election.ResultsAt,
		AutoPublishResults: election.AutoPublishResults,
		ResultsPublished:   election.ResultsPublished,
		ResultsPublishedAt: election.ResultsPublishedAt,
		IsActive:           election.IsActive,
		Mode:               election.Mode,
		DemoPhase:          election.DemoPhase,
		CreatedAt:          election.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("election_repo_create_failed", err, "election_id", election.ID)
	}
	return nil
}

func (r *Repository) UpdateElection(ctx context.Context, id string, update ports.ElectionUpdate) error {
	columns := updateColumns(update)
	if len(columns) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&electionModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return r.logError("election_repo_update_failed", result.Error, "election_id", id)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNoElection
	}
	return nil
}

func (r *Repository) ActivateExclusive(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&electionModel{}).
			Where("id <> ? AND is_active = ?", id, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&electionModel{}).
			Where("id = ?", id).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNoElection
		}
		return nil
	})
	if err != nil && !errors.Is(err, domainerrors.ErrNoElection) {
		return r.logError("election_repo_activate_failed", err, "election_id", id)
	}
	return err
}

func (r *Repository) ListPositions(ctx context.Context, electionID string, activeOnly bool) ([]entities.Position, error) {
	query := r.db.WithContext(ctx).Where("election_id = ?", electionID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []positionModel
	if err := query.Order("display_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("position_repo_list_failed", err, "election_id", electionID)
	}
	positions := make([]entities.Position, 0, len(rows))
	for _, row := range rows {
		positions = append(positions, row.toEntity())
	}
	return positions, nil
}

func (r *Repository) CreatePosition(ctx context.Context, position entities.Position) error {
	row := positionModel{
		ID:           position.ID,
		ElectionID:   position.ElectionID,
		Name:         position.Name,
		Seats:        position.Seats,
		DisplayOrder: position.DisplayOrder,
		IsActive:     position.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("position_repo_create_failed", err, "election_id", position.ElectionID)
	}
	return nil
}

func (r *Repository) ListReminders(ctx context.Context, electionID string) ([]entities.Reminder, error) {
	var rows []reminderModel
	err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("remind_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("reminder_repo_list_failed", err, "election_id", electionID)
	}
	reminders := make([]entities.Reminder, 0, len(rows))
	for _, row := range rows {
		reminders = append(reminders, entities.Reminder{
			ID:         row.ID,
			ElectionID: row.ElectionID,
			RemindAt:   row.RemindAt,
			Note:       row.Note,
			CreatedAt:  row.CreatedAt,
		})
	}
	return reminders, nil
}

func (r *Repository) CreateReminder(ctx context.Context, reminder entities.Reminder) error {
	row := reminderModel{
		ID:         reminder.ID,
		ElectionID: reminder.ElectionID,
		RemindAt:   reminder.RemindAt,
		Note:       reminder.Note,
		CreatedAt:  reminder.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("reminder_repo_create_failed", err, "election_id", reminder.ElectionID)
	}
	return nil
}

func updateColumns(update ports.ElectionUpdate) map[string]any {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Mode != nil {
		columns["mode"] = *update.Mode
	}
	if update.DemoPhase != nil {
		columns["demo_phase"] = *update.DemoPhase
	}
	applyPatch(columns, "nomination_start", update.NominationStart)
	applyPatch(columns, "nomination_end", update.NominationEnd)
	applyPatch(columns, "voting_start", update.VotingStart)
	applyPatch(columns, "voting_end", update.VotingEnd)
	applyPatch(columns, "results_at", update.ResultsAt)
	applyPatch(columns, "results_published_at", update.ResultsPublishedAt)
	if update.IsActive != nil {
		columns["is_active"] = *update.IsActive
	}
	if update.AutoPublishResults != nil {
		columns["auto_publish_results"] = *update.AutoPublishResults
	}
	if update.ResultsPublished != nil {
		columns["results_published"] = *update.ResultsPublished
	}
	return columns
}

func applyPatch(columns map[string]any, name string, patch ports.TimePatch) {
	if !patch.Set {
		return
	}
	if patch.Value == nil {
		columns[name] = nil
		return
	}
	columns[name] = *patch.Value
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "election-operations/election-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("election repository operation failed", fields...)
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
