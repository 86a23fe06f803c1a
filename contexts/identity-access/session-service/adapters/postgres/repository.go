package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alumvote/contexts/identity-access/session-service/domain/entities"
	domainerrors "alumvote/contexts/identity-access/session-service/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type voterModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	VoterID        string    `gorm:"column:voter_id;uniqueIndex"`
	Name           string    `gorm:"column:name"`
	BatchYear      int       `gorm:"column:batch_year;index"`
	CampusChapter  string    `gorm:"column:campus_chapter"`
	Email          string    `gorm:"column:email"`
	Phone          string    `gorm:"column:phone"`
	PINHash        string    `gorm:"column:pin_hash"`
	PrivacyConsent bool      `gorm:"column:privacy_consent"`
	HasVoted       bool      `gorm:"column:has_voted"`
	IsActive       bool      `gorm:"column:is_active"`
	SessionToken   *string   `gorm:"column:session_token;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (voterModel) TableName() string { return "voters" }

func (m voterModel) toEntity() entities.Voter {
	token := ""
	if m.SessionToken != nil {
		token = *m.SessionToken
	}
	return entities.Voter{
		ID:             m.ID,
		VoterID:        m.VoterID,
		Name:           m.Name,
		BatchYear:      m.BatchYear,
		CampusChapter:  m.CampusChapter,
		Email:          m.Email,
		Phone:          m.Phone,
		PINHash:        m.PINHash,
		PrivacyConsent: m.PrivacyConsent,
		HasVoted:       m.HasVoted,
		IsActive:       m.IsActive,
		SessionToken:   token,
		CreatedAt:      m.CreatedAt,
	}
}

type adminModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Username     string `gorm:"column:username;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	FullName     string `gorm:"column:full_name"`
	IsStaff      bool   `gorm:"column:is_staff"`
	IsSuperuser  bool   `gorm:"column:is_superuser"`
}

func (adminModel) TableName() string { return "admin_accounts" }

func (m adminModel) toEntity() entities.AdminAccount {
	return entities.AdminAccount{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		IsStaff:      m.IsStaff,
		IsSuperuser:  m.IsSuperuser,
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

// AutoMigrate creates the voters and admin_accounts tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&voterModel{}, &adminModel{})
}

func (r *Repository) GetVoterByID(ctx context.Context, id string) (entities.Voter, error) {
	return r.findVoter(ctx, "id = ?", id)
}

func (r *Repository) GetVoterByVoterID(ctx context.Context, voterID string) (entities.Voter, error) {
	return r.findVoter(ctx, "voter_id = ?", voterID)
}

func (r *Repository) GetVoterBySessionToken(ctx context.Context, token string) (entities.Voter, error) {
	return r.findVoter(ctx, "session_token = ?", token)
}

func (r *Repository) findVoter(ctx context.Context, query string, arg string) (entities.Voter, error) {
	var row voterModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Voter{}, domainerrors.ErrVoterNotFound
		}
		return entities.Voter{}, r.logError("voter_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListVotersByBatchYear(ctx context.Context, batchYear int) ([]entities.Voter, error) {
	var rows []voterModel
	err := r.db.WithContext(ctx).
		Where("batch_year = ?", batchYear).
		Order("name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("voter_repo_list_batch_failed", err, "batch_year", batchYear)
	}
	return toVoters(rows), nil
}

func (r *Repository) ListVoters(ctx context.Context) ([]entities.Voter, error) {
	var rows []voterModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("voter_repo_list_failed", err)
	}
	return toVoters(rows), nil
}

func (r *Repository) CreateVoter(ctx context.Context, voter entities.Voter) error {
	row := voterModel{
		ID:             voter.ID,
		VoterID:        voter.VoterID,
		Name:           voter.Name,
		BatchYear:      voter.BatchYear,
		CampusChapter:  voter.CampusChapter,
		Email:          voter.Email,
		Phone:          voter.Phone,
		PINHash:        voter.PINHash,
		PrivacyConsent: voter.PrivacyConsent,
		HasVoted:       voter.HasVoted,
		IsActive:       voter.IsActive,
		CreatedAt:      voter.CreatedAt,
	}
	if voter.SessionToken != "" {
		token := voter.SessionToken
		row.SessionToken = &token
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrVoterIDTaken
		}
		return r.logError("voter_repo_create_failed", err, "voter_id", voter.VoterID)
	}
	return nil
}

func (r *Repository) UpdateSession(ctx context.Context, id string, token string) error {
	var value *string
	if token != "" {
		value = &token
	}
	result := r.db.WithContext(ctx).Model(&voterModel{}).
		Where("id = ?", id).
		Update("session_token", value)
	if result.Error != nil {
		return r.logError("voter_repo_session_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVoterNotFound
	}
	return nil
}

func (r *Repository) ReactivateForQuickEntry(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&voterModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":       true,
			"privacy_consent": true,
		})
	if result.Error != nil {
		return r.logError("voter_repo_reactivate_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVoterNotFound
	}
	return nil
}

func (r *Repository) ResetVoter(ctx context.Context, id string, pinHash *string) error {
	updates := map[string]any{
		"has_voted":     false,
		"is_active":     true,
		"session_token": nil,
	}
	if pinHash != nil {
		updates["pin_hash"] = *pinHash
	}
	result := r.db.WithContext(ctx).Model(&voterModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return r.logError("voter_repo_reset_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVoterNotFound
	}
	return nil
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (entities.AdminAccount, error) {
	var row adminModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdminAccount{}, domainerrors.ErrAdminInvalidCredentials
		}
		return entities.AdminAccount{}, r.logError("admin_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetAdminByID(ctx context.Context, id string) (entities.AdminAccount, error) {
	var row adminModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdminAccount{}, domainerrors.ErrAdminUnauthenticated
		}
		return entities.AdminAccount{}, r.logError("admin_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func toVoters(rows []voterModel) []entities.Voter {
	voters := make([]entities.Voter, 0, len(rows))
	for _, row := range rows {
		voters = append(voters, row.toEntity())
	}
	return voters
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "identity-access/session-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("session repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
