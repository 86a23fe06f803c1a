package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"alumvote/contexts/access-control/gate-service/domain/entities"
	domainerrors "alumvote/contexts/access-control/gate-service/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type gateModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex"`
	PasscodeHash string    `gorm:"column:passcode_hash"`
	Version      int       `gorm:"column:version"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (gateModel) TableName() string { return "access_gates" }

func (m gateModel) toEntity() entities.AccessGate {
	return entities.AccessGate{
		GateID:       m.ID,
		Name:         m.Name,
		PasscodeHash: m.PasscodeHash,
		Version:      m.Version,
		UpdatedAt:    m.UpdatedAt,
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

// AutoMigrate creates the access_gates table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&gateModel{})
}

func (r *Repository) ListGates(ctx context.Context) ([]entities.AccessGate, error) {
	var rows []gateModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("gate_repo_list_failed", err)
	}
	gates := make([]entities.AccessGate, 0, len(rows))
	for _, row := range rows {
		gates = append(gates, row.toEntity())
	}
	return gates, nil
}

func (r *Repository) GetGateByName(ctx context.Context, name string) (entities.AccessGate, error) {
	var row gateModel
	err := r.db.WithContext(ctx).
		Where("name = ?", strings.TrimSpace(name)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AccessGate{}, domainerrors.ErrGateNotFound
		}
		return entities.AccessGate{}, r.logError("gate_repo_get_failed", err, "gate", name)
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateGate(ctx context.Context, gate entities.AccessGate) error {
	row := gateModel{
		ID:           gate.GateID,
		Name:         strings.TrimSpace(gate.Name),
		PasscodeHash: gate.PasscodeHash,
		Version:      gate.Version,
		UpdatedAt:    gate.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrGateExists
		}
		return r.logError("gate_repo_create_failed", err, "gate", gate.Name)
	}
	return nil
}

func (r *Repository) RotateGate(ctx context.Context, gate entities.AccessGate) error {
	result := r.db.WithContext(ctx).Model(&gateModel{}).
		Where("id = ?", gate.GateID).
		Updates(map[string]any{
			"passcode_hash": gate.PasscodeHash,
			"version":       gate.Version,
			"updated_at":    gate.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("gate_repo_rotate_failed", result.Error, "gate", gate.Name)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGateNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "access-control/gate-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("gate repository operation failed", fields...)
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
