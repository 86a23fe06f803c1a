package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alumvote/contexts/election-operations/ballot-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	"alumvote/contexts/election-operations/ballot-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

type voteModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	VoterID     string    `gorm:"column:voter_id;uniqueIndex:idx_votes_voter_position"`
	PositionID  string    `gorm:"column:position_id;uniqueIndex:idx_votes_voter_position"`
	CandidateID string    `gorm:"column:candidate_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (voteModel) TableName() string { return "votes" }

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		ID:          m.ID,
		VoterID:     m.VoterID,
		PositionID:  m.PositionID,
		CandidateID: m.CandidateID,
		CreatedAt:   m.CreatedAt,
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

// AutoMigrate creates the votes table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&voteModel{})
}

// CastBallot writes every vote and flips the voter's has_voted flag in
// one transaction. A duplicate found by the in-transaction re-check or
// caught by the unique (voter_id, position_id) index rolls everything
// back as ErrDuplicateVote.
func (r *Repository) CastBallot(ctx context.Context, voterID string, votes []entities.Vote) error {
	positionIDs := make([]string, 0, len(votes))
	rows := make([]voteModel, 0, len(votes))
	for _, vote := range votes {
		positionIDs = append(positionIDs, vote.PositionID)
		rows = append(rows, voteModel{
			ID:          vote.ID,
			VoterID:     vote.VoterID,
			PositionID:  vote.PositionID,
			CandidateID: vote.CandidateID,
			CreatedAt:   vote.CreatedAt,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		err := tx.Model(&voteModel{}).
			Where("voter_id = ? AND position_id IN ?", voterID, positionIDs).
			Count(&existing).
			Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return domainerrors.ErrDuplicateVote
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return tx.Table("voters").
			Where("id = ?", voterID).
			Updates(map[string]any{"has_voted": true}).
			Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateVote) || isUniqueViolation(err) {
			return domainerrors.ErrDuplicateVote
		}
		return r.logError("vote_repo_cast_failed", err, "voter_id", voterID)
	}
	return nil
}

type voteDetailRow struct {
	voteModel
	PositionName  string `gorm:"column:position_name"`
	CandidateName string `gorm:"column:candidate_name"`
}

func (r *Repository) ListVotesByVoter(ctx context.Context, voterID string) ([]ports.VoteDetail, error) {
	var rows []voteDetailRow
	err := r.db.WithContext(ctx).
		Table("votes").
		Select("votes.*, positions.name AS position_name, candidates.full_name AS candidate_name").
		Joins("JOIN positions ON positions.id = votes.position_id").
		Joins("JOIN candidates ON candidates.id = votes.candidate_id").
		Where("votes.voter_id = ?", voterID).
		Order("positions.display_order ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("vote_repo_list_failed", err, "voter_id", voterID)
	}
	details := make([]ports.VoteDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, ports.VoteDetail{
			Vote:          row.voteModel.toEntity(),
			PositionName:  row.PositionName,
			CandidateName: row.CandidateName,
		})
	}
	return details, nil
}

// DeleteVotesByPositions serves the election context's reset flow.
func (r *Repository) DeleteVotesByPositions(ctx context.Context, positionIDs []string) (int64, error) {
	if len(positionIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("position_id IN ?", positionIDs).
		Delete(&voteModel{})
	if result.Error != nil {
		return 0, r.logError("vote_repo_purge_failed", result.Error)
	}
	return result.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "election-operations/ballot-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("vote repository operation failed", fields...)
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
