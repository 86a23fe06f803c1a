package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"alumvote/contexts/election-operations/nomination-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	"alumvote/contexts/election-operations/nomination-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type nominationModel struct {
	ID                   string     `gorm:"column:id;primaryKey"`
	ElectionID           string     `gorm:"column:election_id;index:idx_nominations_election_nominator"`
	PositionID           string     `gorm:"column:position_id;index"`
	NominatorID          string     `gorm:"column:nominator_id;index:idx_nominations_election_nominator"`
	NominatorName        string     `gorm:"column:nominator_name"`
	NominatorBatchYear   int        `gorm:"column:nominator_batch_year"`
	NomineeFullName      string     `gorm:"column:nominee_full_name"`
	NomineeBatchYear     int        `gorm:"column:nominee_batch_year"`
	NomineeCampusChapter string     `gorm:"column:nominee_campus_chapter"`
	ContactEmail         string     `gorm:"column:contact_email"`
	ContactPhone         string     `gorm:"column:contact_phone"`
	Reason               string     `gorm:"column:reason"`
	PhotoPath            string     `gorm:"column:photo_path"`
	GoodStanding         bool       `gorm:"column:good_standing"`
	Status               string     `gorm:"column:status"`
	RejectionReason      string     `gorm:"column:rejection_reason"`
	Promoted             bool       `gorm:"column:promoted"`
	PromotedAt           *time.Time `gorm:"column:promoted_at"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
}

func (nominationModel) TableName() string { return "nominations" }

func (m nominationModel) toEntity() entities.Nomination {
	return entities.Nomination{
		ID:                   m.ID,
		ElectionID:           m.ElectionID,
		PositionID:           m.PositionID,
		NominatorID:          m.NominatorID,
		NominatorName:        m.NominatorName,
		NominatorBatchYear:   m.NominatorBatchYear,
		NomineeFullName:      m.NomineeFullName,
		NomineeBatchYear:     m.NomineeBatchYear,
		NomineeCampusChapter: m.NomineeCampusChapter,
		ContactEmail:         m.ContactEmail,
		ContactPhone:         m.ContactPhone,
		Reason:               m.Reason,
		PhotoPath:            m.PhotoPath,
		GoodStanding:         m.GoodStanding,
		Status:               m.Status,
		RejectionReason:      m.RejectionReason,
		Promoted:             m.Promoted,
		PromotedAt:           m.PromotedAt,
		CreatedAt:            m.CreatedAt,
	}
}

type candidateModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	PositionID         string    `gorm:"column:position_id;index"`
	FullName           string    `gorm:"column:full_name"`
	BatchYear          int       `gorm:"column:batch_year"`
	CampusChapter      string    `gorm:"column:campus_chapter"`
	ContactEmail       string    `gorm:"column:contact_email"`
	ContactPhone       string    `gorm:"column:contact_phone"`
	Bio                string    `gorm:"column:bio"`
	PhotoPath          *string   `gorm:"column:photo_path"`
	IsOfficial         bool      `gorm:"column:is_official"`
	SourceNominationID string    `gorm:"column:source_nomination_id"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (candidateModel) TableName() string { return "candidates" }

func (m candidateModel) toEntity() entities.Candidate {
	photo := ""
	if m.PhotoPath != nil {
		photo = *m.PhotoPath
	}
	return entities.Candidate{
		ID:                 m.ID,
		PositionID:         m.PositionID,
		FullName:           m.FullName,
		BatchYear:          m.BatchYear,
		CampusChapter:      m.CampusChapter,
		ContactEmail:       m.ContactEmail,
		ContactPhone:       m.ContactPhone,
		Bio:                m.Bio,
		PhotoPath:          photo,
		IsOfficial:         m.IsOfficial,
		SourceNominationID: m.SourceNominationID,
		CreatedAt:          m.CreatedAt,
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

// AutoMigrate creates the nominations and candidates tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&nominationModel{}, &candidateModel{})
}

func (r *Repository) GetNomination(ctx context.Context, id string) (entities.Nomination, error) {
	var row nominationModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Nomination{}, domainerrors.ErrNominationNotFound
		}
		return entities.Nomination{}, r.logError("nomination_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByNominator(ctx context.Context, electionID string, nominatorID string) (entities.Nomination, error) {
	var row nominationModel
	err := r.db.WithContext(ctx).
		Where("election_id = ? AND nominator_id = ?", electionID, nominatorID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Nomination{}, domainerrors.ErrNominationNotFound
		}
		return entities.Nomination{}, r.logError("nomination_repo_by_nominator_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListByElection(ctx context.Context, electionID string) ([]entities.Nomination, error) {
	var rows []nominationModel
	err := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("nomination_repo_list_failed", err, "election_id", electionID)
	}
	nominations := make([]entities.Nomination, 0, len(rows))
	for _, row := range rows {
		nominations = append(nominations, row.toEntity())
	}
	return nominations, nil
}

func (r *Repository) CreateNomination(ctx context.Context, nomination entities.Nomination) error {
	row := toModel(nomination)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("nomination_repo_create_failed", err, "nomination_id", nomination.ID)
	}
	return nil
}

func (r *Repository) Resubmit(ctx context.Context, nomination entities.Nomination) error {
	result := r.db.WithContext(ctx).Model(&nominationModel{}).
		Where("id = ?", nomination.ID).
		Updates(map[string]any{
			"position_id":            nomination.PositionID,
			"nominee_full_name":      nomination.NomineeFullName,
			"nominee_batch_year":     nomination.NomineeBatchYear,
			"nominee_campus_chapter": nomination.NomineeCampusChapter,
			"contact_email":          nomination.ContactEmail,
			"contact_phone":          nomination.ContactPhone,
			"reason":                 nomination.Reason,
			"photo_path":             nomination.PhotoPath,
			"good_standing":          nomination.GoodStanding,
			"status":                 entities.StatusPending,
			"rejection_reason":       "",
			"promoted":               false,
			"promoted_at":            nil,
		})
	if result.Error != nil {
		return r.logError("nomination_repo_resubmit_failed", result.Error, "nomination_id", nomination.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNominationNotFound
	}
	return nil
}

func (r *Repository) Reject(ctx context.Context, id string, reason string) error {
	result := r.db.WithContext(ctx).Model(&nominationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           entities.StatusRejected,
			"rejection_reason": reason,
			"promoted":         false,
			"promoted_at":      nil,
		})
	if result.Error != nil {
		return r.logError("nomination_repo_reject_failed", result.Error, "nomination_id", id)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNominationNotFound
	}
	return nil
}

func (r *Repository) DeleteNomination(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&nominationModel{})
	if result.Error != nil {
		return r.logError("nomination_repo_delete_failed", result.Error, "nomination_id", id)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNominationNotFound
	}
	return nil
}

func (r *Repository) Promote(ctx context.Context, nomination entities.Nomination, candidateID string, at time.Time) (entities.Candidate, bool, error) {
	var candidate entities.Candidate
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row candidateModel
		err := tx.Where("position_id = ? AND full_name = ? AND is_official = ?",
			nomination.PositionID, nomination.NomineeFullName, true).
			First(&row).
			Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = candidateModel{
				ID:                 candidateID,
				PositionID:         nomination.PositionID,
				FullName:           nomination.NomineeFullName,
				BatchYear:          nomination.NomineeBatchYear,
				CampusChapter:      nomination.NomineeCampusChapter,
				ContactEmail:       nomination.ContactEmail,
				ContactPhone:       nomination.ContactPhone,
				Bio:                nomination.Reason,
				IsOfficial:         true,
				SourceNominationID: nomination.ID,
				CreatedAt:          at.UTC(),
			}
			if nomination.PhotoPath != "" {
				photo := nomination.PhotoPath
				row.PhotoPath = &photo
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = true
		case err != nil:
			return err
		default:
			// Reuse the existing candidate; borrow the nominee photo when
			// the candidate has none.
			if row.PhotoPath == nil && nomination.PhotoPath != "" {
				photo := nomination.PhotoPath
				if err := tx.Model(&candidateModel{}).
					Where("id = ?", row.ID).
					Update("photo_path", photo).Error; err != nil {
					return err
				}
				row.PhotoPath = &photo
			}
		}

		result := tx.Model(&nominationModel{}).
			Where("id = ?", nomination.ID).
			Updates(map[string]any{
				"promoted":         true,
				"promoted_at":      at,
				"status":           entities.StatusPromoted,
				"rejection_reason": "",
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNominationNotFound
		}
		candidate = row.toEntity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNominationNotFound) {
			return entities.Candidate{}, false, err
		}
		return entities.Candidate{}, false, r.logError("nomination_repo_promote_failed", err, "nomination_id", nomination.ID)
	}
	return candidate, created, nil
}

func (r *Repository) GetOfficialCandidate(ctx context.Context, id string) (entities.Candidate, error) {
	var row candidateModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_official = ?", id, true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Candidate{}, domainerrors.ErrCandidateNotFound
		}
		return entities.Candidate{}, r.logError("candidate_repo_get_failed", err)
	}
	return row.toEntity(), nil
}

type candidateVoteRow struct {
	candidateModel
	Votes int `gorm:"column:votes"`
}

func (r *Repository) ListOfficialWithVotes(ctx context.Context, electionID string, positionID string) ([]ports.CandidateVotes, error) {
	query := r.db.WithContext(ctx).
		Table("candidates").
		Select("candidates.*, (SELECT COUNT(*) FROM votes WHERE votes.candidate_id = candidates.id) AS votes").
		Joins("JOIN positions ON positions.id = candidates.position_id").
		Where("positions.election_id = ? AND candidates.is_official = ?", electionID, true)
	if positionID != "" {
		query = query.Where("candidates.position_id = ?", positionID)
	}
	var rows []candidateVoteRow
	err := query.Order("positions.display_order ASC, candidates.full_name ASC").Scan(&rows).Error
	if err != nil {
		return nil, r.logError("candidate_repo_list_failed", err, "election_id", electionID)
	}
	results := make([]ports.CandidateVotes, 0, len(rows))
	for _, row := range rows {
		results = append(results, ports.CandidateVotes{
			Candidate: row.candidateModel.toEntity(),
			Votes:     row.Votes,
		})
	}
	return results, nil
}

func (r *Repository) SetPhoto(ctx context.Context, id string, photoPath *string) error {
	result := r.db.WithContext(ctx).Model(&candidateModel{}).
		Where("id = ?", id).
		Update("photo_path", photoPath)
	if result.Error != nil {
		return r.logError("candidate_repo_photo_failed", result.Error, "candidate_id", id)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCandidateNotFound
	}
	return nil
}

func toModel(nomination entities.Nomination) nominationModel {
	return nominationModel{
		ID:                   nomination.ID,
		ElectionID:           nomination.ElectionID,
		PositionID:           nomination.PositionID,
		NominatorID:          nomination.NominatorID,
		NominatorName:        nomination.NominatorName,
		NominatorBatchYear:   nomination.NominatorBatchYear,
		NomineeFullName:      nomination.NomineeFullName,
		NomineeBatchYear:     nomination.NomineeBatchYear,
		NomineeCampusChapter: nomination.NomineeCampusChapter,
		ContactEmail:         nomination.ContactEmail,
		ContactPhone:         nomination.ContactPhone,
		Reason:               nomination.Reason,
		PhotoPath:            nomination.PhotoPath,
		GoodStanding:         nomination.GoodStanding,
		Status:               nomination.Status,
		RejectionReason:      nomination.RejectionReason,
		Promoted:             nomination.Promoted,
		PromotedAt:           nomination.PromotedAt,
		CreatedAt:            nomination.CreatedAt,
	}
}

// TallyByPosition counts votes for one position's official candidates,
// ordered by full name. The election context consumes this through its
// tally port.
func (r *Repository) TallyByPosition(ctx context.Context, positionID string) ([]ports.CandidateVotes, error) {
	var rows []candidateVoteRow
	err := r.db.WithContext(ctx).
		Table("candidates").
		Select("candidates.*, (SELECT COUNT(*) FROM votes WHERE votes.candidate_id = candidates.id) AS votes").
		Where("candidates.position_id = ? AND candidates.is_official = ?", positionID, true).
		Order("candidates.full_name ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("candidate_repo_tally_failed", err, "position_id", positionID)
	}
	results := make([]ports.CandidateVotes, 0, len(rows))
	for _, row := range rows {
		results = append(results, ports.CandidateVotes{
			Candidate: row.candidateModel.toEntity(),
			Votes:     row.Votes,
		})
	}
	return results, nil
}

// DeleteNominationsByElection serves the election context's reset flow.
func (r *Repository) DeleteNominationsByElection(ctx context.Context, electionID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Delete(&nominationModel{})
	if result.Error != nil {
		return 0, r.logError("nomination_repo_purge_failed", result.Error, "election_id", electionID)
	}
	return result.RowsAffected, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "election-operations/nomination-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("nomination repository operation failed", fields...)
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
