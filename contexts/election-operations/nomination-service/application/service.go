package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"alumvote/contexts/election-operations/nomination-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	"alumvote/contexts/election-operations/nomination-service/ports"
	"alumvote/contracts/schedule"
)

// Service runs the nomination lifecycle: submission during the
// nomination window, admin promotion to official candidate, rejection
// with resubmission, and candidate photo upkeep.
type Service struct {
	Nominations   ports.NominationRepository
	Candidates    ports.CandidateRepository
	Elections     ports.ElectionReader
	Positions     ports.PositionReader
	Notifications ports.NotificationWriter
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

// Nominator identifies the authenticated voter submitting a nomination.
type Nominator struct {
	ID             string
	Name           string
	BatchYear      int
	PrivacyConsent bool
}

type SubmitInput struct {
	PositionID           string
	NomineeFullName      string
	NomineeBatchYear     int
	NomineeCampusChapter string
	ContactEmail         string
	ContactPhone         string
	Reason               string
	PhotoPath            string
	GoodStanding         bool
}

// PromotionOutcome reports the candidate a promotion resolved to and
// whether that candidate row was newly minted.
type PromotionOutcome struct {
	Candidate entities.Candidate
	Created   bool
}

// Submit records a nomination while the window is open. A voter's
// rejected nomination is reused in place; any other existing nomination
// blocks a second submission.
func (s Service) Submit(ctx context.Context, nominator Nominator, input SubmitInput) (entities.Nomination, error) {
	logger := ResolveLogger(s.Logger)
	if !nominator.PrivacyConsent {
		return entities.Nomination{}, domainerrors.ErrConsentRequired
	}
	nomineeName := strings.TrimSpace(input.NomineeFullName)
	if nomineeName == "" {
		return entities.Nomination{}, domainerrors.ErrNomineeNameRequired
	}
	if input.NomineeBatchYear <= 0 {
		return entities.Nomination{}, domainerrors.ErrNomineeYearRequired
	}

	election, err := s.Elections.ActiveElection(ctx)
	if err != nil {
		return entities.Nomination{}, err
	}
	if election.Phase != schedule.PhaseNominationOpen {
		return entities.Nomination{}, domainerrors.ErrNominationClosed
	}
	position, err := s.Positions.GetActivePosition(ctx, election.ElectionID, input.PositionID)
	if err != nil {
		return entities.Nomination{}, err
	}

	existing, err := s.Nominations.GetByNominator(ctx, election.ElectionID, nominator.ID)
	if err == nil {
		if existing.Status != entities.StatusRejected {
			return entities.Nomination{}, domainerrors.ErrAlreadyNominated
		}
		resubmitted := existing
		resubmitted.PositionID = position.ID
		resubmitted.NomineeFullName = nomineeName
		resubmitted.NomineeBatchYear = input.NomineeBatchYear
		resubmitted.NomineeCampusChapter = strings.TrimSpace(input.NomineeCampusChapter)
		resubmitted.ContactEmail = strings.TrimSpace(input.ContactEmail)
		resubmitted.ContactPhone = strings.TrimSpace(input.ContactPhone)
		resubmitted.Reason = strings.TrimSpace(input.Reason)
		resubmitted.PhotoPath = input.PhotoPath
		resubmitted.GoodStanding = input.GoodStanding
		resubmitted.Status = entities.StatusPending
		resubmitted.RejectionReason = ""
		resubmitted.Promoted = false
		resubmitted.PromotedAt = nil
		if err := s.Nominations.Resubmit(ctx, resubmitted); err != nil {
			return entities.Nomination{}, err
		}
		logger.Info("nomination resubmitted",
			"event", "nomination_resubmitted",
			"module", "election-operations/nomination-service",
			"layer", "application",
			"nomination_id", resubmitted.ID,
		)
		return resubmitted, nil
	}
	if !errors.Is(err, domainerrors.ErrNominationNotFound) {
		return entities.Nomination{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Nomination{}, err
	}
	nomination := entities.Nomination{
		ID:                   id,
		ElectionID:           election.ElectionID,
		PositionID:           position.ID,
		NominatorID:          nominator.ID,
		NominatorName:        nominator.Name,
		NominatorBatchYear:   nominator.BatchYear,
		NomineeFullName:      nomineeName,
		NomineeBatchYear:     input.NomineeBatchYear,
		NomineeCampusChapter: strings.TrimSpace(input.NomineeCampusChapter),
		ContactEmail:         strings.TrimSpace(input.ContactEmail),
		ContactPhone:         strings.TrimSpace(input.ContactPhone),
		Reason:               strings.TrimSpace(input.Reason),
		PhotoPath:            input.PhotoPath,
		GoodStanding:         input.GoodStanding,
		Status:               entities.StatusPending,
		CreatedAt:            s.Clock.Now().UTC(),
	}
	if err := s.Nominations.CreateNomination(ctx, nomination); err != nil {
		return entities.Nomination{}, err
	}

	s.notify(ctx, "", "nomination_submitted", fmt.Sprintf(
		"New nomination: %s for %s by %s (batch %d)",
		nomination.NomineeFullName, position.DisplayName, nominator.Name, nominator.BatchYear))
	logger.Info("nomination submitted",
		"event", "nomination_submitted",
		"module", "election-operations/nomination-service",
		"layer", "application",
		"nomination_id", nomination.ID,
		"position", position.Name,
	)
	return nomination, nil
}

// MyNomination returns the voter's nomination in the active election.
// ok is false when the voter has not nominated anyone.
func (s Service) MyNomination(ctx context.Context, voterID string) (entities.Nomination, bool, error) {
	election, err := s.Elections.ActiveElection(ctx)
	if err != nil {
		return entities.Nomination{}, false, err
	}
	nomination, err := s.Nominations.GetByNominator(ctx, election.ElectionID, voterID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNominationNotFound) {
			return entities.Nomination{}, false, nil
		}
		return entities.Nomination{}, false, err
	}
	return nomination, true, nil
}

// AdminList returns every nomination in the active election; an idle
// system yields an empty list rather than an error.
func (s Service) AdminList(ctx context.Context) ([]entities.Nomination, error) {
	election, err := s.Elections.ActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return []entities.Nomination{}, nil
		}
		return nil, err
	}
	return s.Nominations.ListByElection(ctx, election.ElectionID)
}

// Promote turns a nomination into an official candidate. An existing
// candidate with the same name on the same position is reused; the
// nomination's photo backfills a missing candidate photo either way.
func (s Service) Promote(ctx context.Context, nominationID string) (PromotionOutcome, error) {
	logger := ResolveLogger(s.Logger)
	nomination, err := s.Nominations.GetNomination(ctx, nominationID)
	if err != nil {
		return PromotionOutcome{}, err
	}
	candidateID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return PromotionOutcome{}, err
	}
	candidate, created, err := s.Nominations.Promote(ctx, nomination, candidateID, s.Clock.Now())
	if err != nil {
		return PromotionOutcome{}, err
	}

	position, perr := s.Positions.GetActivePosition(ctx, nomination.ElectionID, nomination.PositionID)
	positionLabel := nomination.PositionID
	if perr == nil {
		positionLabel = position.DisplayName
	}
	s.notify(ctx, nomination.NominatorID, "nomination_promoted", fmt.Sprintf(
		"Your nomination for %s (%s) was promoted.", nomination.NomineeFullName, positionLabel))

	logger.Info("nomination promoted",
		"event", "nomination_promoted",
		"module", "election-operations/nomination-service",
		"layer", "application",
		"nomination_id", nomination.ID,
		"candidate_id", candidate.ID,
		"created", created,
	)
	return PromotionOutcome{Candidate: candidate, Created: created}, nil
}

// Reject marks a nomination rejected with a mandatory reason and leaves
// a record in both the admin feed and the nominator's inbox.
func (s Service) Reject(ctx context.Context, nominationID string, reason string) (entities.Nomination, error) {
	logger := ResolveLogger(s.Logger)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Nomination{}, domainerrors.ErrReasonRequired
	}
	nomination, err := s.Nominations.GetNomination(ctx, nominationID)
	if err != nil {
		return entities.Nomination{}, err
	}
	if err := s.Nominations.Reject(ctx, nomination.ID, reason); err != nil {
		return entities.Nomination{}, err
	}
	nomination.Status = entities.StatusRejected
	nomination.RejectionReason = reason
	nomination.Promoted = false
	nomination.PromotedAt = nil

	position, perr := s.Positions.GetActivePosition(ctx, nomination.ElectionID, nomination.PositionID)
	positionLabel := nomination.PositionID
	if perr == nil {
		positionLabel = position.DisplayName
	}
	s.notify(ctx, "", "nomination_rejected", fmt.Sprintf(
		"Nomination for %s (%s) was rejected: %s", nomination.NomineeFullName, positionLabel, reason))
	s.notify(ctx, nomination.NominatorID, "nomination_rejected", fmt.Sprintf(
		"Your nomination for %s (%s) was rejected: %s", nomination.NomineeFullName, positionLabel, reason))

	logger.Info("nomination rejected",
		"event", "nomination_rejected",
		"module", "election-operations/nomination-service",
		"layer", "application",
		"nomination_id", nomination.ID,
	)
	return nomination, nil
}

// Delete removes a nomination outright. Candidates minted from it
// survive; only the nomination row goes away.
func (s Service) Delete(ctx context.Context, nominationID string) error {
	return s.Nominations.DeleteNomination(ctx, nominationID)
}

// ListCandidates returns the active election's official candidates with
// live vote counts, optionally narrowed to one position.
func (s Service) ListCandidates(ctx context.Context, positionID string) ([]ports.CandidateVotes, error) {
	election, err := s.Elections.ActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return []ports.CandidateVotes{}, nil
		}
		return nil, err
	}
	return s.Candidates.ListOfficialWithVotes(ctx, election.ElectionID, positionID)
}

// SetCandidatePhoto stores the photo path for an official candidate.
func (s Service) SetCandidatePhoto(ctx context.Context, candidateID string, photoPath string) (entities.Candidate, error) {
	candidate, err := s.Candidates.GetOfficialCandidate(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if err := s.Candidates.SetPhoto(ctx, candidate.ID, &photoPath); err != nil {
		return entities.Candidate{}, err
	}
	candidate.PhotoPath = photoPath
	return candidate, nil
}

// ClearCandidatePhoto removes an official candidate's photo.
func (s Service) ClearCandidatePhoto(ctx context.Context, candidateID string) (entities.Candidate, error) {
	candidate, err := s.Candidates.GetOfficialCandidate(ctx, candidateID)
	if err != nil {
		return entities.Candidate{}, err
	}
	if err := s.Candidates.SetPhoto(ctx, candidate.ID, nil); err != nil {
		return entities.Candidate{}, err
	}
	candidate.PhotoPath = ""
	return candidate, nil
}

func (s Service) notify(ctx context.Context, voterID string, kind string, message string) {
	if s.Notifications == nil {
		return
	}
	record := ports.NotificationRecord{Type: kind, Message: message, VoterID: voterID}
	if err := s.Notifications.Append(ctx, record); err != nil {
		ResolveLogger(s.Logger).Warn("notification append failed",
			"event", "nomination_notification_failed",
			"module", "election-operations/nomination-service",
			"layer", "application",
			"error", err.Error(),
		)
	}
}
