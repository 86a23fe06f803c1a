package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/election-operations/nomination-service/application"
	"alumvote/contexts/election-operations/nomination-service/domain/entities"
	"alumvote/contexts/election-operations/nomination-service/ports"
	httptransport "alumvote/contexts/election-operations/nomination-service/transport/http"
)

type Handler struct {
	Nominations application.Service
	Logger      *slog.Logger
}

func (h Handler) SubmitHandler(ctx context.Context, nominator application.Nominator, req httptransport.SubmitNominationRequest) (httptransport.NominationPayload, error) {
	nomination, err := h.Nominations.Submit(ctx, nominator, application.SubmitInput{
		PositionID:           req.PositionID,
		NomineeFullName:      req.NomineeFullName,
		NomineeBatchYear:     req.NomineeBatchYear,
		NomineeCampusChapter: req.NomineeCampusChapter,
		ContactEmail:         req.ContactEmail,
		ContactPhone:         req.ContactPhone,
		Reason:               req.Reason,
		PhotoPath:            req.PhotoPath,
		GoodStanding:         req.GoodStanding,
	})
	if err != nil {
		return httptransport.NominationPayload{}, err
	}
	return toNominationPayload(nomination), nil
}

func (h Handler) MyNominationHandler(ctx context.Context, voterID string) (httptransport.MyNominationResponse, error) {
	nomination, ok, err := h.Nominations.MyNomination(ctx, voterID)
	if err != nil {
		return httptransport.MyNominationResponse{}, err
	}
	if !ok {
		return httptransport.MyNominationResponse{HasNomination: false}, nil
	}
	payload := toNominationPayload(nomination)
	return httptransport.MyNominationResponse{HasNomination: true, Nomination: &payload}, nil
}

func (h Handler) AdminListHandler(ctx context.Context) ([]httptransport.NominationPayload, error) {
	nominations, err := h.Nominations.AdminList(ctx)
	if err != nil {
		return nil, err
	}
	payloads := make([]httptransport.NominationPayload, 0, len(nominations))
	for _, nomination := range nominations {
		payloads = append(payloads, toNominationPayload(nomination))
	}
	return payloads, nil
}

func (h Handler) PromoteHandler(ctx context.Context, nominationID string) (httptransport.PromoteResponse, error) {
	outcome, err := h.Nominations.Promote(ctx, nominationID)
	if err != nil {
		return httptransport.PromoteResponse{}, err
	}
	return httptransport.PromoteResponse{
		Candidate: toCandidatePayload(outcome.Candidate, 0),
		Created:   outcome.Created,
	}, nil
}

func (h Handler) RejectHandler(ctx context.Context, nominationID string, req httptransport.RejectNominationRequest) (httptransport.NominationPayload, error) {
	nomination, err := h.Nominations.Reject(ctx, nominationID, req.Reason)
	if err != nil {
		return httptransport.NominationPayload{}, err
	}
	return toNominationPayload(nomination), nil
}

func (h Handler) DeleteHandler(ctx context.Context, nominationID string) (httptransport.DeleteNominationResponse, error) {
	if err := h.Nominations.Delete(ctx, nominationID); err != nil {
		return httptransport.DeleteNominationResponse{}, err
	}
	return httptransport.DeleteNominationResponse{OK: true}, nil
}

func (h Handler) CandidatesHandler(ctx context.Context, positionID string) ([]httptransport.CandidatePayload, error) {
	candidates, err := h.Nominations.ListCandidates(ctx, positionID)
	if err != nil {
		return nil, err
	}
	return toCandidatePayloads(candidates), nil
}

func (h Handler) SetPhotoHandler(ctx context.Context, candidateID string, req httptransport.CandidatePhotoRequest) (httptransport.CandidatePayload, error) {
	candidate, err := h.Nominations.SetCandidatePhoto(ctx, candidateID, req.PhotoPath)
	if err != nil {
		return httptransport.CandidatePayload{}, err
	}
	return toCandidatePayload(candidate, 0), nil
}

func (h Handler) ClearPhotoHandler(ctx context.Context, candidateID string) (httptransport.CandidatePayload, error) {
	candidate, err := h.Nominations.ClearCandidatePhoto(ctx, candidateID)
	if err != nil {
		return httptransport.CandidatePayload{}, err
	}
	return toCandidatePayload(candidate, 0), nil
}

func toNominationPayload(nomination entities.Nomination) httptransport.NominationPayload {
	return httptransport.NominationPayload{
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

func toCandidatePayload(candidate entities.Candidate, votes int) httptransport.CandidatePayload {
	return httptransport.CandidatePayload{
		ID:            candidate.ID,
		PositionID:    candidate.PositionID,
		FullName:      candidate.FullName,
		BatchYear:     candidate.BatchYear,
		CampusChapter: candidate.CampusChapter,
		ContactEmail:  candidate.ContactEmail,
		ContactPhone:  candidate.ContactPhone,
		Bio:           candidate.Bio,
		PhotoPath:     candidate.PhotoPath,
		Votes:         votes,
	}
}

func toCandidatePayloads(candidates []ports.CandidateVotes) []httptransport.CandidatePayload {
	payloads := make([]httptransport.CandidatePayload, 0, len(candidates))
	for _, candidate := range candidates {
		payloads = append(payloads, toCandidatePayload(candidate.Candidate, candidate.Votes))
	}
	return payloads
}
