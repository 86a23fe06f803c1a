package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/election-operations/ballot-service/application"
	httptransport "alumvote/contexts/election-operations/ballot-service/transport/http"
)

type Handler struct {
	Ballots application.Service
	Logger  *slog.Logger
}

func (h Handler) SubmitHandler(ctx context.Context, voter application.Voter, req httptransport.SubmitBallotRequest) (httptransport.SubmitBallotResponse, error) {
	votes, err := h.Ballots.SubmitBallot(ctx, voter, req.Selections)
	if err != nil {
		return httptransport.SubmitBallotResponse{}, err
	}
	return httptransport.SubmitBallotResponse{OK: true, VotesCast: len(votes)}, nil
}

func (h Handler) MyVotesHandler(ctx context.Context, voterID string) (httptransport.MyVotesResponse, error) {
	details, err := h.Ballots.MyVotes(ctx, voterID)
	if err != nil {
		return httptransport.MyVotesResponse{}, err
	}
	votes := make([]httptransport.VotePayload, 0, len(details))
	for _, detail := range details {
		votes = append(votes, httptransport.VotePayload{
			PositionID:    detail.Vote.PositionID,
			PositionName:  detail.PositionName,
			CandidateID:   detail.Vote.CandidateID,
			CandidateName: detail.CandidateName,
			CreatedAt:     detail.Vote.CreatedAt,
		})
	}
	return httptransport.MyVotesResponse{HasVoted: len(votes) > 0, Votes: votes}, nil
}
