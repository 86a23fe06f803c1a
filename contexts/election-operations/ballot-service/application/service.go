package application

import (
	"context"
	"log/slog"

	"alumvote/contexts/election-operations/ballot-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	"alumvote/contexts/election-operations/ballot-service/ports"
	"alumvote/contracts/schedule"
)

// Service validates and records ballots.
type Service struct {
	Votes      ports.VoteRepository
	Elections  ports.ElectionReader
	Positions  ports.PositionReader
	Candidates ports.CandidateReader
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Voter identifies the authenticated voter submitting a ballot, with
// the eligibility state read at authentication time.
type Voter struct {
	ID             string
	HasVoted       bool
	PrivacyConsent bool
}

// SubmitBallot checks the voter, the voting window, the ballot's
// coverage of the active positions, and every selected candidate, then
// persists the full ballot atomically. selections maps position id to
// candidate id.
func (s Service) SubmitBallot(ctx context.Context, voter Voter, selections map[string]string) ([]entities.Vote, error) {
	logger := ResolveLogger(s.Logger)
	if !voter.PrivacyConsent {
		return nil, domainerrors.ErrConsentRequired
	}
	if voter.HasVoted {
		return nil, domainerrors.ErrAlreadyVoted
	}

	election, err := s.Elections.ActiveElection(ctx)
	if err != nil {
		return nil, err
	}
	if election.Phase != schedule.PhaseVotingOpen {
		return nil, domainerrors.ErrVotingClosed
	}

	positions, err := s.Positions.ListActivePositions(ctx, election.ElectionID)
	if err != nil {
		return nil, err
	}
	if len(selections) != len(positions) {
		return nil, domainerrors.ErrIncompleteBallot
	}
	for _, position := range positions {
		if _, ok := selections[position.ID]; !ok {
			return nil, domainerrors.ErrIncompleteBallot
		}
	}

	now := s.Clock.Now().UTC()
	votes := make([]entities.Vote, 0, len(positions))
	for _, position := range positions {
		candidateID := selections[position.ID]
		candidate, err := s.Candidates.GetOfficialCandidate(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if !candidate.IsOfficial || candidate.PositionID != position.ID {
			return nil, domainerrors.ErrInvalidCandidate
		}
		id, err := s.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		votes = append(votes, entities.Vote{
			ID:          id,
			VoterID:     voter.ID,
			PositionID:  position.ID,
			CandidateID: candidate.ID,
			CreatedAt:   now,
		})
	}

	if err := s.Votes.CastBallot(ctx, voter.ID, votes); err != nil {
		return nil, err
	}
	logger.Info("ballot cast",
		"event", "ballot_cast",
		"module", "election-operations/ballot-service",
		"layer", "application",
		"voter_id", voter.ID,
		"election_id", election.ElectionID,
		"votes", len(votes),
	)
	return votes, nil
}

// MyVotes returns the voter's recorded votes with position and
// candidate names. A voter who has not voted gets an empty list.
func (s Service) MyVotes(ctx context.Context, voterID string) ([]ports.VoteDetail, error) {
	return s.Votes.ListVotesByVoter(ctx, voterID)
}
