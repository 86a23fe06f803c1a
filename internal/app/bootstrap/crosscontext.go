package bootstrap

import (
	"context"

	balloterrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	ballotports "alumvote/contexts/election-operations/ballot-service/ports"
	electionapp "alumvote/contexts/election-operations/election-service/application"
	electionports "alumvote/contexts/election-operations/election-service/ports"
	nominationerrors "alumvote/contexts/election-operations/nomination-service/domain/errors"
	nominationports "alumvote/contexts/election-operations/nomination-service/ports"
	notificationapp "alumvote/contexts/engagement/notification-service/application"
	sessionapp "alumvote/contexts/identity-access/session-service/application"
	sessionports "alumvote/contexts/identity-access/session-service/ports"
	"alumvote/contracts/schedule"
)

// The adapter structs below bridge one context's outbound port to
// another context's inbound surface. They are the only place two
// contexts meet.

// electionStateSource is what the election context offers the
// nomination and ballot contexts: the active election plus its phase.
type electionStateSource struct {
	elections electionapp.Service
}

func (s electionStateSource) activeState(ctx context.Context) (id string, phase schedule.Phase, ok bool, err error) {
	view, ok, err := s.elections.CurrentElection(ctx)
	if err != nil || !ok {
		return "", "", ok, err
	}
	return view.Election.ID, view.Phase, true, nil
}

type nominationElectionReader struct {
	source electionStateSource
}

func (r nominationElectionReader) ActiveElection(ctx context.Context) (nominationports.ElectionState, error) {
	id, phase, ok, err := r.source.activeState(ctx)
	if err != nil {
		return nominationports.ElectionState{}, err
	}
	if !ok {
		return nominationports.ElectionState{}, nominationerrors.ErrNoActiveElection
	}
	return nominationports.ElectionState{ElectionID: id, Phase: phase}, nil
}

type ballotElectionReader struct {
	source electionStateSource
}

func (r ballotElectionReader) ActiveElection(ctx context.Context) (ballotports.ElectionState, error) {
	id, phase, ok, err := r.source.activeState(ctx)
	if err != nil {
		return ballotports.ElectionState{}, err
	}
	if !ok {
		return ballotports.ElectionState{}, balloterrors.ErrNoActiveElection
	}
	return ballotports.ElectionState{ElectionID: id, Phase: phase}, nil
}

// nominationPositionReader validates a position against the election
// context's catalog.
type nominationPositionReader struct {
	positions electionports.PositionRepository
}

func (r nominationPositionReader) GetActivePosition(ctx context.Context, electionID string, positionID string) (nominationports.PositionInfo, error) {
	positions, err := r.positions.ListPositions(ctx, electionID, true)
	if err != nil {
		return nominationports.PositionInfo{}, err
	}
	for _, position := range positions {
		if position.ID == positionID {
			return nominationports.PositionInfo{
				ID:          position.ID,
				Name:        position.Name,
				DisplayName: position.DisplayName(),
			}, nil
		}
	}
	return nominationports.PositionInfo{}, nominationerrors.ErrInvalidPosition
}

type ballotPositionReader struct {
	positions electionports.PositionRepository
}

func (r ballotPositionReader) ListActivePositions(ctx context.Context, electionID string) ([]ballotports.PositionInfo, error) {
	positions, err := r.positions.ListPositions(ctx, electionID, true)
	if err != nil {
		return nil, err
	}
	infos := make([]ballotports.PositionInfo, 0, len(positions))
	for _, position := range positions {
		infos = append(infos, ballotports.PositionInfo{
			ID:          position.ID,
			Name:        position.Name,
			DisplayName: position.DisplayName(),
		})
	}
	return infos, nil
}

// ballotCandidateReader validates ballot selections against the
// nomination context's official candidate rows.
type ballotCandidateReader struct {
	candidates nominationports.CandidateRepository
}

func (r ballotCandidateReader) GetOfficialCandidate(ctx context.Context, candidateID string) (ballotports.CandidateInfo, error) {
	candidate, err := r.candidates.GetOfficialCandidate(ctx, candidateID)
	if err != nil {
		return ballotports.CandidateInfo{}, balloterrors.ErrInvalidCandidate
	}
	return ballotports.CandidateInfo{
		ID:         candidate.ID,
		PositionID: candidate.PositionID,
		FullName:   candidate.FullName,
		IsOfficial: candidate.IsOfficial,
	}, nil
}

// candidateTallySource is the slice of the nomination store the tally
// bridge needs: per-position counts without an election filter.
type candidateTallySource interface {
	TallyByPosition(ctx context.Context, positionID string) ([]nominationports.CandidateVotes, error)
}

// electionTallyReader feeds the election tabulator from the nomination
// context's candidate read model.
type electionTallyReader struct {
	candidates candidateTallySource
}

func (r electionTallyReader) TallyByPosition(ctx context.Context, positionID string) ([]electionports.CandidateTally, error) {
	rows, err := r.candidates.TallyByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	tallies := make([]electionports.CandidateTally, 0, len(rows))
	for _, row := range rows {
		tallies = append(tallies, electionports.CandidateTally{
			CandidateID:   row.Candidate.ID,
			FullName:      row.Candidate.FullName,
			BatchYear:     row.Candidate.BatchYear,
			CampusChapter: row.Candidate.CampusChapter,
			PhotoPath:     row.Candidate.PhotoPath,
			Votes:         row.Votes,
		})
	}
	return tallies, nil
}

// sessionTurnoutReader counts registered and voted electors for stats.
type sessionTurnoutReader struct {
	sessions sessionapp.Service
}

func (r sessionTurnoutReader) CountVoters(ctx context.Context) (int, int, error) {
	voters, err := r.sessions.ListVoters(ctx)
	if err != nil {
		return 0, 0, err
	}
	voted := 0
	for _, voter := range voters {
		if voter.HasVoted {
			voted++
		}
	}
	return len(voters), voted, nil
}

// sessionVoterResetter clears every voter during an election reset.
type sessionVoterResetter struct {
	sessions sessionapp.Service
}

func (r sessionVoterResetter) ResetAllVoters(ctx context.Context) (int, error) {
	outcome, err := r.sessions.ResetVoters(ctx, false)
	if err != nil {
		return 0, err
	}
	return outcome.Count, nil
}

// notificationAppender fans one context's notification records into the
// engagement feed.
type notificationAppender struct {
	notifications notificationapp.Service
}

func (a notificationAppender) appendRecord(ctx context.Context, kind string, message string, voterID string) error {
	_, err := a.notifications.Append(ctx, notificationapp.AppendInput{
		Type:    kind,
		Message: message,
		VoterID: voterID,
	})
	return err
}

type sessionNotificationWriter struct {
	notificationAppender
}

func (w sessionNotificationWriter) Append(ctx context.Context, record sessionports.NotificationRecord) error {
	return w.appendRecord(ctx, record.Type, record.Message, record.VoterID)
}

type nominationNotificationWriter struct {
	notificationAppender
}

func (w nominationNotificationWriter) Append(ctx context.Context, record nominationports.NotificationRecord) error {
	return w.appendRecord(ctx, record.Type, record.Message, record.VoterID)
}
