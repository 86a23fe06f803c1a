package httpadapter

import (
	"context"
	"log/slog"

	"alumvote/contexts/election-operations/election-service/application"
	"alumvote/contexts/election-operations/election-service/domain/entities"
	httptransport "alumvote/contexts/election-operations/election-service/transport/http"
)

type Handler struct {
	Elections application.Service
	Logger    *slog.Logger
}

func (h Handler) CurrentElectionHandler(ctx context.Context) (httptransport.CurrentElectionResponse, error) {
	view, ok, err := h.Elections.CurrentElection(ctx)
	if err != nil {
		return httptransport.CurrentElectionResponse{}, err
	}
	if !ok {
		return httptransport.CurrentElectionResponse{HasElection: false}, nil
	}
	payload := toElectionPayload(view)
	return httptransport.CurrentElectionResponse{HasElection: true, Election: &payload}, nil
}

func (h Handler) PositionsHandler(ctx context.Context) ([]httptransport.PositionPayload, error) {
	positions, err := h.Elections.PublicPositions(ctx)
	if err != nil {
		return nil, err
	}
	return toPositionPayloads(positions), nil
}

func (h Handler) AdminElectionHandler(ctx context.Context) (httptransport.ElectionPayload, error) {
	view, err := h.Elections.AdminElection(ctx)
	if err != nil {
		return httptransport.ElectionPayload{}, err
	}
	return toElectionPayload(view), nil
}

func (h Handler) CreateElectionHandler(ctx context.Context, req httptransport.ElectionWriteRequest) (httptransport.ElectionPayload, error) {
	input := application.CreateElectionInput{
		NominationStart: toTimeField(req.NominationStart),
		NominationEnd:   toTimeField(req.NominationEnd),
		VotingStart:     toTimeField(req.VotingStart),
		VotingEnd:       toTimeField(req.VotingEnd),
		ResultsAt:       toTimeField(req.ResultsAt),
		IsActive:        req.IsActive,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Mode != nil {
		input.Mode = *req.Mode
	}
	input.AutoPublishResults = req.AutoPublishResults
	view, err := h.Elections.CreateElection(ctx, input)
	if err != nil {
		return httptransport.ElectionPayload{}, err
	}
	return toElectionPayload(view), nil
}

func (h Handler) UpdateElectionHandler(ctx context.Context, req httptransport.ElectionWriteRequest) (httptransport.ElectionPayload, error) {
	input := application.UpdateElectionInput{
		Name:               req.Name,
		Description:        req.Description,
		Mode:               req.Mode,
		IsActive:           req.IsActive,
		AutoPublishResults: req.AutoPublishResults,
		NominationStart:    toTimeField(req.NominationStart),
		NominationEnd:      toTimeField(req.NominationEnd),
		VotingStart:        toTimeField(req.VotingStart),
		VotingEnd:          toTimeField(req.VotingEnd),
		ResultsAt:          toTimeField(req.ResultsAt),
	}
	view, err := h.Elections.UpdateElection(ctx, input)
	if err != nil {
		return httptransport.ElectionPayload{}, err
	}
	return toElectionPayload(view), nil
}

func (h Handler) PublishHandler(ctx context.Context, req httptransport.PublishRequest) (httptransport.ElectionPayload, error) {
	publish := true
	if req.Publish != nil {
		publish = *req.Publish
	}
	view, err := h.Elections.PublishResults(ctx, publish)
	if err != nil {
		return httptransport.ElectionPayload{}, err
	}
	return toElectionPayload(view), nil
}

func (h Handler) DemoPhaseHandler(ctx context.Context, req httptransport.DemoPhaseRequest) (httptransport.ElectionPayload, error) {
	view, err := h.Elections.ApplyDemoAction(ctx, req.Action)
	if err != nil {
		return httptransport.ElectionPayload{}, err
	}
	return toElectionPayload(view), nil
}

func (h Handler) ResultsHandler(ctx context.Context) (httptransport.ResultsResponse, error) {
	results, err := h.Elections.Results(ctx)
	if err != nil {
		return httptransport.ResultsResponse{}, err
	}
	resp := httptransport.ResultsResponse{
		Published:   results.Published,
		Reason:      results.Reason,
		PublishedAt: results.PublishedAt,
	}
	if results.Published {
		resp.Election = &httptransport.ResultsElectionRef{
			ID:   results.ElectionID,
			Name: results.ElectionName,
		}
		resp.Positions = toPositionResultPayloads(results.Positions)
	}
	return resp, nil
}

func (h Handler) TallyHandler(ctx context.Context) ([]httptransport.PositionResultPayload, error) {
	tally, err := h.Elections.AdminTally(ctx)
	if err != nil {
		return nil, err
	}
	return toPositionResultPayloads(tally), nil
}

func (h Handler) StatsHandler(ctx context.Context) (httptransport.StatsResponse, error) {
	stats, err := h.Elections.Stats(ctx)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}
	return httptransport.StatsResponse{
		TotalVoters:    stats.TotalVoters,
		VotedCount:     stats.VotedCount,
		TurnoutPercent: stats.TurnoutPercent,
	}, nil
}

func (h Handler) ResetElectionHandler(ctx context.Context) (httptransport.ResetElectionResponse, error) {
	summary, err := h.Elections.ResetElection(ctx)
	if err != nil {
		return httptransport.ResetElectionResponse{}, err
	}
	return httptransport.ResetElectionResponse{
		ElectionID:         summary.ElectionID,
		VotesDeleted:       summary.VotesDeleted,
		NominationsDeleted: summary.NominationsDeleted,
		VotersReset:        summary.VotersReset,
	}, nil
}

func (h Handler) ListRemindersHandler(ctx context.Context) ([]httptransport.ReminderPayload, error) {
	reminders, err := h.Elections.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	payloads := make([]httptransport.ReminderPayload, 0, len(reminders))
	for _, reminder := range reminders {
		payloads = append(payloads, toReminderPayload(reminder))
	}
	return payloads, nil
}

func (h Handler) CreateReminderHandler(ctx context.Context, req httptransport.CreateReminderRequest) (httptransport.ReminderPayload, error) {
	reminder, err := h.Elections.CreateReminder(ctx, req.RemindAt, req.Note)
	if err != nil {
		return httptransport.ReminderPayload{}, err
	}
	return toReminderPayload(reminder), nil
}

func toTimeField(value *string) application.TimeField {
	if value == nil {
		return application.TimeField{}
	}
	return application.TimeField{Set: true, Value: *value}
}

func toElectionPayload(view application.ElectionView) httptransport.ElectionPayload {
	e := view.Election
	return httptransport.ElectionPayload{
		ID:                 e.ID,
		Name:               e.Name,
		Description:        e.Description,
		NominationStart:    e.NominationStart,
		NominationEnd:      e.NominationEnd,
		VotingStart:        e.VotingStart,
		VotingEnd:          e.VotingEnd,
		ResultsAt:          e.ResultsAt,
		AutoPublishResults: e.AutoPublishResults,
		ResultsPublished:   e.ResultsPublished,
		ResultsPublishedAt: e.ResultsPublishedAt,
		IsActive:           e.IsActive,
		Mode:               e.Mode,
		DemoPhase:          e.DemoPhase,
		Phase:              string(view.Phase),
	}
}

func toPositionPayloads(positions []entities.Position) []httptransport.PositionPayload {
	payloads := make([]httptransport.PositionPayload, 0, len(positions))
	for _, position := range positions {
		payloads = append(payloads, httptransport.PositionPayload{
			ID:           position.ID,
			ElectionID:   position.ElectionID,
			Name:         position.Name,
			NameDisplay:  position.DisplayName(),
			Seats:        position.Seats,
			DisplayOrder: position.DisplayOrder,
			IsActive:     position.IsActive,
		})
	}
	return payloads
}

func toPositionResultPayloads(results []application.PositionResult) []httptransport.PositionResultPayload {
	payloads := make([]httptransport.PositionResultPayload, 0, len(results))
	for _, result := range results {
		candidates := make([]httptransport.CandidateResultPayload, 0, len(result.Candidates))
		for _, candidate := range result.Candidates {
			candidates = append(candidates, httptransport.CandidateResultPayload{
				ID:            candidate.CandidateID,
				FullName:      candidate.FullName,
				BatchYear:     candidate.BatchYear,
				CampusChapter: candidate.CampusChapter,
				PhotoPath:     candidate.PhotoPath,
				Votes:         candidate.Votes,
				Winner:        candidate.Winner,
			})
		}
		payloads = append(payloads, httptransport.PositionResultPayload{
			PositionID: result.PositionID,
			Position:   result.Position,
			Candidates: candidates,
		})
	}
	return payloads
}

func toReminderPayload(reminder entities.Reminder) httptransport.ReminderPayload {
	return httptransport.ReminderPayload{
		ID:         reminder.ID,
		ElectionID: reminder.ElectionID,
		RemindAt:   reminder.RemindAt,
		Note:       reminder.Note,
		CreatedAt:  reminder.CreatedAt,
	}
}
