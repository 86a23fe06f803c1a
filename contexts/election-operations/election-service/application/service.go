package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"alumvote/contexts/election-operations/election-service/domain/entities"
	domainerrors "alumvote/contexts/election-operations/election-service/domain/errors"
	"alumvote/contexts/election-operations/election-service/ports"
	"alumvote/contracts/schedule"
)

// Service owns the election record, its position roster, phase
// resolution, publication, turnout stats, reminders, and resets.
type Service struct {
	Elections   ports.ElectionRepository
	Positions   ports.PositionRepository
	Reminders   ports.ReminderRepository
	Tallies     ports.TallyReader
	Turnout     ports.TurnoutReader
	Ballots     ports.BallotPurger
	Nominations ports.NominationPurger
	Voters      ports.VoterResetter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	// Location interprets admin-entered timestamps without zone info.
	Location *time.Location
	Logger   *slog.Logger
}

// ElectionView pairs the stored election with its resolved phase.
type ElectionView struct {
	Election entities.Election
	Phase    schedule.Phase
}

/// TimeField is a tri-state timestamp input: absent, explicit clear
// (Set with empty Value), or a value to parse.
type TimeField struct {
	Set   bool
	Value string
}

type CreateElectionInput struct {
	Name               string
	Description        string
	Mode               string
	IsActive           *bool
	AutoPublishResults *bool
	NominationStart    TimeField
	NominationEnd      TimeField
	VotingStart        TimeField
	VotingEnd          TimeField
	ResultsAt          TimeField
}

type UpdateElectionInput struct {
	Name               *string
	Description        *string
	Mode               *string
	IsActive           *bool
	AutoPublishResults *bool
	NominationStart    TimeField
	NominationEnd      TimeField
	VotingStart        TimeField
	VotingEnd          TimeField
	ResultsAt          TimeField
}

type CandidateResult struct {
	CandidateID   string
	FullName      string
	BatchYear     int
	CampusChapter string
	PhotoPath     string
	Votes         int
	Winner        bool
}

type PositionResult struct {
	PositionID string
	Position   string
	Candidates []CandidateResult
}

type PublishedResults struct {
	Published    bool
	Reason       string
	PublishedAt  *time.Time
	ElectionID   string
	ElectionName string
	Positions    []PositionResult
}

type TurnoutStats struct {
	TotalVoters    int
	VotedCount     int
	TurnoutPercent float64
}

type ResetSummary struct {
	ElectionID         string
	VotesDeleted       int64
	NominationsDeleted int64
	VotersReset        int
}

// CurrentElection returns the active election, running the lazy
// auto-publish check first. ok is false when nothing is active.
func (s Service) CurrentElection(ctx context.Context) (ElectionView, bool, error) {
	election, err := s.Elections.GetActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return ElectionView{}, false, nil
		}
		return ElectionView{}, false, err
	}
	election, err = s.maybeAutoPublish(ctx, election)
	if err != nil {
		return ElectionView{}, false, err
	}
	return s.view(election), true, nil
}

// PublicPositions lists the active election's offices, seeding the
// default catalog on first read so a fresh election is immediately
// usable.
func (s Service) PublicPositions(ctx context.Context) ([]entities.Position, error) {
	election, err := s.Elections.GetActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return []entities.Position{}, nil
		}
		return nil, err
	}
	return s.ensurePositions(ctx, election.ID)
}

// CreateElection validates the four window instants as a unit, creates
// the election, and provisions positions from the most recent election
// or, failing that, the default catalog.
func (s Service) CreateElection(ctx context.Context, input CreateElectionInput) (ElectionView, error) {
	logger := ResolveLogger(s.Logger)
	windows, err := s.parseWindows(
		input.NominationStart, input.NominationEnd,
		input.VotingStart, input.VotingEnd, input.ResultsAt)
	if err != nil {
		return ElectionView{}, err
	}
	if windows.nominationStart.Value == nil || windows.nominationEnd.Value == nil ||
		windows.votingStart.Value == nil || windows.votingEnd.Value == nil {
		return ElectionView{}, domainerrors.ErrTimelineIncomplete
	}

	now := s.Clock.Now()
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("Alumni Election %d", now.Year())
	}
	mode := strings.TrimSpace(input.Mode)
	if mode == "" {
		mode = string(schedule.ModeTimeline)
	}
	if mode != string(schedule.ModeTimeline) && mode != string(schedule.ModeDemo) {
		mode = string(schedule.ModeTimeline)
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	autoPublish := true
	if input.AutoPublishResults != nil {
		autoPublish = *input.AutoPublishResults
	}

	// Resolve the position source before the new row becomes the latest.
	var source *entities.Election
	if previous, err := s.Elections.GetLatestElection(ctx); err == nil {
		source = &previous
	} else if !errors.Is(err, domainerrors.ErrNoElection) {
		return ElectionView{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ElectionView{}, err
	}
	election := entities.Election{
		ID:                 id,
		Name:               name,
		Description:        strings.TrimSpace(input.Description),
		NominationStart:    windows.nominationStart.Value,
		NominationEnd:      windows.nominationEnd.Value,
		VotingStart:        windows.votingStart.Value,
		VotingEnd:          windows.votingEnd.Value,
		ResultsAt:          windows.resultsAt.Value,
		AutoPublishResults: autoPublish,
		IsActive:           false,
		Mode:               mode,
		CreatedAt:          now.UTC(),
	}
	if err := s.Elections.CreateElection(ctx, election); err != nil {
		return ElectionView{}, err
	}
	if active {
		if err := s.Elections.ActivateExclusive(ctx, election.ID); err != nil {
			return ElectionView{}, err
		}
		election.IsActive = true
	}

	if err := s.provisionPositions(ctx, election.ID, source); err != nil {
		return ElectionView{}, err
	}

	logger.Info("election created",
		"event", "election_created",
		"module", "election-operations/election-service",
		"layer", "application",
		"election_id", election.ID,
		"name", election.Name,
	)
	return s.view(election), nil
}

// AdminElection returns the active election, falling back to the most
// recent one so the admin console can still edit a drafted schedule.
func (s Service) AdminElection(ctx context.Context) (ElectionView, error) {
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return ElectionView{}, err
	}
	election, err = s.maybeAutoPublish(ctx, election)
	if err != nil {
		return ElectionView{}, err
	}
	return s.view(election), nil
}

// UpdateElection applies a partial update. Each timestamp is tri-state:
// absent fields stay put, empty strings clear, values are parsed in the
// deployment zone. Activating routes through ActivateExclusive so only
// one election can ever be active.
func (s Service) UpdateElection(ctx context.Context, input UpdateElectionInput) (ElectionView, error) {
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return ElectionView{}, err
	}
	windows, err := s.parseWindows(
		input.NominationStart, input.NominationEnd,
		input.VotingStart, input.VotingEnd, input.ResultsAt)
	if err != nil {
		return ElectionView{}, err
	}

	update := ports.ElectionUpdate{
		NominationStart:    windows.nominationStart,
		NominationEnd:      windows.nominationEnd,
		VotingStart:        windows.votingStart,
		VotingEnd:          windows.votingEnd,
		ResultsAt:          windows.resultsAt,
		AutoPublishResults: input.AutoPublishResults,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return ElectionView{}, domainerrors.ErrNameEmpty
		}
		update.Name = &name
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		update.Description = &description
	}
	if input.Mode != nil {
		mode := strings.TrimSpace(*input.Mode)
		if mode != "" {
			if mode != string(schedule.ModeTimeline) && mode != string(schedule.ModeDemo) {
				return ElectionView{}, domainerrors.ErrInvalidMode
			}
			update.Mode = &mode
			if mode == string(schedule.ModeTimeline) {
				cleared := ""
				update.DemoPhase = &cleared
			}
		}
	}

	activate := false
	if input.IsActive != nil {
		if *input.IsActive {
			// Activation goes through ActivateExclusive below.
			activate = true
		} else {
			update.IsActive = input.IsActive
		}
	}

	if !update.Empty() {
		if err := s.Elections.UpdateElection(ctx, election.ID, update); err != nil {
			return ElectionView{}, err
		}
	}
	if activate {
		if err := s.Elections.ActivateExclusive(ctx, election.ID); err != nil {
			return ElectionView{}, err
		}
	}

	election, err = s.Elections.GetElection(ctx, election.ID)
	if err != nil {
		return ElectionView{}, err
	}
	return s.view(election), nil
}

// PublishResults flips official publication on or off for the active or
// latest election.
func (s Service) PublishResults(ctx context.Context, publish bool) (ElectionView, error) {
	logger := ResolveLogger(s.Logger)
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return ElectionView{}, err
	}

	published := publish
	update := ports.ElectionUpdate{ResultsPublished: &published}
	if publish {
		now := s.Clock.Now()
		update.ResultsPublishedAt = ports.TimePatch{Set: true, Value: &now}
	} else {
		update.ResultsPublishedAt = ports.TimePatch{Set: true}
	}
	if err := s.Elections.UpdateElection(ctx, election.ID, update); err != nil {
		return ElectionView{}, err
	}
	election, err = s.Elections.GetElection(ctx, election.ID)
	if err != nil {
		return ElectionView{}, err
	}
	logger.Info("results publication changed",
		"event", "election_publish_toggled",
		"module", "election-operations/election-service",
		"layer", "application",
		"election_id", election.ID,
		"published", publish,
	)
	return s.view(election), nil
}

// ApplyDemoAction drives the election through its phases without manual
// date entry. Every action writes synthetic timeline instants so stored
// rows look the same in both modes; exit_demo only reverts the mode.
func (s Service) ApplyDemoAction(ctx context.Context, action string) (ElectionView, error) {
	logger := ResolveLogger(s.Logger)
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return ElectionView{}, err
	}

	now := s.Clock.Now()
	demo := string(schedule.ModeDemo)
	update := ports.ElectionUpdate{Mode: &demo}
	activate := false

	switch strings.TrimSpace(action) {
	case "open_nomination":
		update.NominationStart = patchValue(now.Add(-time.Minute))
		update.NominationEnd = patchValue(now.Add(30 * 24 * time.Hour))
		update.VotingStart = ports.TimePatch{Set: true}
		update.VotingEnd = ports.TimePatch{Set: true}
		update.DemoPhase = demoPhase(schedule.DemoNomination)
		activate = true
	case "close_nomination":
		if election.NominationStart == nil {
			update.NominationStart = patchValue(now.Add(-24 * time.Hour))
		}
		update.NominationEnd = patchValue(now.Add(-time.Minute))
		update.DemoPhase = demoPhase(schedule.DemoBetween)
	case "open_voting":
		if election.NominationStart == nil {
			update.NominationStart = patchValue(now.Add(-48 * time.Hour))
		}
		if election.NominationEnd == nil {
			update.NominationEnd = patchValue(now.Add(-time.Hour))
		}
		update.VotingStart = patchValue(now.Add(-time.Minute))
		update.VotingEnd = patchValue(now.Add(30 * 24 * time.Hour))
		update.DemoPhase = demoPhase(schedule.DemoVoting)
		activate = true
	case "close_voting":
		if election.VotingStart == nil {
			update.VotingStart = patchValue(now.Add(-24 * time.Hour))
		}
		update.VotingEnd = patchValue(now.Add(-time.Minute))
		update.DemoPhase = demoPhase(schedule.DemoClosed)
	case "exit_demo":
		timeline := string(schedule.ModeTimeline)
		update.Mode = &timeline
		update.DemoPhase = demoPhase("")
	default:
		return ElectionView{}, domainerrors.ErrInvalidDemoAction
	}

	if err := s.Elections.UpdateElection(ctx, election.ID, update); err != nil {
		return ElectionView{}, err
	}
	if activate {
		if err := s.Elections.ActivateExclusive(ctx, election.ID); err != nil {
			return ElectionView{}, err
		}
	}
	election, err = s.Elections.GetElection(ctx, election.ID)
	if err != nil {
		return ElectionView{}, err
	}
	logger.Info("demo action applied",
		"event", "election_demo_action",
		"module", "election-operations/election-service",
		"layer", "application",
		"election_id", election.ID,
		"action", action,
	)
	return s.view(election), nil
}

// Results returns the public tabulation, gated on publication. The
// response always carries a reason instead of an error so the public
// page can render the pending state.
func (s Service) Results(ctx context.Context) (PublishedResults, error) {
	election, err := s.Elections.GetActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return PublishedResults{Reason: "no_active_election"}, nil
		}
		return PublishedResults{}, err
	}
	election, err = s.maybeAutoPublish(ctx, election)
	if err != nil {
		return PublishedResults{}, err
	}
	if !election.ResultsPublished {
		return PublishedResults{Reason: "not_published"}, nil
	}

	positions, err := s.tabulate(ctx, election.ID)
	if err != nil {
		return PublishedResults{}, err
	}
	return PublishedResults{
		Published:    true,
		PublishedAt:  election.ResultsPublishedAt,
		ElectionID:   election.ID,
		ElectionName: election.Name,
		Positions:    positions,
	}, nil
}

// AdminTally is the live tabulation for staff; no publication gate.
func (s Service) AdminTally(ctx context.Context) ([]PositionResult, error) {
	election, err := s.Elections.GetActiveElection(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoActiveElection) {
			return []PositionResult{}, nil
		}
		return nil, err
	}
	return s.tabulate(ctx, election.ID)
}

// Stats reports turnout for the voter directory as a whole.
func (s Service) Stats(ctx context.Context) (TurnoutStats, error) {
	total, voted, err := s.Turnout.CountVoters(ctx)
	if err != nil {
		return TurnoutStats{}, err
	}
	stats := TurnoutStats{TotalVoters: total, VotedCount: voted}
	if total > 0 {
		stats.TurnoutPercent = math.Round(float64(voted)/float64(total)*10000) / 100
	}
	return stats, nil
}

// ResetElection wipes votes and nominations for the active or latest
// election, resets every voter, clears the timeline, and deactivates the
// election until new dates are set. Candidates survive.
func (s Service) ResetElection(ctx context.Context) (ResetSummary, error) {
	logger := ResolveLogger(s.Logger)
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return ResetSummary{}, err
	}

	positions, err := s.Positions.ListPositions(ctx, election.ID, false)
	if err != nil {
		return ResetSummary{}, err
	}
	positionIDs := make([]string, 0, len(positions))
	for _, position := range positions {
		positionIDs = append(positionIDs, position.ID)
	}

	summary := ResetSummary{ElectionID: election.ID}
	summary.VotesDeleted, err = s.Ballots.DeleteVotesByPositions(ctx, positionIDs)
	if err != nil {
		return ResetSummary{}, err
	}
	summary.NominationsDeleted, err = s.Nominations.DeleteNominationsByElection(ctx, election.ID)
	if err != nil {
		return ResetSummary{}, err
	}
	summary.VotersReset, err = s.Voters.ResetAllVoters(ctx)
	if err != nil {
		return ResetSummary{}, err
	}

	autoPublish := true
	published := false
	inactive := false
	update := ports.ElectionUpdate{
		NominationStart:    ports.TimePatch{Set: true},
		NominationEnd:      ports.TimePatch{Set: true},
		VotingStart:        ports.TimePatch{Set: true},
		VotingEnd:          ports.TimePatch{Set: true},
		ResultsAt:          ports.TimePatch{Set: true},
		AutoPublishResults: &autoPublish,
		ResultsPublished:   &published,
		ResultsPublishedAt: ports.TimePatch{Set: true},
		IsActive:           &inactive,
	}
	if err := s.Elections.UpdateElection(ctx, election.ID, update); err != nil {
		return ResetSummary{}, err
	}

	logger.Info("election reset",
		"event", "election_reset",
		"module", "election-operations/election-service",
		"layer", "application",
		"election_id", election.ID,
		"votes_deleted", summary.VotesDeleted,
		"nominations_deleted", summary.NominationsDeleted,
		"voters_reset", summary.VotersReset,
	)
	return summary, nil
}

// ListReminders returns the active or latest election's reminders.
func (s Service) ListReminders(ctx context.Context) ([]entities.Reminder, error) {
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return nil, err
	}
	return s.Reminders.ListReminders(ctx, election.ID)
}

// CreateReminder pins a note to an instant on the election calendar.
func (s Service) CreateReminder(ctx context.Context, remindAt string, note string) (entities.Reminder, error) {
	election, err := s.activeOrLatest(ctx)
	if err != nil {
		return entities.Reminder{}, err
	}
	if strings.TrimSpace(remindAt) == "" {
		return entities.Reminder{}, domainerrors.ErrRemindAtRequired
	}
	at, err := schedule.ParseLocal(remindAt, s.Location)
	if err != nil {
		return entities.Reminder{}, domainerrors.ErrInvalidTimestamp
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Reminder{}, err
	}
	reminder := entities.Reminder{
		ID:         id,
		ElectionID: election.ID,
		RemindAt:   at,
		Note:       strings.TrimSpace(note),
		CreatedAt:  s.Clock.Now().UTC(),
	}
	if err := s.Reminders.CreateReminder(ctx, reminder); err != nil {
		return entities.Reminder{}, err
	}
	return reminder, nil
}

func (s Service) view(election entities.Election) ElectionView {
	timeline := schedule.Timeline{
		NominationStart: election.NominationStart,
		NominationEnd:   election.NominationEnd,
		VotingStart:     election.VotingStart,
		VotingEnd:       election.VotingEnd,
	}
	phase := schedule.Resolve(timeline, schedule.Mode(election.Mode), election.DemoPhase, s.Clock.Now())
	return ElectionView{Election: election, Phase: phase}
}

func (s Service) activeOrLatest(ctx context.Context) (entities.Election, error) {
	election, err := s.Elections.GetActiveElection(ctx)
	if err == nil {
		return election, nil
	}
	if !errors.Is(err, domainerrors.ErrNoActiveElection) {
		return entities.Election{}, err
	}
	return s.Elections.GetLatestElection(ctx)
}

// maybeAutoPublish flips publication once the configured results_at
// instant has passed. It runs lazily on reads; there is no scheduler.
func (s Service) maybeAutoPublish(ctx context.Context, election entities.Election) (entities.Election, error) {
	if election.ResultsPublished || !election.AutoPublishResults || election.ResultsAt == nil {
		return election, nil
	}
	now := s.Clock.Now()
	if now.Before(*election.ResultsAt) {
		return election, nil
	}
	published := true
	update := ports.ElectionUpdate{
		ResultsPublished:   &published,
		ResultsPublishedAt: ports.TimePatch{Set: true, Value: &now},
	}
	if err := s.Elections.UpdateElection(ctx, election.ID, update); err != nil {
		return entities.Election{}, err
	}
	election.ResultsPublished = true
	election.ResultsPublishedAt = &now
	return election, nil
}

func (s Service) ensurePositions(ctx context.Context, electionID string) ([]entities.Position, error) {
	positions, err := s.Positions.ListPositions(ctx, electionID, true)
	if err != nil {
		return nil, err
	}
	if len(positions) > 0 {
		return positions, nil
	}
	if err := s.seedCatalog(ctx, electionID); err != nil {
		return nil, err
	}
	return s.Positions.ListPositions(ctx, electionID, true)
}

func (s Service) provisionPositions(ctx context.Context, electionID string, source *entities.Election) error {
	copied := 0
	if source != nil && source.ID != electionID {
		positions, err := s.Positions.ListPositions(ctx, source.ID, false)
		if err != nil {
			return err
		}
		for _, position := range positions {
			id, err := s.IDGen.NewID(ctx)
			if err != nil {
				return err
			}
			position.ID = id
			position.ElectionID = electionID
			if err := s.Positions.CreatePosition(ctx, position); err != nil {
				return err
			}
			copied++
		}
	}
	if copied > 0 {
		return nil
	}
	return s.seedCatalog(ctx, electionID)
}

func (s Service) seedCatalog(ctx context.Context, electionID string) error {
	for order, code := range entities.PositionCatalog {
		id, err := s.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		position := entities.Position{
			ID:           id,
			ElectionID:   electionID,
			Name:         code,
			Seats:        1,
			DisplayOrder: order,
			IsActive:     true,
		}
		if err := s.Positions.CreatePosition(ctx, position); err != nil {
			return err
		}
	}
	return nil
}

func (s Service) tabulate(ctx context.Context, electionID string) ([]PositionResult, error) {
	positions, err := s.Positions.ListPositions(ctx, electionID, true)
	if err != nil {
		return nil, err
	}
	results := make([]PositionResult, 0, len(positions))
	for _, position := range positions {
		tallies, err := s.Tallies.TallyByPosition(ctx, position.ID)
		if err != nil {
			return nil, err
		}
		maxVotes := 0
		candidates := make([]CandidateResult, 0, len(tallies))
		for _, tally := range tallies {
			if tally.Votes > maxVotes {
				maxVotes = tally.Votes
			}
			candidates = append(candidates, CandidateResult{
				CandidateID:   tally.CandidateID,
				FullName:      tally.FullName,
				BatchYear:     tally.BatchYear,
				CampusChapter: tally.CampusChapter,
				PhotoPath:     tally.PhotoPath,
				Votes:         tally.Votes,
			})
		}
		// Ties share the win.
		for i := range candidates {
			candidates[i].Winner = maxVotes > 0 && candidates[i].Votes == maxVotes
		}
		results = append(results, PositionResult{
			PositionID: position.ID,
			Position:   position.DisplayName(),
			Candidates: candidates,
		})
	}
	return results, nil
}

type parsedWindows struct {
	nominationStart ports.TimePatch
	nominationEnd   ports.TimePatch
	votingStart     ports.TimePatch
	votingEnd       ports.TimePatch
	resultsAt       ports.TimePatch
}

func (s Service) parseWindows(nominationStart, nominationEnd, votingStart, votingEnd, resultsAt TimeField) (parsedWindows, error) {
	var windows parsedWindows
	var err error
	if windows.nominationStart, err = s.parseField(nominationStart); err != nil {
		return parsedWindows{}, err
	}
	if windows.nominationEnd, err = s.parseField(nominationEnd); err != nil {
		return parsedWindows{}, err
	}
	if windows.votingStart, err = s.parseField(votingStart); err != nil {
		return parsedWindows{}, err
	}
	if windows.votingEnd, err = s.parseField(votingEnd); err != nil {
		return parsedWindows{}, err
	}
	if windows.resultsAt, err = s.parseField(resultsAt); err != nil {
		return parsedWindows{}, err
	}

	ns, ne := windows.nominationStart.Value, windows.nominationEnd.Value
	vs, ve := windows.votingStart.Value, windows.votingEnd.Value
	if ns != nil && ne != nil && !ne.After(*ns) {
		return parsedWindows{}, domainerrors.ErrNominationWindowOrder
	}
	if vs != nil && ve != nil && !ve.After(*vs) {
		return parsedWindows{}, domainerrors.ErrVotingWindowOrder
	}
	if ne != nil && vs != nil && !vs.After(*ne) {
		return parsedWindows{}, domainerrors.ErrWindowOverlap
	}
	return windows, nil
}

func (s Service) parseField(field TimeField) (ports.TimePatch, error) {
	if !field.Set {
		return ports.TimePatch{}, nil
	}
	if strings.TrimSpace(field.Value) == "" {
		return ports.TimePatch{Set: true}, nil
	}
	parsed, err := schedule.ParseLocal(field.Value, s.Location)
	if err != nil {
		return ports.TimePatch{}, domainerrors.ErrInvalidTimestamp
	}
	return ports.TimePatch{Set: true, Value: &parsed}, nil
}

func patchValue(value time.Time) ports.TimePatch {
	return ports.TimePatch{Set: true, Value: &value}
}

func demoPhase(value string) *string {
	return &value
}
