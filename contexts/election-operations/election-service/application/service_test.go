package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumvote/contexts/election-operations/election-service/adapters/memory"
	domainerrors "alumvote/contexts/election-operations/election-service/domain/errors"
	"alumvote/contexts/election-operations/election-service/ports"
	"alumvote/contracts/schedule"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fakeTally struct {
	byPosition map[string][]ports.CandidateTally
}

func (f fakeTally) TallyByPosition(_ context.Context, positionID string) ([]ports.CandidateTally, error) {
	return f.byPosition[positionID], nil
}

type fakeTurnout struct {
	total int
	voted int
}

func (f fakeTurnout) CountVoters(_ context.Context) (int, int, error) {
	return f.total, f.voted, nil
}

type fakePurge struct {
	votes       int64
	nominations int64
	voters      int
}

func (f *fakePurge) DeleteVotesByPositions(_ context.Context, ids []string) (int64, error) {
	return f.votes, nil
}

func (f *fakePurge) DeleteNominationsByElection(_ context.Context, _ string) (int64, error) {
	return f.nominations, nil
}

func (f *fakePurge) ResetAllVoters(_ context.Context) (int, error) {
	return f.voters, nil
}

type testEnv struct {
	service Service
	store   *memory.Store
	clock   *fixedClock
	tally   *fakeTally
	purge   *fakePurge
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	clock := &fixedClock{now: time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC)}
	tally := &fakeTally{byPosition: map[string][]ports.CandidateTally{}}
	purge := &fakePurge{votes: 12, nominations: 4, voters: 7}
	service := Service{
		Elections:   store,
		Positions:   store,
		Reminders:   store,
		Tallies:     tally,
		Turnout:     fakeTurnout{total: 40, voted: 13},
		Ballots:     purge,
		Nominations: purge,
		Voters:      purge,
		Clock:       clock,
		IDGen:       memory.UUIDGenerator{},
		Location:    time.UTC,
	}
	return &testEnv{service: service, store: store, clock: clock, tally: tally, purge: purge}
}

func field(value string) TimeField {
	return TimeField{Set: true, Value: value}
}

func fullWindowInput() CreateElectionInput {
	return CreateElectionInput{
		Name:            "Alumni Election 2026",
		NominationStart: field("2026-04-01T08:00:00Z"),
		NominationEnd:   field("2026-04-15T17:00:00Z"),
		VotingStart:     field("2026-04-20T08:00:00Z"),
		VotingEnd:       field("2026-04-25T17:00:00Z"),
	}
}

func TestCreateElectionSeedsDefaultPositions(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.service.CreateElection(context.Background(), fullWindowInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !view.Election.IsActive {
		t.Fatal("new election should default to active")
	}
	if view.Phase != schedule.PhaseNominationOpen {
		t.Fatalf("expected nomination_open on April 10, got %s", view.Phase)
	}

	positions, err := env.service.PublicPositions(context.Background())
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	if len(positions) != 6 {
		t.Fatalf("expected the 6 catalog positions, got %d", len(positions))
	}
	if positions[0].Name != "president" || positions[len(positions)-1].Name != "pio" {
		t.Fatalf("catalog order broken: %+v", positions)
	}
}

func TestCreateElectionCopiesPositionsFromPrevious(t *testing.T) {
	env := newTestEnv(t)
	first, err := env.service.CreateElection(context.Background(), fullWindowInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	_ = first

	input := fullWindowInput()
	input.Name = "Alumni Election 2027"
	input.NominationStart = field("2027-04-01T08:00:00Z")
	input.NominationEnd = field("2027-04-15T17:00:00Z")
	input.VotingStart = field("2027-04-20T08:00:00Z")
	input.VotingEnd = field("2027-04-25T17:00:00Z")
	second, err := env.service.CreateElection(context.Background(), input)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	positions, err := env.store.ListPositions(context.Background(), second.Election.ID, false)
	if err != nil {
		t.Fatalf("list positions: %v", err)
	}
	if len(positions) != 6 {
		t.Fatalf("expected positions copied from previous election, got %d", len(positions))
	}
}

func TestCreateElectionDeactivatesPreviousActive(t *testing.T) {
	env := newTestEnv(t)
	first, err := env.service.CreateElection(context.Background(), fullWindowInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	input := fullWindowInput()
	input.Name = "Alumni Election 2027"
	second, err := env.service.CreateElection(context.Background(), input)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	reloaded, err := env.store.GetElection(context.Background(), first.Election.ID)
	if err != nil {
		t.Fatalf("reload first: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("first election still active after second activation")
	}
	if !second.Election.IsActive {
		t.Fatal("second election not active")
	}
}

func TestCreateElectionValidatesWindows(t *testing.T) {
	env := newTestEnv(t)

	input := fullWindowInput()
	input.VotingEnd = TimeField{}
	if _, err := env.service.CreateElection(context.Background(), input); !errors.Is(err, domainerrors.ErrTimelineIncomplete) {
		t.Fatalf("expected incomplete timeline error, got %v", err)
	}

	input = fullWindowInput()
	input.NominationEnd = field("2026-03-01T08:00:00Z")
	if _, err := env.service.CreateElection(context.Background(), input); !errors.Is(err, domainerrors.ErrNominationWindowOrder) {
		t.Fatalf("expected nomination order error, got %v", err)
	}

	input = fullWindowInput()
	input.VotingStart = field("2026-04-10T08:00:00Z")
	if _, err := env.service.CreateElection(context.Background(), input); !errors.Is(err, domainerrors.ErrWindowOverlap) {
		t.Fatalf("expected overlap error, got %v", err)
	}
}

func TestUpdateElectionClearsTimestampExplicitly(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.CreateElection(context.Background(), fullWindowInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := env.service.UpdateElection(context.Background(), UpdateElectionInput{
		ResultsAt: field(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Election.ResultsAt != nil {
		t.Fatal("results_at not cleared")
	}

	// An absent field must not touch the stored value.
	view, err = env.service.UpdateElection(context.Background(), UpdateElectionInput{
		VotingEnd: field("2026-04-26T17:00:00Z"),
	})
	if err != nil {
		t.Fatalf("update voting end: %v", err)
	}
	if view.Election.NominationStart == nil {
		t.Fatal("untouched nomination_start was lost")
	}
}

func TestUpdateElectionSwitchToTimelineClearsDemoPhase(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.CreateElection(context.Background(), fullWindowInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.service.ApplyDemoAction(context.Background(), "open_voting"); err != nil {
		t.Fatalf("demo: %v", err)
	}

	mode := "timeline"
	view, err := env.service.UpdateElection(context.Background(), UpdateElectionInput{Mode: &mode})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Election.Mode != "timeline" || view.Election.DemoPhase != "" {
		t.Fatalf("demo phase not cleared: mode=%s demo=%q", view.Election.Mode, view.Election.DemoPhase)
	}
}

func TestDemoActionsWalkThePhases(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.CreateElection(context.Background(), fullWindowInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	steps := []struct {
		action string
		phase  schedule.Phase
	}{
		{"open_nomination", schedule.PhaseNominationOpen},
		{"close_nomination", schedule.PhaseBetween},
		{"open_voting", schedule.PhaseVotingOpen},
		{"close_voting", schedule.PhaseClosed},
	}
	for _, step := range steps {
		view, err := env.service.ApplyDemoAction(context.Background(), step.action)
		if err != nil {
			t.Fatalf("%s: %v", step.action, err)
		}
		if view.Phase != step.phase {
			t.Fatalf("%s: expected %s, got %s", step.action, step.phase, view.Phase)
		}
		if view.Election.Mode != "demo" {
			t.Fatalf("%s: mode is %s", step.action, view.Election.Mode)
		}
	}

	// Exiting demo keeps the synthesized instants but hands control back
	// to the timeline.
	view, err := env.service.ApplyDemoAction(context.Background(), "exit_demo")
	if err != nil {
		t.Fatalf("exit_demo: %v", err)
	}
	if view.Election.Mode != "timeline" || view.Election.DemoPhase != "" {
		t.Fatalf("exit_demo left mode=%s demo=%q", view.Election.Mode, view.Election.DemoPhase)
	}
	if view.Election.VotingEnd == nil {
		t.Fatal("exit_demo dropped synthesized timeline")
	}

	if _, err := env.service.ApplyDemoAction(context.Background(), "warp"); !errors.Is(err, domainerrors.ErrInvalidDemoAction) {
		t.Fatalf("expected invalid action error, got %v", err)
	}
}

func TestAutoPublishFlipsOnRead(t *testing.T) {
	env := newTestEnv(t)
	input := fullWindowInput()
	input.ResultsAt = field("2026-04-26T08:00:00Z")
	if _, err := env.service.CreateElection(context.Background(), input); err != nil {
		t.Fatalf("create: %v", err)
	}

	view, ok, err := env.service.CurrentElection(context.Background())
	if err != nil || !ok {
		t.Fatalf("current: ok=%v err=%v", ok, err)
	}
	if view.Election.ResultsPublished {
		t.Fatal("published before results_at")
	}

	env.clock.now = time.Date(2026, time.April, 26, 9, 0, 0, 0, time.UTC)
	view, ok, err = env.service.CurrentElection(context.Background())
	if err != nil || !ok {
		t.Fatalf("current after results_at: ok=%v err=%v", ok, err)
	}
	if !view.Election.ResultsPublished || view.Election.ResultsPublishedAt == nil {
		t.Fatal("auto-publish did not trigger")
	}
}

func TestResultsGateAndWinnerTies(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.CreateElection(context.Background(), fullWindowInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := env.service.Results(context.Background())
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if results.Published || results.Reason != "not_published" {
		t.Fatalf("expected not_published gate, got %+v", results)
	}

	if _, err := env.service.PublishResults(context.Background(), true); err != nil {
		t.Fatalf("publish: %v", err)
	}
	positions, err := env.service.PublicPositions(context.Background())
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	env.tally.byPosition[positions[0].ID] = []ports.CandidateTally{
		{CandidateID: "c1", FullName: "Ana Cruz", Votes: 5},
		{CandidateID: "c2", FullName: "Ben Ramos", Votes: 5},
		{CandidateID: "c3", FullName: "Carla Diaz", Votes: 2},
	}

	results, err = env.service.Results(context.Background())
	if err != nil {
		t.Fatalf("results after publish: %v", err)
	}
	if !results.Published {
		t.Fatal("expected published results")
	}
	top := results.Positions[0].Candidates
	if !top[0].Winner || !top[1].Winner || top[2].Winner {
		t.Fatalf("tie winners flagged wrong: %+v", top)
	}
}

func TestStatsRoundsTurnout(t *testing.T) {
	env := newTestEnv(t)
	stats, err := env.service.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVoters != 40 || stats.VotedCount != 13 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TurnoutPercent != 32.5 {
		t.Fatalf("expected 32.5 percent, got %v", stats.TurnoutPercent)
	}
}

func TestResetElectionClearsTimelineAndDeactivates(t *testing.T) {
	env := newTestEnv(t)
	created, err := env.service.CreateElection(context.Background(), fullWindowInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summary, err := env.service.ResetElection(context.Background())
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if summary.VotesDeleted != 12 || summary.NominationsDeleted != 4 || summary.VotersReset != 7 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	election, err := env.store.GetElection(context.Background(), created.Election.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if election.IsActive {
		t.Fatal("election still active after reset")
	}
	if election.NominationStart != nil || election.VotingEnd != nil || election.ResultsAt != nil {
		t.Fatal("timeline not cleared")
	}
	if election.ResultsPublished {
		t.Fatal("publication flag survived reset")
	}
}

func TestRemindersRequireInstant(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.CreateElection(context.Background(), fullWindowInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := env.service.CreateReminder(context.Background(), "  ", "prep"); !errors.Is(err, domainerrors.ErrRemindAtRequired) {
		t.Fatalf("expected remind_at error, got %v", err)
	}

	reminder, err := env.service.CreateReminder(context.Background(), "2026-04-19T08:00:00Z", "brief the committee")
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}
	if reminder.Note != "brief the committee" {
		t.Fatalf("unexpected reminder: %+v", reminder)
	}

	reminders, err := env.service.ListReminders(context.Background())
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(reminders))
	}
}
