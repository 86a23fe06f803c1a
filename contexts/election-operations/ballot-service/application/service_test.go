package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alumvote/contexts/election-operations/ballot-service/adapters/memory"
	domainerrors "alumvote/contexts/election-operations/ballot-service/domain/errors"
	"alumvote/contexts/election-operations/ballot-service/ports"
	"alumvote/contracts/schedule"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeElection struct {
	state ports.ElectionState
}

func (f *fakeElection) ActiveElection(_ context.Context) (ports.ElectionState, error) {
	return f.state, nil
}

type fakePositions struct {
	positions []ports.PositionInfo
}

func (f fakePositions) ListActivePositions(_ context.Context, _ string) ([]ports.PositionInfo, error) {
	return f.positions, nil
}

type fakeCandidates struct {
	candidates map[string]ports.CandidateInfo
}

func (f fakeCandidates) GetOfficialCandidate(_ context.Context, candidateID string) (ports.CandidateInfo, error) {
	candidate, ok := f.candidates[candidateID]
	if !ok {
		return ports.CandidateInfo{}, domainerrors.ErrInvalidCandidate
	}
	return candidate, nil
}

type testEnv struct {
	service  Service
	store    *memory.Store
	election *fakeElection
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	store.SeedNames(
		map[string]string{"p1": "president", "p2": "secretary"},
		map[string]string{"c1": "Ana Cruz", "c2": "Ben Ramos", "c3": "Lia Reyes"},
	)
	election := &fakeElection{state: ports.ElectionState{
		ElectionID: "e1",
		Phase:      schedule.PhaseVotingOpen,
	}}
	service := Service{
		Votes:     store,
		Elections: election,
		Positions: fakePositions{positions: []ports.PositionInfo{
			{ID: "p1", Name: "president", DisplayName: "President"},
			{ID: "p2", Name: "secretary", DisplayName: "Secretary"},
		}},
		Candidates: fakeCandidates{candidates: map[string]ports.CandidateInfo{
			"c1": {ID: "c1", PositionID: "p1", FullName: "Ana Cruz", IsOfficial: true},
			"c2": {ID: "c2", PositionID: "p2", FullName: "Ben Ramos", IsOfficial: true},
			"c3": {ID: "c3", PositionID: "p1", FullName: "Lia Reyes", IsOfficial: false},
		}},
		Clock: fixedClock{now: time.Date(2026, time.May, 20, 9, 0, 0, 0, time.UTC)},
		IDGen: memory.UUIDGenerator{},
	}
	return &testEnv{service: service, store: store, election: election}
}

func eligibleVoter() Voter {
	return Voter{ID: "v1", PrivacyConsent: true}
}

func fullBallot() map[string]string {
	return map[string]string{"p1": "c1", "p2": "c2"}
}

func TestSubmitBallotRecordsEveryVoteAndFlipsFlag(t *testing.T) {
	env := newTestEnv(t)

	votes, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), fullBallot())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("expected 2 votes, got %d", len(votes))
	}
	if !env.store.HasVoted("v1") {
		t.Fatal("has_voted not flipped")
	}

	details, err := env.service.MyVotes(context.Background(), "v1")
	if err != nil {
		t.Fatalf("my votes: %v", err)
	}
	if len(details) != 2 || details[0].CandidateName != "Ana Cruz" {
		t.Fatalf("unexpected vote listing: %+v", details)
	}
}

func TestSubmitBallotEligibilityGates(t *testing.T) {
	env := newTestEnv(t)

	voter := eligibleVoter()
	voter.PrivacyConsent = false
	if _, err := env.service.SubmitBallot(context.Background(), voter, fullBallot()); !errors.Is(err, domainerrors.ErrConsentRequired) {
		t.Fatalf("expected consent gate, got %v", err)
	}

	voter = eligibleVoter()
	voter.HasVoted = true
	if _, err := env.service.SubmitBallot(context.Background(), voter, fullBallot()); !errors.Is(err, domainerrors.ErrAlreadyVoted) {
		t.Fatalf("expected already-voted gate, got %v", err)
	}
}

func TestSubmitBallotRequiresOpenVotingWindow(t *testing.T) {
	env := newTestEnv(t)
	for _, phase := range []schedule.Phase{
		schedule.PhasePreNomination,
		schedule.PhaseNominationOpen,
		schedule.PhaseBetween,
		schedule.PhaseClosed,
	} {
		env.election.state.Phase = phase
		if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), fullBallot()); !errors.Is(err, domainerrors.ErrVotingClosed) {
			t.Fatalf("phase %s: expected voting-closed gate, got %v", phase, err)
		}
	}
}

func TestSubmitBallotRequiresExactPositionCoverage(t *testing.T) {
	env := newTestEnv(t)

	short := map[string]string{"p1": "c1"}
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), short); !errors.Is(err, domainerrors.ErrIncompleteBallot) {
		t.Fatalf("expected incomplete gate for missing position, got %v", err)
	}

	stray := map[string]string{"p1": "c1", "ghost": "c2"}
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), stray); !errors.Is(err, domainerrors.ErrIncompleteBallot) {
		t.Fatalf("expected incomplete gate for stray position, got %v", err)
	}
}

func TestSubmitBallotRejectsMismatchedCandidates(t *testing.T) {
	env := newTestEnv(t)

	// c2 is official but runs for p2, not p1.
	crossed := map[string]string{"p1": "c2", "p2": "c2"}
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), crossed); !errors.Is(err, domainerrors.ErrInvalidCandidate) {
		t.Fatalf("expected candidate gate, got %v", err)
	}

	// c3 runs for p1 but is not official.
	unofficial := map[string]string{"p1": "c3", "p2": "c2"}
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), unofficial); !errors.Is(err, domainerrors.ErrInvalidCandidate) {
		t.Fatalf("expected candidate gate for unofficial row, got %v", err)
	}

	if env.store.HasVoted("v1") {
		t.Fatal("rejected ballot must not flip has_voted")
	}
}

func TestSubmitBallotRejectsSecondBallot(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), fullBallot()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// A stale principal that missed the has_voted flip still hits the
	// storage duplicate check.
	if _, err := env.service.SubmitBallot(context.Background(), eligibleVoter(), fullBallot()); !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected duplicate gate, got %v", err)
	}
}

func TestSubmitBallotConcurrentDoubleSubmit(t *testing.T) {
	env := newTestEnv(t)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, results[slot] = env.service.SubmitBallot(context.Background(), eligibleVoter(), fullBallot())
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrDuplicateVote):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || duplicates != 1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d duplicates", succeeded, duplicates)
	}

	details, err := env.service.MyVotes(context.Background(), "v1")
	if err != nil {
		t.Fatalf("my votes: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 stored votes, got %d", len(details))
	}
}
