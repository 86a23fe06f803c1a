package schedule

import (
	"testing"
	"time"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestResolveTimelineWindows(t *testing.T) {
	timeline := Timeline{
		NominationStart: ts("2024-01-01T00:00:00Z"),
		NominationEnd:   ts("2024-01-10T00:00:00Z"),
		VotingStart:     ts("2024-01-20T00:00:00Z"),
		VotingEnd:       ts("2024-01-30T00:00:00Z"),
	}

	cases := []struct {
		now  string
		want Phase
	}{
		{"2023-12-25T00:00:00Z", PhasePreNomination},
		{"2024-01-01T00:00:00Z", PhaseNominationOpen},
		{"2024-01-05T00:00:00Z", PhaseNominationOpen},
		{"2024-01-10T00:00:00Z", PhaseBetween},
		{"2024-01-15T00:00:00Z", PhaseBetween},
		{"2024-01-20T00:00:00Z", PhaseVotingOpen},
		{"2024-01-29T23:59:59Z", PhaseVotingOpen},
		{"2024-01-30T00:00:00Z", PhaseClosed},
		{"2024-02-15T00:00:00Z", PhaseClosed},
	}
	for _, tc := range cases {
		got := Resolve(timeline, ModeTimeline, "", *ts(tc.now))
		if got != tc.want {
			t.Errorf("at %s: got %s, want %s", tc.now, got, tc.want)
		}
	}
}

func TestResolveFailsClosedOnPartialWindows(t *testing.T) {
	// nomination_start missing: the window must never report open, no
	// matter where now falls relative to nomination_end.
	timeline := Timeline{
		NominationEnd: ts("2024-01-10T00:00:00Z"),
	}
	for _, now := range []string{"2023-12-01T00:00:00Z", "2024-01-05T00:00:00Z", "2024-02-01T00:00:00Z"} {
		if got := Resolve(timeline, ModeTimeline, "", *ts(now)); got == PhaseNominationOpen {
			t.Fatalf("partial nomination window reported open at %s", now)
		}
	}

	timeline = Timeline{VotingStart: ts("2024-01-20T00:00:00Z")}
	if got := Resolve(timeline, ModeTimeline, "", *ts("2024-01-25T00:00:00Z")); got == PhaseVotingOpen {
		t.Fatal("partial voting window reported open")
	}
}

func TestResolveDemoModeBypassesTimeline(t *testing.T) {
	// A timeline that says voting is open must lose to the demo phase.
	timeline := Timeline{
		VotingStart: ts("2024-01-01T00:00:00Z"),
		VotingEnd:   ts("2024-12-31T00:00:00Z"),
	}
	now := *ts("2024-06-01T00:00:00Z")

	if got := Resolve(timeline, ModeDemo, DemoNomination, now); got != PhaseNominationOpen {
		t.Fatalf("demo nomination: got %s", got)
	}
	if got := Resolve(timeline, ModeDemo, DemoClosed, now); got != PhaseClosed {
		t.Fatalf("demo closed: got %s", got)
	}
	// Demo mode without a stored phase falls back to the timeline.
	if got := Resolve(timeline, ModeDemo, "", now); got != PhaseVotingOpen {
		t.Fatalf("demo fallback: got %s", got)
	}
}

func TestParseLocalNormalizesNaiveTimestamps(t *testing.T) {
	manila := time.FixedZone("Asia/Manila", 8*3600)

	parsed, err := ParseLocal("2024-03-01T08:00", manila)
	if err != nil {
		t.Fatalf("parse naive: %v", err)
	}
	if got := parsed.UTC().Format(time.RFC3339); got != "2024-03-01T00:00:00Z" {
		t.Fatalf("naive value not interpreted in deployment zone: %s", got)
	}

	parsed, err = ParseLocal("2024-03-01T08:00:00+08:00", manila)
	if err != nil {
		t.Fatalf("parse aware: %v", err)
	}
	if !parsed.Equal(*ts("2024-03-01T00:00:00Z")) {
		t.Fatal("zone-aware value mangled")
	}

	if _, err := ParseLocal("not-a-time", manila); err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
}
