// Package schedule is the shared election phase engine.
//
// Every context that gates an action on the election calendar resolves the
// phase through Resolve so that timeline mode and demo mode can never drift
// apart. Demo transitions still write synthetic timeline instants, so stored
// rows stay uniform for downstream reads.
package schedule

import (
	"strings"
	"time"
)

// Phase is the current stage of an election's lifecycle.
type Phase string

const (
	PhaseNoElection     Phase = "no_election"
	PhasePreNomination  Phase = "pre_nomination"
	PhaseNominationOpen Phase = "nomination_open"
	PhaseBetween        Phase = "between"
	PhaseVotingOpen     Phase = "voting_open"
	PhaseClosed         Phase = "closed"
)

// Mode selects how the phase is derived.
type Mode string

const (
	ModeTimeline Mode = "timeline"
	ModeDemo     Mode = "demo"
)

// DemoPhase values accepted while Mode is ModeDemo.
const (
	DemoNomination = "nomination"
	DemoBetween    = "between"
	DemoVoting     = "voting"
	DemoClosed     = "closed"
)

// Timeline holds the four optional window instants of an election.
// A nil boundary means the corresponding window never opens.
type Timeline struct {
	NominationStart *time.Time
	NominationEnd   *time.Time
	VotingStart     *time.Time
	VotingEnd       *time.Time
}

// NominationOpen reports whether the nomination window contains now.
// Both boundaries must be set; a partially configured window is closed.
func (t Timeline) NominationOpen(now time.Time) bool {
	return windowContains(t.NominationStart, t.NominationEnd, now)
}

// VotingOpen reports whether the voting window contains now.
func (t Timeline) VotingOpen(now time.Time) bool {
	return windowContains(t.VotingStart, t.VotingEnd, now)
}

func windowContains(start *time.Time, end *time.Time, now time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !now.Before(*start) && now.Before(*end)
}

// Resolve maps an election's configuration and the current instant to a
// phase. In demo mode the stored demo phase wins outright; otherwise the
// timeline decides, with unset boundaries failing closed.
func Resolve(timeline Timeline, mode Mode, demoPhase string, now time.Time) Phase {
	if mode == ModeDemo {
		switch strings.TrimSpace(demoPhase) {
		case DemoNomination:
			return PhaseNominationOpen
		case DemoBetween:
			return PhaseBetween
		case DemoVoting:
			return PhaseVotingOpen
		case DemoClosed:
			return PhaseClosed
		}
		// Demo mode without a stored phase falls through to the timeline.
	}

	if timeline.NominationStart != nil && timeline.NominationEnd != nil &&
		now.Before(*timeline.NominationStart) {
		return PhasePreNomination
	}
	if timeline.NominationOpen(now) {
		return PhaseNominationOpen
	}
	if timeline.VotingOpen(now) {
		return PhaseVotingOpen
	}
	if timeline.VotingEnd != nil && timeline.VotingStart != nil &&
		!now.Before(*timeline.VotingEnd) {
		return PhaseClosed
	}
	return PhaseBetween
}

// Accepted layouts for admin-entered instants that omit zone information.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseLocal parses an admin-supplied timestamp. Zone-aware values keep
// their offset; naive values are interpreted in loc so they are never
// compared raw against zone-aware instants.
func ParseLocal(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
