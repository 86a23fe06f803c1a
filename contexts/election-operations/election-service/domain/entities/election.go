package entities

import "time"

// Election holds the timeline instants as pointers; any of them may be
// unset while an admin is still drafting the schedule. Mode is either
// "timeline" or "demo"; DemoPhase is empty outside demo mode.
type Election struct {
	ID                 string
	Name               string
	Description        string
	NominationStart    *time.Time
	NominationEnd      *time.Time
	VotingStart        *time.Time
	VotingEnd          *time.Time
	ResultsAt          *time.Time
	AutoPublishResults bool
	ResultsPublished   bool
	ResultsPublishedAt *time.Time
	IsActive           bool
	Mode               string
	DemoPhase          string
	CreatedAt          time.Time
}

// Position is one elected office within an election.
type Position struct {
	ID           string
	ElectionID   string
	Name         string
	Seats        int
	DisplayOrder int
	IsActive     bool
}

// DisplayName maps the catalog code to its human label. Unknown codes
// fall back to the raw code so stale data stays visible.
func (p Position) DisplayName() string {
	if label, ok := positionLabels[p.Name]; ok {
		return label
	}
	return p.Name
}

// Reminder is an admin-facing note pinned to an instant on the election
// calendar.
type Reminder struct {
	ID         string
	ElectionID string
	RemindAt   time.Time
	Note       string
	CreatedAt  time.Time
}

// PositionCatalog lists the offices seeded for a new election, in
// display order, one seat each.
var PositionCatalog = []string{
	"president",
	"vice_president",
	"secretary",
	"treasurer",
	"auditor",
	"pio",
}

var positionLabels = map[string]string{
	"president":      "President",
	"vice_president": "Vice President",
	"secretary":      "Secretary",
	"treasurer":      "Treasurer",
	"auditor":        "Auditor",
	"pio":            "Public Information Officer",
}
