package entities

import "time"

// Vote is one voter's choice for one position. A voter casts at most
// one vote per position, enforced at the storage layer.
type Vote struct {
	ID          string
	VoterID     string
	PositionID  string
	CandidateID string
	CreatedAt   time.Time
}
