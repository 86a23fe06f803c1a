package entities

import "time"

const (
	StatusPending  = "pending"
	StatusPromoted = "promoted"
	StatusRejected = "rejected"
)

// Nomination is a voter's proposal of a nominee for one position. The
// row is reused on resubmission after a rejection, so (election,
// nominator) stays unique for non-rejected rows.
type Nomination struct {
	ID                   string
	ElectionID           string
	PositionID           string
	NominatorID          string
	NominatorName        string
	NominatorBatchYear   int
	NomineeFullName      string
	NomineeBatchYear     int
	NomineeCampusChapter string
	ContactEmail         string
	ContactPhone         string
	Reason               string
	PhotoPath            string
	GoodStanding         bool
	Status               string
	RejectionReason      string
	Promoted             bool
	PromotedAt           *time.Time
	CreatedAt            time.Time
}

// Candidate is an official ballot entry, usually minted by promoting a
// nomination. SourceNominationID is empty for hand-entered candidates.
type Candidate struct {
	ID                 string
	PositionID         string
	FullName           string
	BatchYear          int
	CampusChapter      string
	ContactEmail       string
	ContactPhone       string
	Bio                string
	PhotoPath          string
	IsOfficial         bool
	SourceNominationID string
	CreatedAt          time.Time
}
