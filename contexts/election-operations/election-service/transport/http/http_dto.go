package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ElectionPayload struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	NominationStart    *time.Time `json:"nomination_start"`
	NominationEnd      *time.Time `json:"nomination_end"`
	VotingStart        *time.Time `json:"voting_start"`
	VotingEnd          *time.Time `json:"voting_end"`
	ResultsAt          *time.Time `json:"results_at"`
	AutoPublishResults bool       `json:"auto_publish_results"`
	ResultsPublished   bool       `json:"results_published"`
	ResultsPublishedAt *time.Time `json:"results_published_at"`
	IsActive           bool       `json:"is_active"`
	Mode               string     `json:"mode"`
	DemoPhase          string     `json:"demo_phase,omitempty"`
	Phase              string     `json:"phase"`
}

type CurrentElectionResponse struct {
	HasElection bool             `json:"has_election"`
	Election    *ElectionPayload `json:"election,omitempty"`
}

type PositionPayload struct {
	ID           string `json:"id"`
	ElectionID   string `json:"election_id"`
	Name         string `json:"name"`
	NameDisplay  string `json:"name_display"`
	Seats        int    `json:"seats"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// ElectionWriteRequest covers both create (POST) and partial update
// (PUT). Pointer fields distinguish absent from explicitly cleared.
type ElectionWriteRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	Mode               *string `json:"mode"`
	IsActive           *bool   `json:"is_active"`
	AutoPublishResults *bool   `json:"auto_publish_results"`
	NominationStart    *string `json:"nomination_start"`
	NominationEnd      *string `json:"nomination_end"`
	VotingStart        *string `json:"voting_start"`
	VotingEnd          *string `json:"voting_end"`
	ResultsAt          *string `json:"results_at"`
}

type PublishRequest struct {
	Publish *bool `json:"publish"`
}

type DemoPhaseRequest struct {
	Action string `json:"action"`
}

type CandidateResultPayload struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	BatchYear     int    `json:"batch_year"`
	CampusChapter string `json:"campus_chapter"`
	PhotoPath     string `json:"photo_path,omitempty"`
	Votes         int    `json:"votes"`
	Winner        bool   `json:"winner"`
}

type PositionResultPayload struct {
	PositionID string                   `json:"position_id"`
	Position   string                   `json:"position"`
	Candidates []CandidateResultPayload `json:"candidates"`
}

type ResultsResponse struct {
	Published   bool                    `json:"published"`
	Reason      string                  `json:"reason,omitempty"`
	PublishedAt *time.Time              `json:"published_at,omitempty"`
	Election    *ResultsElectionRef     `json:"election,omitempty"`
	Positions   []PositionResultPayload `json:"positions,omitempty"`
}

type ResultsElectionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StatsResponse struct {
	TotalVoters    int     `json:"total_voters"`
	VotedCount     int     `json:"voted_count"`
	TurnoutPercent float64 `json:"turnout_percent"`
}

type ResetElectionResponse struct {
	ElectionID         string `json:"election_id"`
	VotesDeleted       int64  `json:"votes_deleted"`
	NominationsDeleted int64  `json:"nominations_deleted"`
	VotersReset        int    `json:"voters_reset"`
}

type ReminderPayload struct {
	ID         string    `json:"id"`
	ElectionID string    `json:"election_id"`
	RemindAt   time.Time `json:"remind_at"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReminderRequest struct {
	RemindAt string `json:"remind_at"`
	Note     string `json:"note,omitempty"`
}
