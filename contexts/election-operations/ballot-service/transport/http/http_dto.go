package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SubmitBallotRequest maps position id to candidate id. A valid ballot
// covers every active position exactly once.
type SubmitBallotRequest struct {
	Selections map[string]string `json:"selections"`
}

type SubmitBallotResponse struct {
	OK        bool `json:"ok"`
	VotesCast int  `json:"votes_cast"`
}

type VotePayload struct {
	PositionID    string    `json:"position_id"`
	PositionName  string    `json:"position_name"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type MyVotesResponse struct {
	HasVoted bool          `json:"has_voted"`
	Votes    []VotePayload `json:"votes"`
}
