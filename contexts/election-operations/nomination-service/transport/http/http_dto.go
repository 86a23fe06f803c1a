package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NominationPayload struct {
	ID                   string     `json:"id"`
	ElectionID           string     `json:"election_id"`
	PositionID           string     `json:"position_id"`
	NominatorID          string     `json:"nominator_id"`
	NominatorName        string     `json:"nominator_name"`
	NominatorBatchYear   int        `json:"nominator_batch_year"`
	NomineeFullName      string     `json:"nominee_full_name"`
	NomineeBatchYear     int        `json:"nominee_batch_year"`
	NomineeCampusChapter string     `json:"nominee_campus_chapter,omitempty"`
	ContactEmail         string     `json:"contact_email,omitempty"`
	ContactPhone         string     `json:"contact_phone,omitempty"`
	Reason               string     `json:"reason,omitempty"`
	PhotoPath            string     `json:"photo_path,omitempty"`
	GoodStanding         bool       `json:"is_good_standing"`
	Status               string     `json:"status"`
	RejectionReason      string     `json:"rejection_reason,omitempty"`
	Promoted             bool       `json:"promoted"`
	PromotedAt           *time.Time `json:"promoted_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type SubmitNominationRequest struct {
	PositionID           string `json:"position_id"`
	NomineeFullName      string `json:"nominee_full_name"`
	NomineeBatchYear     int    `json:"nominee_batch_year"`
	NomineeCampusChapter string `json:"nominee_campus_chapter,omitempty"`
	ContactEmail         string `json:"contact_email,omitempty"`
	ContactPhone         string `json:"contact_phone,omitempty"`
	Reason               string `json:"reason,omitempty"`
	PhotoPath            string `json:"photo_path,omitempty"`
	GoodStanding         bool   `json:"is_good_standing"`
}

type MyNominationResponse struct {
	HasNomination bool               `json:"has_nomination"`
	Nomination    *NominationPayload `json:"nomination,omitempty"`
}

type CandidatePayload struct {
	ID            string `json:"id"`
	PositionID    string `json:"position_id"`
	FullName      string `json:"full_name"`
	BatchYear     int    `json:"batch_year"`
	CampusChapter string `json:"campus_chapter,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	Bio           string `json:"bio,omitempty"`
	PhotoPath     string `json:"photo_path,omitempty"`
	Votes         int    `json:"votes"`
}

type PromoteResponse struct {
	Candidate CandidatePayload `json:"candidate"`
	Created   bool             `json:"created"`
}

type RejectNominationRequest struct {
	Reason string `json:"reason"`
}

type DeleteNominationResponse struct {
	OK bool `json:"ok"`
}

type CandidatePhotoRequest struct {
	PhotoPath string `json:"photo_path"`
}
