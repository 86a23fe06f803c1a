package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type VoterProfile struct {
	ID            string `json:"id"`
	VoterID       string `json:"voter_id"`
	Name          string `json:"name"`
	BatchYear     int    `json:"batch_year"`
	CampusChapter string `json:"campus_chapter"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	HasVoted      bool   `json:"has_voted"`
	IsActive      bool   `json:"is_active"`
}

type VoterLoginRequest struct {
	VoterID string `json:"voter_id"`
	PIN     string `json:"pin"`
}

type QuickLoginRequest struct {
	Name           string `json:"name"`
	BatchYear      int    `json:"batch_year"`
	CampusChapter  string `json:"campus_chapter,omitempty"`
	PrivacyConsent bool   `json:"privacy_consent"`
}

type VoterSessionResponse struct {
	Token string       `json:"token"`
	Voter VoterProfile `json:"voter"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsSuperuser bool   `json:"is_superuser"`
}

type AdminSessionResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsSuperuser bool   `json:"is_superuser"`
}

type CreateVoterRequest struct {
	Name           string `json:"name"`
	BatchYear      int    `json:"batch_year"`
	CampusChapter  string `json:"campus_chapter,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	PrivacyConsent bool   `json:"privacy_consent"`
	PIN            string `json:"pin,omitempty"`
}

// CreateVoterResponse is the only place the plaintext PIN ever appears.
type CreateVoterResponse struct {
	Voter VoterProfile `json:"voter"`
	PIN   string       `json:"pin"`
}

type VoterListResponse struct {
	Voters []VoterProfile `json:"voters"`
}

type ResetVotersRequest struct {
	ResetPINs bool `json:"reset_pins"`
}

type ResetVoterPIN struct {
	VoterID string `json:"voter_id"`
	PIN     string `json:"pin"`
}

type ResetVotersResponse struct {
	Count     int             `json:"count"`
	ResetPINs bool            `json:"reset_pins"`
	PINs      []ResetVoterPIN `json:"pins,omitempty"`
}
