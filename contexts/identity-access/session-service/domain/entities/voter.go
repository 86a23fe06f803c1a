package entities

import "time"

// Voter is a registered elector. VoterID is the public login identifier;
// the PIN is kept only as a bcrypt hash. SessionToken is empty when the
// voter has no live session.
type Voter struct {
	ID             string
	VoterID        string
	Name           string
	BatchYear      int
	CampusChapter  string
	Email          string
	Phone          string
	PINHash        string
	PrivacyConsent bool
	HasVoted       bool
	IsActive       bool
	SessionToken   string
	CreatedAt      time.Time
}

// AdminAccount is a staff credential row. Password hashing is delegated to
// the security adapter; non-staff rows can never authenticate as admin.
type AdminAccount struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	IsStaff      bool
	IsSuperuser  bool
}

// DisplayName prefers the full name and falls back to the username.
func (a AdminAccount) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Username
}
