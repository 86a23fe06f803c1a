package ports

import (
	"context"
	"time"

	"alumvote/contexts/identity-access/session-service/domain/entities"
)

type VoterRepository interface {
	GetVoterByID(ctx context.Context, id string) (entities.Voter, error)
	GetVoterByVoterID(ctx context.Context, voterID string) (entities.Voter, error)
	GetVoterBySessionToken(ctx context.Context, token string) (entities.Voter, error)
	ListVotersByBatchYear(ctx context.Context, batchYear int) ([]entities.Voter, error)
	ListVoters(ctx context.Context) ([]entities.Voter, error)
	// CreateVoter returns ErrVoterIDTaken on a voter_id collision so the
	// caller can regenerate and retry.
	CreateVoter(ctx context.Context, voter entities.Voter) error
	// UpdateSession persists only the session_token column; an empty
	// token clears the session.
	UpdateSession(ctx context.Context, id string, token string) error
	// ReactivateForQuickEntry persists is_active and privacy_consent.
	ReactivateForQuickEntry(ctx context.Context, id string) error
	// ResetVoter persists has_voted=false, is_active=true, a cleared
	// session token, and, when pinHash is non-nil, the new PIN hash.
	ResetVoter(ctx context.Context, id string, pinHash *string) error
}

type AdminRepository interface {
	GetAdminByUsername(ctx context.Context, username string) (entities.AdminAccount, error)
	GetAdminByID(ctx context.Context, id string) (entities.AdminAccount, error)
}

type CredentialHasher interface {
	Hash(secret string) (string, error)
	Compare(hash string, secret string) error
}

// AdminTokenCodec signs and verifies the stateless admin session token.
// Verify enforces both the signature and the maximum token age and must
// fail closed on any defect.
type AdminTokenCodec interface {
	Sign(adminID string, issuedAt time.Time) (string, error)
	Verify(token string, now time.Time) (string, error)
}

// SecretSource produces the random material for voter sessions and PINs.
type SecretSource interface {
	SessionToken() (string, error)
	PIN() (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// NotificationRecord mirrors the engagement context's append shape. An empty
// VoterID routes the item to the admin inbox.
type NotificationRecord struct {
	Type    string
	Message string
	VoterID string
}

type NotificationWriter interface {
	Append(ctx context.Context, record NotificationRecord) error
}
