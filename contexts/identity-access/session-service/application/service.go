package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"alumvote/contexts/identity-access/session-service/domain/entities"
	domainerrors "alumvote/contexts/identity-access/session-service/domain/errors"
	"alumvote/contexts/identity-access/session-service/ports"
)

// Service owns voter and admin authentication plus the voter directory
// operations that manipulate credentials (create, bulk reset).
type Service struct {
	Voters         ports.VoterRepository
	Admins         ports.AdminRepository
	Hasher         ports.CredentialHasher
	Tokens         ports.AdminTokenCodec
	Secrets        ports.SecretSource
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	Notifications  ports.NotificationWriter
	DefaultChapter string
	Logger         *slog.Logger
}

// VoterSession pairs a freshly issued opaque token with the voter profile.
type VoterSession struct {
	Token string
	Voter entities.Voter
}

// AdminSession pairs a signed stateless token with the admin profile.
type AdminSession struct {
	Token string
	Admin entities.AdminAccount
}

type QuickLoginInput struct {
	Name           string
	BatchYear      int
	CampusChapter  string
	PrivacyConsent bool
}

type CreateVoterInput struct {
	Name           string
	BatchYear      int
	CampusChapter  string
	Email          string
	Phone          string
	PrivacyConsent bool
	PIN            string
}

// CreatedVoter carries the plaintext PIN exactly once, at creation time.
type CreatedVoter struct {
	Voter entities.Voter
	PIN   string
}

type VoterPIN struct {
	VoterID string
	PIN     string
}

type ResetOutcome struct {
	Count     int
	ResetPINs bool
	PINs      []VoterPIN
}

// VoterLogin authenticates by voter id + PIN and starts a fresh session.
// Every failure collapses into ErrInvalidCredentials.
func (s Service) VoterLogin(ctx context.Context, voterID string, pin string) (VoterSession, error) {
	logger := ResolveLogger(s.Logger)
	voterID = strings.TrimSpace(voterID)
	pin = strings.TrimSpace(pin)
	if voterID == "" || pin == "" {
		return VoterSession{}, domainerrors.ErrInvalidCredentials
	}

	voter, err := s.Voters.GetVoterByVoterID(ctx, voterID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrVoterNotFound) {
			return VoterSession{}, domainerrors.ErrInvalidCredentials
		}
		return VoterSession{}, err
	}
	if !voter.IsActive || voter.PINHash == "" {
		return VoterSession{}, domainerrors.ErrInvalidCredentials
	}
	if s.Hasher.Compare(voter.PINHash, pin) != nil {
		return VoterSession{}, domainerrors.ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, voter)
	if err != nil {
		return VoterSession{}, err
	}
	logger.Info("voter logged in",
		"event", "session_voter_login",
		"module", "identity-access/session-service",
		"layer", "application",
		"voter_id", voter.VoterID,
	)
	return session, nil
}

// QuickLogin creates or reuses a voter matched by normalized name + exact
// batch year. Consent is mandatory so downstream flows stay intact.
func (s Service) QuickLogin(ctx context.Context, input QuickLoginInput) (VoterSession, error) {
	logger := ResolveLogger(s.Logger)
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return VoterSession{}, domainerrors.ErrNameRequired
	}
	if input.BatchYear <= 0 {
		return VoterSession{}, domainerrors.ErrBatchYearRequired
	}
	if !input.PrivacyConsent {
		return VoterSession{}, domainerrors.ErrConsentRequired
	}

	normalized := normalizeName(name)
	existing, err := s.Voters.ListVotersByBatchYear(ctx, input.BatchYear)
	if err != nil {
		return VoterSession{}, err
	}
	for _, voter := range existing {
		if normalizeName(voter.Name) != normalized {
			continue
		}
		if err := s.Voters.ReactivateForQuickEntry(ctx, voter.ID); err != nil {
			return VoterSession{}, err
		}
		voter.IsActive = true
		voter.PrivacyConsent = true
		session, err := s.startSession(ctx, voter)
		if err != nil {
			return VoterSession{}, err
		}
		s.notify(ctx, "login", fmt.Sprintf(
			"Voter %q batch %d signed in via quick entry.", voter.Name, voter.BatchYear))
		return session, nil
	}

	voter, err := s.newVoter(ctx, name, input.BatchYear, strings.TrimSpace(input.CampusChapter), "", "", "", true)
	if err != nil {
		return VoterSession{}, err
	}
	session, err := s.startSession(ctx, voter)
	if err != nil {
		return VoterSession{}, err
	}
	s.notify(ctx, "info", fmt.Sprintf(
		"Quick login created voter %q batch %d (ID %s).", voter.Name, voter.BatchYear, voter.VoterID))
	logger.Info("quick login created voter",
		"event", "session_quick_login_created",
		"module", "identity-access/session-service",
		"layer", "application",
		"voter_id", voter.VoterID,
	)
	return session, nil
}

// Logout ends the voter session identified by token. Unknown tokens are a
// no-op so logout is always safe to call.
func (s Service) Logout(ctx context.Context, token string) error {
	voter, err := s.authenticate(ctx, token)
	if err != nil {
		return nil
	}
	return s.Voters.UpdateSession(ctx, voter.ID, "")
}

// Authenticate resolves a voter from an opaque session token.
func (s Service) Authenticate(ctx context.Context, token string) (entities.Voter, error) {
	return s.authenticate(ctx, token)
}

func (s Service) authenticate(ctx context.Context, token string) (entities.Voter, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Voter{}, domainerrors.ErrUnauthenticated
	}
	voter, err := s.Voters.GetVoterBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrVoterNotFound) {
			return entities.Voter{}, domainerrors.ErrUnauthenticated
		}
		return entities.Voter{}, err
	}
	if !voter.IsActive {
		return entities.Voter{}, domainerrors.ErrUnauthenticated
	}
	return voter, nil
}

// AdminLogin checks staff credentials and issues a signed session token.
func (s Service) AdminLogin(ctx context.Context, username string, password string) (AdminSession, error) {
	logger := ResolveLogger(s.Logger)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AdminSession{}, domainerrors.ErrAdminInvalidCredentials
	}
	admin, err := s.Admins.GetAdminByUsername(ctx, username)
	if err != nil {
		return AdminSession{}, domainerrors.ErrAdminInvalidCredentials
	}
	if !admin.IsStaff || s.Hasher.Compare(admin.PasswordHash, password) != nil {
		return AdminSession{}, domainerrors.ErrAdminInvalidCredentials
	}
	token, err := s.Tokens.Sign(admin.ID, s.Clock.Now())
	if err != nil {
		return AdminSession{}, err
	}
	logger.Info("admin logged in",
		"event", "session_admin_login",
		"module", "identity-access/session-service",
		"layer", "application",
		"username", admin.Username,
	)
	return AdminSession{Token: token, Admin: admin}, nil
}

// AuthenticateAdmin verifies a signed token. Bad signature, expired
// signature, and unknown or non-staff user all collapse into
// ErrAdminUnauthenticated.
func (s Service) AuthenticateAdmin(ctx context.Context, token string) (entities.AdminAccount, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.AdminAccount{}, domainerrors.ErrAdminUnauthenticated
	}
	adminID, err := s.Tokens.Verify(token, s.Clock.Now())
	if err != nil || adminID == "" {
		return entities.AdminAccount{}, domainerrors.ErrAdminUnauthenticated
	}
	admin, err := s.Admins.GetAdminByID(ctx, adminID)
	if err != nil || !admin.IsStaff {
		return entities.AdminAccount{}, domainerrors.ErrAdminUnauthenticated
	}
	return admin, nil
}

// CreateVoter registers a voter on behalf of an admin. The PIN is taken
// from the input or generated, and returned in plaintext exactly once.
func (s Service) CreateVoter(ctx context.Context, input CreateVoterInput) (CreatedVoter, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return CreatedVoter{}, domainerrors.ErrNameRequired
	}
	if input.BatchYear <= 0 {
		return CreatedVoter{}, domainerrors.ErrBatchYearRequired
	}

	chapter := strings.TrimSpace(input.CampusChapter)
	if s.DefaultChapter != "" {
		// Deployment pins every admin-created voter to one chapter.
		chapter = s.DefaultChapter
	}

	pin := strings.TrimSpace(input.PIN)
	if pin == "" {
		generated, err := s.Secrets.PIN()
		if err != nil {
			return CreatedVoter{}, err
		}
		pin = generated
	}

	voter, err := s.newVoter(ctx, name, input.BatchYear, chapter,
		strings.TrimSpace(input.Email), strings.TrimSpace(input.Phone), pin, input.PrivacyConsent)
	if err != nil {
		return CreatedVoter{}, err
	}
	return CreatedVoter{Voter: voter, PIN: pin}, nil
}

// ListVoters returns the full directory ordered by name.
func (s Service) ListVoters(ctx context.Context) ([]entities.Voter, error) {
	return s.Voters.ListVoters(ctx)
}

// ResetVoters clears has_voted and live sessions for every voter and
// reactivates them for a new election cycle. With resetPins, every voter
// also receives a fresh PIN, reported back once.
func (s Service) ResetVoters(ctx context.Context, resetPins bool) (ResetOutcome, error) {
	logger := ResolveLogger(s.Logger)
	voters, err := s.Voters.ListVoters(ctx)
	if err != nil {
		return ResetOutcome{}, err
	}

	outcome := ResetOutcome{ResetPINs: resetPins}
	for _, voter := range voters {
		var pinHash *string
		if resetPins {
			pin, err := s.Secrets.PIN()
			if err != nil {
				return ResetOutcome{}, err
			}
			hash, err := s.Hasher.Hash(pin)
			if err != nil {
				return ResetOutcome{}, err
			}
			pinHash = &hash
			outcome.PINs = append(outcome.PINs, VoterPIN{VoterID: voter.VoterID, PIN: pin})
		}
		if err := s.Voters.ResetVoter(ctx, voter.ID, pinHash); err != nil {
			return ResetOutcome{}, err
		}
		outcome.Count++
	}
	logger.Info("voters reset",
		"event", "session_voters_reset",
		"module", "identity-access/session-service",
		"layer", "application",
		"count", outcome.Count,
		"reset_pins", resetPins,
	)
	return outcome, nil
}

func (s Service) startSession(ctx context.Context, voter entities.Voter) (VoterSession, error) {
	token, err := s.Secrets.SessionToken()
	if err != nil {
		return VoterSession{}, err
	}
	if err := s.Voters.UpdateSession(ctx, voter.ID, token); err != nil {
		return VoterSession{}, err
	}
	voter.SessionToken = token
	return VoterSession{Token: token, Voter: voter}, nil
}

func (s Service) newVoter(
	ctx context.Context,
	name string,
	batchYear int,
	chapter string,
	email string,
	phone string,
	pin string,
	consent bool,
) (entities.Voter, error) {
	pinHash := ""
	if pin != "" {
		hash, err := s.Hasher.Hash(pin)
		if err != nil {
			return entities.Voter{}, err
		}
		pinHash = hash
	}

	// Retry on the rare voter_id collision; the unique constraint is the
	// source of truth.
	for attempt := 0; attempt < 5; attempt++ {
		id, err := s.IDGen.NewID(ctx)
		if err != nil {
			return entities.Voter{}, err
		}
		voterID, err := s.newVoterID()
		if err != nil {
			return entities.Voter{}, err
		}
		voter := entities.Voter{
			ID:             id,
			VoterID:        voterID,
			Name:           name,
			BatchYear:      batchYear,
			CampusChapter:  chapter,
			Email:          email,
			Phone:          phone,
			PINHash:        pinHash,
			PrivacyConsent: consent,
			IsActive:       true,
			CreatedAt:      s.Clock.Now().UTC(),
		}
		err = s.Voters.CreateVoter(ctx, voter)
		if err == nil {
			return voter, nil
		}
		if !errors.Is(err, domainerrors.ErrVoterIDTaken) {
			return entities.Voter{}, err
		}
	}
	return entities.Voter{}, domainerrors.ErrVoterIDTaken
}

func (s Service) newVoterID() (string, error) {
	digits, err := s.Secrets.PIN()
	if err != nil {
		return "", err
	}
	return "AV-" + digits, nil
}

func (s Service) notify(ctx context.Context, kind string, message string) {
	if s.Notifications == nil {
		return
	}
	if err := s.Notifications.Append(ctx, ports.NotificationRecord{Type: kind, Message: message}); err != nil {
		ResolveLogger(s.Logger).Warn("notification append failed",
			"event", "session_notification_failed",
			"module", "identity-access/session-service",
			"layer", "application",
			"error", err.Error(),
		)
	}
}

// normalizeName lowercases, trims, and collapses internal whitespace so
// quick entry does not mint duplicates for trivially different spellings.
func normalizeName(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}
