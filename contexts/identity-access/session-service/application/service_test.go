package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"alumvote/contexts/identity-access/session-service/adapters/memory"
	"alumvote/contexts/identity-access/session-service/adapters/security"
	"alumvote/contexts/identity-access/session-service/domain/entities"
	domainerrors "alumvote/contexts/identity-access/session-service/domain/errors"
	"alumvote/contexts/identity-access/session-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type notificationSink struct {
	records []ports.NotificationRecord
}

func (s *notificationSink) Append(_ context.Context, record ports.NotificationRecord) error {
	s.records = append(s.records, record)
	return nil
}

func newTestService(t *testing.T) (Service, *memory.Store, *notificationSink) {
	t.Helper()
	store := memory.NewStore()
	sink := &notificationSink{}
	service := Service{
		Voters:        store,
		Admins:        store,
		Hasher:        security.NewBcryptHasher(4),
		Tokens:        security.NewJWTAdminTokenCodec("test-secret", 12*time.Hour),
		Secrets:       security.RandomSecretSource{},
		Clock:         fixedClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
		IDGen:         memory.UUIDGenerator{},
		Notifications: sink,
	}
	return service, store, sink
}

func mustCreateVoter(t *testing.T, service Service, name string, batchYear int, pin string) CreatedVoter {
	t.Helper()
	created, err := service.CreateVoter(context.Background(), CreateVoterInput{
		Name:           name,
		BatchYear:      batchYear,
		PrivacyConsent: true,
		PIN:            pin,
	})
	if err != nil {
		t.Fatalf("create voter: %v", err)
	}
	return created
}

func TestVoterLoginIssuesSessionToken(t *testing.T) {
	service, _, _ := newTestService(t)
	created := mustCreateVoter(t, service, "Rosa Aquino", 2018, "424242")

	session, err := service.VoterLogin(context.Background(), created.Voter.VoterID, "424242")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	voter, err := service.Authenticate(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if voter.VoterID != created.Voter.VoterID {
		t.Fatalf("authenticated wrong voter: %s", voter.VoterID)
	}
}

func TestVoterLoginFailuresAreUniform(t *testing.T) {
	service, _, _ := newTestService(t)
	created := mustCreateVoter(t, service, "Rosa Aquino", 2018, "424242")

	cases := []struct {
		name    string
		voterID string
		pin     string
	}{
		{"unknown voter", "AV-999999", "424242"},
		{"wrong pin", created.Voter.VoterID, "000000"},
		{"empty pin", created.Voter.VoterID, "  "},
	}
	for _, tc := range cases {
		if _, err := service.VoterLogin(context.Background(), tc.voterID, tc.pin); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("%s: expected invalid credentials, got %v", tc.name, err)
		}
	}
}

func TestQuickLoginReusesVoterByNormalizedName(t *testing.T) {
	service, _, sink := newTestService(t)
	created := mustCreateVoter(t, service, "Rosa Aquino", 2018, "424242")

	session, err := service.QuickLogin(context.Background(), QuickLoginInput{
		Name:           "  rosa   AQUINO ",
		BatchYear:      2018,
		PrivacyConsent: true,
	})
	if err != nil {
		t.Fatalf("quick login: %v", err)
	}
	if session.Voter.ID != created.Voter.ID {
		t.Fatal("quick login minted a duplicate voter")
	}
	if len(sink.records) == 0 || sink.records[len(sink.records)-1].Type != "login" {
		t.Fatalf("expected a login notification, got %+v", sink.records)
	}
}

func TestQuickLoginCreatesVoterWhenNoMatch(t *testing.T) {
	service, _, sink := newTestService(t)

	session, err := service.QuickLogin(context.Background(), QuickLoginInput{
		Name:           "Ben Ramos",
		BatchYear:      2015,
		CampusChapter:  "Main",
		PrivacyConsent: true,
	})
	if err != nil {
		t.Fatalf("quick login: %v", err)
	}
	if !strings.HasPrefix(session.Voter.VoterID, "AV-") {
		t.Fatalf("unexpected voter id format: %s", session.Voter.VoterID)
	}
	if len(sink.records) == 0 || sink.records[len(sink.records)-1].Type != "info" {
		t.Fatalf("expected an info notification, got %+v", sink.records)
	}
}

func TestQuickLoginRequiresConsent(t *testing.T) {
	service, _, _ := newTestService(t)
	_, err := service.QuickLogin(context.Background(), QuickLoginInput{
		Name:      "Ben Ramos",
		BatchYear: 2015,
	})
	if !errors.Is(err, domainerrors.ErrConsentRequired) {
		t.Fatalf("expected consent error, got %v", err)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	service, _, _ := newTestService(t)
	created := mustCreateVoter(t, service, "Rosa Aquino", 2018, "424242")

	session, err := service.VoterLogin(context.Background(), created.Voter.VoterID, "424242")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := service.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := service.Authenticate(context.Background(), session.Token); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected stale token rejection, got %v", err)
	}

	// Logging out an unknown token stays silent.
	if err := service.Logout(context.Background(), "bogus"); err != nil {
		t.Fatalf("logout unknown token: %v", err)
	}
}

func TestAdminLoginAndTokenRoundTrip(t *testing.T) {
	service, store, _ := newTestService(t)
	hash, err := service.Hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.SeedAdmin(entities.AdminAccount{
		ID:           "admin-1",
		Username:     "chair",
		PasswordHash: hash,
		FullName:     "Election Chair",
		IsStaff:      true,
	})

	session, err := service.AdminLogin(context.Background(), "chair", "s3cret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	admin, err := service.AuthenticateAdmin(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("authenticate admin: %v", err)
	}
	if admin.ID != "admin-1" {
		t.Fatalf("authenticated wrong admin: %s", admin.ID)
	}
}

func TestAdminLoginRejectsNonStaffAndBadPassword(t *testing.T) {
	service, store, _ := newTestService(t)
	hash, err := service.Hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.SeedAdmin(entities.AdminAccount{
		ID:           "viewer-1",
		Username:     "viewer",
		PasswordHash: hash,
		IsStaff:      false,
	})

	if _, err := service.AdminLogin(context.Background(), "viewer", "s3cret"); !errors.Is(err, domainerrors.ErrAdminInvalidCredentials) {
		t.Fatalf("expected non-staff rejection, got %v", err)
	}
	if _, err := service.AdminLogin(context.Background(), "missing", "s3cret"); !errors.Is(err, domainerrors.ErrAdminInvalidCredentials) {
		t.Fatalf("expected unknown user rejection, got %v", err)
	}
}

func TestAuthenticateAdminFailsClosed(t *testing.T) {
	service, store, _ := newTestService(t)
	hash, err := service.Hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.SeedAdmin(entities.AdminAccount{
		ID:           "admin-1",
		Username:     "chair",
		PasswordHash: hash,
		IsStaff:      true,
	})
	session, err := service.AdminLogin(context.Background(), "chair", "s3cret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}

	if _, err := service.AuthenticateAdmin(context.Background(), "garbage"); !errors.Is(err, domainerrors.ErrAdminUnauthenticated) {
		t.Fatalf("expected garbage token rejection, got %v", err)
	}

	// The same token signed 13 hours ago is past the maximum age.
	expired := Service{
		Voters:  service.Voters,
		Admins:  service.Admins,
		Hasher:  service.Hasher,
		Tokens:  service.Tokens,
		Secrets: service.Secrets,
		Clock:   fixedClock{now: time.Date(2026, time.March, 1, 22, 1, 0, 0, time.UTC)},
		IDGen:   service.IDGen,
	}
	if _, err := expired.AuthenticateAdmin(context.Background(), session.Token); !errors.Is(err, domainerrors.ErrAdminUnauthenticated) {
		t.Fatalf("expected expired token rejection, got %v", err)
	}
}

func TestCreateVoterGeneratesPINWhenAbsent(t *testing.T) {
	service, _, _ := newTestService(t)
	created, err := service.CreateVoter(context.Background(), CreateVoterInput{
		Name:           "Ben Ramos",
		BatchYear:      2015,
		PrivacyConsent: true,
	})
	if err != nil {
		t.Fatalf("create voter: %v", err)
	}
	if len(created.PIN) != 6 {
		t.Fatalf("expected a 6 digit PIN, got %q", created.PIN)
	}
	if _, err := service.VoterLogin(context.Background(), created.Voter.VoterID, created.PIN); err != nil {
		t.Fatalf("login with generated PIN: %v", err)
	}
}

func TestCreateVoterForcesDefaultChapter(t *testing.T) {
	service, _, _ := newTestService(t)
	service.DefaultChapter = "Naga"

	created, err := service.CreateVoter(context.Background(), CreateVoterInput{
		Name:           "Ben Ramos",
		BatchYear:      2015,
		CampusChapter:  "Elsewhere",
		PrivacyConsent: true,
	})
	if err != nil {
		t.Fatalf("create voter: %v", err)
	}
	if created.Voter.CampusChapter != "Naga" {
		t.Fatalf("chapter not forced, got %s", created.Voter.CampusChapter)
	}
}

func TestResetVotersClearsSessionsAndOptionallyPINs(t *testing.T) {
	service, store, _ := newTestService(t)
	created := mustCreateVoter(t, service, "Rosa Aquino", 2018, "424242")
	session, err := service.VoterLogin(context.Background(), created.Voter.VoterID, "424242")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	outcome, err := service.ResetVoters(context.Background(), false)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if outcome.Count != 1 || len(outcome.PINs) != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if _, err := service.Authenticate(context.Background(), session.Token); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("session survived reset: %v", err)
	}

	outcome, err = service.ResetVoters(context.Background(), true)
	if err != nil {
		t.Fatalf("reset with pins: %v", err)
	}
	if len(outcome.PINs) != 1 {
		t.Fatalf("expected one reissued PIN, got %d", len(outcome.PINs))
	}
	if _, err := service.VoterLogin(context.Background(), created.Voter.VoterID, "424242"); !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatal("old PIN still accepted after reset")
	}
	if _, err := service.VoterLogin(context.Background(), outcome.PINs[0].VoterID, outcome.PINs[0].PIN); err != nil {
		t.Fatalf("login with reissued PIN: %v", err)
	}

	voter, err := store.GetVoterByID(context.Background(), created.Voter.ID)
	if err != nil {
		t.Fatalf("reload voter: %v", err)
	}
	if voter.HasVoted {
		t.Fatal("has_voted not cleared by reset")
	}
}
