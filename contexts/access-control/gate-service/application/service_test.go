package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumvote/contexts/access-control/gate-service/adapters/memory"
	"alumvote/contexts/access-control/gate-service/adapters/security"
	domainerrors "alumvote/contexts/access-control/gate-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService() Service {
	return Service{
		Gates:           memory.NewStore(),
		Hasher:          security.NewBcryptHasher(4),
		Clock:           fixedClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
		IDGen:           memory.UUIDGenerator{},
		DefaultName:     "default",
		DefaultPasscode: "demo-passcode",
	}
}

func TestStatusBootstrapsDefaultGateOnce(t *testing.T) {
	service := newTestService()

	statuses, err := service.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(statuses) != 1 || statuses[0].Name != "default" || statuses[0].Version != 1 {
		t.Fatalf("unexpected bootstrap result: %+v", statuses)
	}

	// A second query must not create a second gate.
	statuses, err = service.Status(context.Background())
	if err != nil {
		t.Fatalf("status again: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("bootstrap not idempotent, got %d gates", len(statuses))
	}
}

func TestCheckMatchesDefaultPasscode(t *testing.T) {
	service := newTestService()

	match, err := service.Check(context.Background(), "demo-passcode")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if match.Name != "default" || match.Version != 1 {
		t.Fatalf("unexpected match: %+v", match)
	}

	if _, err := service.Check(context.Background(), "wrong"); !errors.Is(err, domainerrors.ErrPasscodeIncorrect) {
		t.Fatalf("expected incorrect passcode error, got %v", err)
	}
	if _, err := service.Check(context.Background(), "   "); !errors.Is(err, domainerrors.ErrPasscodeRequired) {
		t.Fatalf("expected required error, got %v", err)
	}
}

func TestRotateBumpsVersionAndInvalidatesOldPasscode(t *testing.T) {
	service := newTestService()

	status, err := service.Rotate(context.Background(), "", "hunter2")
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if status.Version != 2 {
		t.Fatalf("expected version 2 after rotation, got %d", status.Version)
	}

	if _, err := service.Check(context.Background(), "demo-passcode"); !errors.Is(err, domainerrors.ErrPasscodeIncorrect) {
		t.Fatalf("old passcode still accepted: %v", err)
	}
	match, err := service.Check(context.Background(), "hunter2")
	if err != nil {
		t.Fatalf("new passcode rejected: %v", err)
	}
	if match.Version != 2 {
		t.Fatalf("check reports stale version %d", match.Version)
	}
}

func TestRotateUnknownGate(t *testing.T) {
	service := newTestService()
	if _, err := service.Rotate(context.Background(), "vip", "secret"); !errors.Is(err, domainerrors.ErrGateNotFound) {
		t.Fatalf("expected gate not found, got %v", err)
	}
}
