package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumvote/contexts/engagement/notification-service/adapters/memory"
	"alumvote/contexts/engagement/notification-service/domain/entities"
	domainerrors "alumvote/contexts/engagement/notification-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	service Service
	store   *memory.Store
	clock   *fixedClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	clock := &fixedClock{now: time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)}
	service := Service{
		Notifications: store,
		Clock:         clock,
		IDGen:         memory.UUIDGenerator{},
	}
	return &testEnv{service: service, store: store, clock: clock}
}

func (env *testEnv) append(t *testing.T, voterID string, message string) entities.Notification {
	t.Helper()
	notification, err := env.service.Append(context.Background(), AppendInput{
		Type:    "info",
		Message: message,
		VoterID: voterID,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	env.clock.advance(time.Minute)
	return notification
}

func TestAppendRequiresMessage(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.Append(context.Background(), AppendInput{Message: "  "}); !errors.Is(err, domainerrors.ErrMessageRequired) {
		t.Fatalf("expected message gate, got %v", err)
	}
}

func TestAppendDefaultsTypeToInfo(t *testing.T) {
	env := newTestEnv(t)
	notification, err := env.service.Append(context.Background(), AppendInput{Message: "welcome"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if notification.Type != "info" {
		t.Fatalf("expected default type, got %q", notification.Type)
	}
}

func TestInboxesAreScopedAndNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.append(t, "v1", "first for v1")
	env.append(t, "", "for admins")
	latest := env.append(t, "v1", "second for v1")

	inbox, err := env.service.ReadInbox(context.Background(), "v1", false)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox.Notifications) != 2 || inbox.Unread != 2 {
		t.Fatalf("unexpected voter inbox: %+v", inbox)
	}
	if inbox.Notifications[0].ID != latest.ID {
		t.Fatal("inbox is not newest first")
	}

	adminInbox, err := env.service.ReadInbox(context.Background(), "", false)
	if err != nil {
		t.Fatalf("admin inbox: %v", err)
	}
	if len(adminInbox.Notifications) != 1 || adminInbox.Notifications[0].Message != "for admins" {
		t.Fatalf("unexpected admin inbox: %+v", adminInbox)
	}
}

func TestDismissHidesFromInboxButNotHistory(t *testing.T) {
	env := newTestEnv(t)
	kept := env.append(t, "v1", "kept")
	dismissed := env.append(t, "v1", "dismissed")

	if _, err := env.service.Act(context.Background(), "v1", ActionDismiss, dismissed.ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}

	inbox, err := env.service.ReadInbox(context.Background(), "v1", false)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox.Notifications) != 1 || inbox.Notifications[0].ID != kept.ID {
		t.Fatalf("dismissed item still visible: %+v", inbox)
	}
	if inbox.Unread != 1 {
		t.Fatalf("dismiss should also mark read, unread=%d", inbox.Unread)
	}

	history, err := env.service.ReadInbox(context.Background(), "v1", true)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Notifications) != 2 {
		t.Fatalf("history must include dismissed items: %+v", history)
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	first := env.append(t, "v1", "one")
	env.append(t, "v1", "two")
	env.append(t, "v1", "three")

	if _, err := env.service.Act(context.Background(), "v1", ActionMarkRead, first.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	inbox, _ := env.service.ReadInbox(context.Background(), "v1", false)
	if inbox.Unread != 2 {
		t.Fatalf("expected 2 unread, got %d", inbox.Unread)
	}

	affected, err := env.service.Act(context.Background(), "v1", ActionMarkAllRead, "")
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if affected != 2 {
		t.Fatalf("expected 2 affected, got %d", affected)
	}
	inbox, _ = env.service.ReadInbox(context.Background(), "v1", false)
	if inbox.Unread != 0 {
		t.Fatalf("expected 0 unread, got %d", inbox.Unread)
	}
}

func TestDeleteAndDeleteAll(t *testing.T) {
	env := newTestEnv(t)
	first := env.append(t, "v1", "one")
	env.append(t, "v1", "two")
	env.append(t, "", "admin item")

	if _, err := env.service.Act(context.Background(), "v1", ActionDelete, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	affected, err := env.service.Act(context.Background(), "v1", ActionDeleteAll, "")
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 remaining row deleted, got %d", affected)
	}

	adminInbox, _ := env.service.ReadInbox(context.Background(), "", false)
	if len(adminInbox.Notifications) != 1 {
		t.Fatal("voter delete_all must not touch the admin inbox")
	}
}

func TestActionsAreConfinedToTheirScope(t *testing.T) {
	env := newTestEnv(t)
	foreign := env.append(t, "v2", "not yours")

	if _, err := env.service.Act(context.Background(), "v1", ActionMarkRead, foreign.ID); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected scope confinement, got %v", err)
	}
	if _, err := env.service.Act(context.Background(), "v1", ActionDelete, foreign.ID); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected scope confinement on delete, got %v", err)
	}
}

func TestUnknownActionIsRejected(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.service.Act(context.Background(), "v1", "explode", ""); !errors.Is(err, domainerrors.ErrInvalidAction) {
		t.Fatalf("expected invalid action, got %v", err)
	}
}
