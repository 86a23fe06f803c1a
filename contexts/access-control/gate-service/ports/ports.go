package ports

import (
	"context"
	"time"

	"alumvote/contexts/access-control/gate-service/domain/entities"
)

type GateRepository interface {
	ListGates(ctx context.Context) ([]entities.AccessGate, error)
	GetGateByName(ctx context.Context, name string) (entities.AccessGate, error)
	// CreateGate returns ErrGateExists when the name is already taken, so
	// the lazy bootstrap can absorb the concurrent-first-request race.
	CreateGate(ctx context.Context, gate entities.AccessGate) error
	// RotateGate persists exactly the passcode hash, version, and
	// updated_at columns of the gate.
	RotateGate(ctx context.Context, gate entities.AccessGate) error
}

type PasscodeHasher interface {
	Hash(passcode string) (string, error)
	Compare(hash string, passcode string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
