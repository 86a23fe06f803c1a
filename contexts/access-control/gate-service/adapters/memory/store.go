package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"alumvote/contexts/access-control/gate-service/domain/entities"
	domainerrors "alumvote/contexts/access-control/gate-service/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory gate repository used by tests and local wiring.
type Store struct {
	mu    sync.RWMutex
	gates map[string]entities.AccessGate
}

func NewStore() *Store {
	return &Store{gates: make(map[string]entities.AccessGate)}
}

func (s *Store) ListGates(_ context.Context) ([]entities.AccessGate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gates := make([]entities.AccessGate, 0, len(s.gates))
	for _, gate := range s.gates {
		gates = append(gates, gate)
	}
	sort.Slice(gates, func(i, j int) bool { return gates[i].Name < gates[j].Name })
	return gates, nil
}

func (s *Store) GetGateByName(_ context.Context, name string) (entities.AccessGate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gate, ok := s.gates[strings.TrimSpace(name)]
	if !ok {
		return entities.AccessGate{}, domainerrors.ErrGateNotFound
	}
	return gate, nil
}

func (s *Store) CreateGate(_ context.Context, gate entities.AccessGate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := strings.TrimSpace(gate.Name)
	if _, ok := s.gates[name]; ok {
		return domainerrors.ErrGateExists
	}
	s.gates[name] = gate
	return nil
}

func (s *Store) RotateGate(_ context.Context, gate entities.AccessGate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, existing := range s.gates {
		if existing.GateID == gate.GateID {
			s.gates[name] = gate
			return nil
		}
	}
	return domainerrors.ErrGateNotFound
}

// SystemClock satisfies ports.Clock with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator satisfies ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
