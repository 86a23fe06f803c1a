package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"alumvote/contexts/access-control/gate-service/domain/entities"
	domainerrors "alumvote/contexts/access-control/gate-service/domain/errors"
	"alumvote/contexts/access-control/gate-service/ports"
)

// GateStatus is the public view of a gate: name and rotation version only.
type GateStatus struct {
	Name    string
	Version int
}

// GateMatch identifies which gate accepted a passcode check.
type GateMatch struct {
	Name    string
	Version int
}

// Service owns passcode checks, version reporting, and rotation.
type Service struct {
	Gates           ports.GateRepository
	Hasher          ports.PasscodeHasher
	Clock           ports.Clock
	IDGen           ports.IDGenerator
	DefaultName     string
	DefaultPasscode string
	Logger          *slog.Logger
}

// Status returns current gate versions so clients can invalidate cached
// unlock state after a rotation.
func (s Service) Status(ctx context.Context) ([]GateStatus, error) {
	gates, err := s.ensureGates(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make([]GateStatus, 0, len(gates))
	for _, gate := range gates {
		statuses = append(statuses, GateStatus{Name: gate.Name, Version: gate.Version})
	}
	return statuses, nil
}

// Check validates a passcode against every gate; the first match wins.
func (s Service) Check(ctx context.Context, passcode string) (GateMatch, error) {
	passcode = strings.TrimSpace(passcode)
	if passcode == "" {
		return GateMatch{}, domainerrors.ErrPasscodeRequired
	}
	gates, err := s.ensureGates(ctx)
	if err != nil {
		return GateMatch{}, err
	}
	for _, gate := range gates {
		if s.Hasher.Compare(gate.PasscodeHash, passcode) == nil {
			return GateMatch{Name: gate.Name, Version: gate.Version}, nil
		}
	}
	return GateMatch{}, domainerrors.ErrPasscodeIncorrect
}

// Rotate replaces a gate's passcode hash and bumps its version. An empty
// gate name targets the default gate.
func (s Service) Rotate(ctx context.Context, name string, newPasscode string) (GateStatus, error) {
	logger := ResolveLogger(s.Logger)
	newPasscode = strings.TrimSpace(newPasscode)
	if newPasscode == "" {
		return GateStatus{}, domainerrors.ErrPasscodeRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName()
	}
	if _, err := s.ensureGates(ctx); err != nil {
		return GateStatus{}, err
	}

	gate, err := s.Gates.GetGateByName(ctx, name)
	if err != nil {
		return GateStatus{}, err
	}
	hash, err := s.Hasher.Hash(newPasscode)
	if err != nil {
		return GateStatus{}, err
	}
	gate.PasscodeHash = hash
	gate.Version++
	gate.UpdatedAt = s.Clock.Now().UTC()
	if err := s.Gates.RotateGate(ctx, gate); err != nil {
		return GateStatus{}, err
	}
	logger.Info("access gate rotated",
		"event", "gate_rotated",
		"module", "access-control/gate-service",
		"layer", "application",
		"gate", gate.Name,
		"version", gate.Version,
	)
	return GateStatus{Name: gate.Name, Version: gate.Version}, nil
}

// ensureGates lazily provisions the default gate on a fresh deployment.
// Create-then-reselect keeps this idempotent under concurrent first requests:
// the unique name constraint turns the losing insert into ErrGateExists.
func (s Service) ensureGates(ctx context.Context) ([]entities.AccessGate, error) {
	gates, err := s.Gates.ListGates(ctx)
	if err != nil {
		return nil, err
	}
	if len(gates) > 0 {
		return gates, nil
	}

	logger := ResolveLogger(s.Logger)
	hash, err := s.Hasher.Hash(s.defaultPasscode())
	if err != nil {
		return nil, err
	}
	gateID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return nil, err
	}
	gate := entities.AccessGate{
		GateID:       gateID,
		Name:         s.defaultName(),
		PasscodeHash: hash,
		Version:      1,
		UpdatedAt:    s.Clock.Now().UTC(),
	}
	if err := s.Gates.CreateGate(ctx, gate); err != nil && !errors.Is(err, domainerrors.ErrGateExists) {
		return nil, err
	}
	logger.Info("default access gate provisioned",
		"event", "gate_bootstrap",
		"module", "access-control/gate-service",
		"layer", "application",
		"gate", gate.Name,
	)
	return s.Gates.ListGates(ctx)
}

func (s Service) defaultName() string {
	if strings.TrimSpace(s.DefaultName) == "" {
		return "default"
	}
	return s.DefaultName
}

func (s Service) defaultPasscode() string {
	if s.DefaultPasscode == "" {
		return "demo-passcode"
	}
	return s.DefaultPasscode
}
