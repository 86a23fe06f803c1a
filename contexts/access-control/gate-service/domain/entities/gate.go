package entities

import "time"

// AccessGate is a named shared-passcode holder. The passcode itself is never
// stored or exposed; only its hash and the rotation version are.
type AccessGate struct {
	GateID       string
	Name         string
	PasscodeHash string
	Version      int
	UpdatedAt    time.Time
}
