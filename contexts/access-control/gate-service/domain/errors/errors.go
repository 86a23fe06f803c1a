package errors

import "errors"

var (
	ErrPasscodeRequired  = errors.New("passcode is required")
	ErrPasscodeIncorrect = errors.New("incorrect passcode")
	ErrGateNotFound      = errors.New("access gate not found")
	ErrGateExists        = errors.New("access gate already exists")
)
