package errors

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidAction        = errors.New("unknown notification action")
	ErrMessageRequired      = errors.New("notification message required")
)
