package errors

import "errors"

var (
	// ErrInvalidCredentials deliberately covers unknown voter id, wrong
	// PIN, and inactive voter alike so the response never reveals which
	// check failed.
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUnauthenticated         = errors.New("authentication required")
	ErrAdminInvalidCredentials = errors.New("invalid admin credentials")
	ErrAdminUnauthenticated    = errors.New("admin authentication required")
	ErrNameRequired            = errors.New("full name is required")
	ErrBatchYearRequired       = errors.New("valid batch year is required")
	ErrConsentRequired         = errors.New("consent is required to continue")
	ErrVoterNotFound           = errors.New("voter not found")
	ErrVoterIDTaken            = errors.New("voter id already taken")
)
