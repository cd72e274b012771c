package errors

import (
	"errors"
)

var (
	ErrFingerprintRequired = errors.New("fingerprint is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountBlocked      = errors.New("account is blocked")

	// ErrActivityLogFailed marks a failure to persist an audit record after
	// the primary decision already took effect. Callers must surface it
	// loudly instead of treating the whole operation as failed.
	ErrActivityLogFailed = errors.New("failed to write suspicious activity record")
)
