package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a key is absent or expired.
var ErrNotFound = errors.New("not found")

// FailureKind classifies connect-flow and remote-call failures.
type FailureKind string

const (
	FailureRateLimited      FailureKind = "rate_limited"
	FailureNotFound         FailureKind = "not_found"
	FailureAlreadyUsed      FailureKind = "already_used"
	FailureContextMismatch  FailureKind = "context_mismatch"
	FailureTransport        FailureKind = "transport_error"
	FailureRemote           FailureKind = "remote_error"
	FailureValidation       FailureKind = "validation_error"
	FailurePermissionDenied FailureKind = "permission_denied"
	FailureInternal         FailureKind = "internal"
)

// ConnectError is the failure half of a connect-flow result. Callers use
// errors.As and switch on Kind.
type ConnectError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *ConnectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Is matches another *ConnectError with the same Kind.
func (e *ConnectError) Is(target error) bool {
	t, ok := target.(*ConnectError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// NewConnectError builds a ConnectError of the given kind.
func NewConnectError(kind FailureKind, message string) *ConnectError {
	return &ConnectError{Kind: kind, Message: message}
}

// Sentinels usable with errors.Is.
var (
	ErrRateLimited     = &ConnectError{Kind: FailureRateLimited}
	ErrTokenNotFound   = &ConnectError{Kind: FailureNotFound}
	ErrAlreadyUsed     = &ConnectError{Kind: FailureAlreadyUsed}
	ErrContextMismatch = &ConnectError{Kind: FailureContextMismatch}
	ErrValidation      = &ConnectError{Kind: FailureValidation}
	ErrPermission      = &ConnectError{Kind: FailurePermissionDenied}
)

// KindOf returns the FailureKind of err, or FailureInternal.
func KindOf(err error) FailureKind {
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return FailureInternal
}
