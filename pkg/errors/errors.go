// Package errors defines the closed error taxonomy shared by all goServiceKit
// components. Every failure surfaced by this service is one of ten kinds, each
// carrying a human-readable message and, for IO and serialization failures,
// the wrapped underlying cause. Severity and recoverability are derived from
// the kind by pure functions and consumed by logging and alerting only; no
// automatic retry decision is made from them.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind identifies one of the ten closed error variants.
type Kind int

const (
	// KindInvalidInput indicates malformed or rejected caller input.
	KindInvalidInput Kind = iota
	// KindConfig indicates an invalid or unloadable configuration.
	KindConfig
	// KindIO indicates a filesystem or OS-level I/O failure.
	KindIO
	// KindSerialization indicates an encoding or decoding failure.
	KindSerialization
	// KindNetwork indicates a socket or transport failure.
	KindNetwork
	// KindDatabase indicates a database connectivity or query failure.
	KindDatabase
	// KindAuth indicates an authentication failure.
	KindAuth
	// KindPermission indicates an authorization failure.
	KindPermission
	// KindNotFound indicates a missing resource.
	KindNotFound
	// KindInternal indicates an unexpected internal failure.
	KindInternal
)

// String returns the message prefix used when rendering errors of this kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "io error"
	case KindSerialization:
		return "serialization error"
	case KindNetwork:
		return "network error"
	case KindDatabase:
		return "database error"
	case KindAuth:
		return "authentication error"
	case KindPermission:
		return "permission denied"
	case KindNotFound:
		return "resource not found"
	case KindInternal:
		return "internal server error"
	default:
		return "unknown error"
	}
}

// Severity classifies an error's impact for logging and alerting. It is
// advisory and independent of recoverability.
type Severity int

const (
	// SeverityInfo marks expected, low-impact failures.
	SeverityInfo Severity = iota
	// SeverityWarning marks failures callers are expected to correct.
	SeverityWarning
	// SeverityError marks operational failures.
	SeverityError
	// SeverityCritical marks failures that should never happen.
	SeverityCritical
)

// String returns the log-style name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the severity onto a slog level so callers can log an error
// at the level its classification implies.
func (s Severity) SlogLevel() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Severity returns the advisory severity of this kind.
func (k Kind) Severity() Severity {
	switch k {
	case KindInvalidInput, KindConfig:
		return SeverityWarning
	case KindAuth, KindPermission:
		return SeverityError
	case KindNotFound:
		return SeverityInfo
	case KindNetwork, KindDatabase, KindIO:
		return SeverityError
	default: // KindSerialization, KindInternal
		return SeverityCritical
	}
}

// IsRecoverable reports whether operations failing with this kind may be
// retried. Only network, database, and I/O failures are considered transient.
func (k Kind) IsRecoverable() bool {
	switch k {
	case KindNetwork, KindDatabase, KindIO:
		return true
	default:
		return false
	}
}

// Error is the taxonomy's concrete error type. Kind is always set; Message
// and Err are each optional but never both empty.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders "<kind>: <message>", appending the wrapped cause when one is
// present and no message was supplied.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Severity returns the advisory severity of the error's kind.
func (e *Error) Severity() Severity {
	return e.Kind.Severity()
}

// IsRecoverable reports whether the error's kind is considered transient.
func (e *Error) IsRecoverable() bool {
	return e.Kind.IsRecoverable()
}

// NewInvalidInput creates an invalid-input error.
func NewInvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// NewConfig creates a configuration error.
func NewConfig(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

// NewNetwork creates a network error.
func NewNetwork(msg string) *Error {
	return &Error{Kind: KindNetwork, Message: msg}
}

// NewDatabase creates a database error.
func NewDatabase(msg string) *Error {
	return &Error{Kind: KindDatabase, Message: msg}
}

// NewAuth creates an authentication error.
func NewAuth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// NewPermission creates a permission error.
func NewPermission(msg string) *Error {
	return &Error{Kind: KindPermission, Message: msg}
}

// NewNotFound creates a not-found error.
func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// NewInternal creates an internal error.
func NewInternal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// WrapIO wraps an underlying I/O failure. Returns nil when err is nil.
func WrapIO(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Err: err}
}

// WrapSerialization wraps an underlying encoding or decoding failure.
// Returns nil when err is nil.
func WrapSerialization(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindSerialization, Err: err}
}

// WrapNetwork wraps an underlying transport failure with context.
func WrapNetwork(msg string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

// WrapDatabase wraps an underlying database failure with context.
func WrapDatabase(msg string, err error) *Error {
	return &Error{Kind: KindDatabase, Message: msg, Err: err}
}

// KindOf extracts the taxonomy kind from err. The second return is false when
// err does not wrap a taxonomy *Error.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err wraps a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
