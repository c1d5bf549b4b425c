package types

import (
	"errors"
	"fmt"

	"github.com/browserhub/browserhub/model/command"
)

// UnsupportedCommandError is produced by the fallback handler when no
// constructor is registered for the requested command. It surfaces at
// execution time – dispatch itself always returns a handler.
type UnsupportedCommandError struct {
	Command command.ID
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported command %q", e.Command)
}

// NewUnsupportedCommandError creates an UnsupportedCommandError for id.
func NewUnsupportedCommandError(id command.ID) error {
	return &UnsupportedCommandError{Command: id}
}

// IsUnsupportedCommand reports whether err carries an UnsupportedCommandError.
func IsUnsupportedCommand(err error) bool {
	var target *UnsupportedCommandError
	return errors.As(err, &target)
}

// SessionNotFoundError indicates that a handler's locator parameters
// reference a session id absent from the store.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// NewSessionNotFoundError creates a SessionNotFoundError for id.
func NewSessionNotFoundError(id string) error {
	return &SessionNotFoundError{ID: id}
}

// IsSessionNotFound reports whether err carries a SessionNotFoundError.
func IsSessionNotFound(err error) bool {
	var target *SessionNotFoundError
	return errors.As(err, &target)
}

// SessionCreationError indicates that driver resolution or instantiation
// failed while creating a session. The store is left unchanged.
type SessionCreationError struct {
	Reason string
	Err    error
}

func (e *SessionCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session creation failed: %v: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("session creation failed: %v", e.Reason)
}

func (e *SessionCreationError) Unwrap() error { return e.Err }

// NewSessionCreationError creates a SessionCreationError.
func NewSessionCreationError(reason string, err error) error {
	return &SessionCreationError{Reason: reason, Err: err}
}

// IsSessionCreationFailed reports whether err carries a SessionCreationError.
func IsSessionCreationFailed(err error) bool {
	var target *SessionCreationError
	return errors.As(err, &target)
}

// ConstructionError indicates that a required locator or body parameter was
// missing or malformed. It is raised synchronously from the handler
// constructor, before any session interaction occurs.
type ConstructionError struct {
	Command command.ID
	Reason  string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %q handler: %v", e.Command, e.Reason)
}

// NewConstructionError creates a ConstructionError.
func NewConstructionError(id command.ID, reason string) error {
	return &ConstructionError{Command: id, Reason: reason}
}

// IsConstructionFailed reports whether err carries a ConstructionError.
func IsConstructionFailed(err error) bool {
	var target *ConstructionError
	return errors.As(err, &target)
}
