package session

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when email or password is empty
	ErrValidation = errors.New("email and password are required")
	// ErrLoginInProgress is returned when a login is already outstanding
	ErrLoginInProgress = errors.New("login already in progress")
	// ErrNoToken is returned when there is no stored token to copy
	ErrNoToken = errors.New("no token to copy")
	// ErrClipboardUnavailable is returned when the host has no clipboard
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// RequestError represents failed login or logout request
type RequestError struct {
	Op         string
	StatusCode int
	// Message is the server supplied error text, if any
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s failed: status %d", e.Op, e.StatusCode)
	}
	return e.Op + " failed"
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ClipboardError represents a rejected clipboard write
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy token: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
