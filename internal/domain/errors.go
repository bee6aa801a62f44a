package domain

import (
	"errors"
	"fmt"
)

var (
	// Search errors
	ErrMissingOrigin        = errors.New("origin is required")
	ErrMissingDestination   = errors.New("destination is required")
	ErrMissingDepartureDate = errors.New("departure date is required")

	// Wizard errors
	ErrStepIncomplete   = errors.New("current step is not complete")
	ErrNotReviewStep    = errors.New("confirmation is only allowed from the review step")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
)

// ValidationError marks locally recoverable input problems: the search
// or wizard step simply does not proceed.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// UpstreamError carries a non-success reported by the search
// collaborator. The message is surfaced to the user as retryable.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
}

// NetworkError is a transport-level failure, surfaced with a distinct
// "check your connection" message and a retry action.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }
