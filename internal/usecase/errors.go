package usecase

import (
	"errors"
	"fmt"
)

// NotFoundError: the referenced lead id is absent from the canonical store.
type NotFoundError struct {
	LeadID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lead %s not found", e.LeadID)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// ValidationError: bad input caught before any remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// RemoteError: a non-success response from the remote collaborator. Status
// and body are kept verbatim for user-visible reporting.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote call failed: %d - %s", e.Status, e.Body)
}

func IsRemote(err error) bool {
	var target *RemoteError
	return errors.As(err, &target)
}
