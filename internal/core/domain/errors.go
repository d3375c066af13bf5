package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoActiveQuestion = errors.New("no active question found")
	ErrProposalNotFound = errors.New("proposed question not found")
	ErrInvalidChoice    = errors.New("choice must be yes or no")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrAlreadyVoted     = errors.New("identity has already voted")
	ErrSubmissionLimit  = errors.New("proposal submission limit reached")
	ErrInternal         = errors.New("internal server error")
)

// ValidationError is malformed input on a named field, distinct from domain
// conflicts like a duplicate vote.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
