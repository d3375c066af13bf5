package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/worldquestion/api/internal/core/domain"
)

// Client-facing messages the frontend pattern-matches on; do not reword.
const (
	msgAlreadyVoted    = "You have already voted on this question"
	msgSubmissionLimit = "You can only submit 5 questions per day. Please try again tomorrow."
	msgInternal        = "Internal server error"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

func respondValidation(w http.ResponseWriter, errs ...fieldError) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation error",
		Errors:  errs,
	})
}

// respondServiceError maps domain errors to the response contract; anything
// unrecognized becomes a logged 500 with a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondValidation(w, fieldError{Field: vErr.Field, Message: vErr.Message})
	case errors.Is(err, domain.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, domain.ErrNoActiveQuestion):
		respondError(w, http.StatusNotFound, "No active question found")
	case errors.Is(err, domain.ErrProposalNotFound):
		respondError(w, http.StatusNotFound, "Proposed question not found")
	case errors.Is(err, domain.ErrAlreadyVoted):
		respondError(w, http.StatusBadRequest, msgAlreadyVoted)
	case errors.Is(err, domain.ErrSubmissionLimit):
		respondError(w, http.StatusTooManyRequests, msgSubmissionLimit)
	case errors.Is(err, domain.ErrInvalidChoice):
		respondValidation(w, fieldError{Field: "choice", Message: domain.ErrInvalidChoice.Error()})
	case errors.Is(err, domain.ErrInvalidCategory):
		respondValidation(w, fieldError{Field: "category", Message: domain.ErrInvalidCategory.Error()})
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, msgInternal)
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
