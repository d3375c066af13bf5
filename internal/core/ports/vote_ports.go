package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote returns domain.ErrAlreadyVoted when the (question, identity)
	// pair is already in the ledger.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, questionID uuid.UUID, voterIP string) (bool, error)
}

type VoteInput struct {
	QuestionID uuid.UUID
	Choice     domain.Choice
	VoterIP    string
	UserAgent  string
}

type VoteService interface {
	// Vote records a vote and returns the question with updated counters.
	Vote(ctx context.Context, input VoteInput) (*domain.Question, error)
}
