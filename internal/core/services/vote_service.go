package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type voteService struct {
	questionRepo ports.QuestionRepository
	voteRepo     ports.VoteRepository
}

func NewVoteService(questionRepo ports.QuestionRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		questionRepo: questionRepo,
		voteRepo:     voteRepo,
	}
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Question, error) {
	if !input.Choice.Valid() {
		return nil, domain.ErrInvalidChoice
	}

	if _, err := s.questionRepo.GetByID(ctx, input.QuestionID); err != nil {
		return nil, err
	}

	hasVoted, err := s.voteRepo.HasVoted(ctx, input.QuestionID, input.VoterIP)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		ID:         uuid.New(),
		QuestionID: input.QuestionID,
		Choice:     input.Choice,
		VoterIP:    input.VoterIP,
		UserAgent:  input.UserAgent,
		CreatedAt:  time.Now(),
	}

	// The ledger's unique constraint is the real duplicate guard; the check
	// above only serves the warm path.
	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, err
	}

	if err := s.questionRepo.IncrementVotes(ctx, input.QuestionID, input.Choice); err != nil {
		return nil, err
	}

	return s.questionRepo.GetByID(ctx, input.QuestionID)
}
