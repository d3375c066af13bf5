package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type rotationService struct {
	rotator ports.Rotator
}

func NewRotationService(rotator ports.Rotator) ports.RotationService {
	return &rotationService{rotator: rotator}
}

// RotateWeekly archives the active question, promotes the top-voted proposal
// (or the fallback question when none exist) and rejects the remaining
// proposals. The whole sequence is one unit of work; overlapping runs
// serialize on the active row.
func (s *rotationService) RotateWeekly(ctx context.Context) (*domain.RotationResult, error) {
	now := time.Now()
	fallback := &domain.Question{
		ID:        uuid.New(),
		Text:      domain.FallbackQuestionText,
		Category:  domain.FallbackQuestionCategory,
		Tags:      domain.FallbackQuestionTags,
		Active:    true,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.rotator.Rotate(ctx, fallback)
	if err != nil {
		return nil, err
	}

	if result.ArchivedQuestion != nil {
		log.Printf("rotation: archived %q (yes=%d no=%d)",
			result.ArchivedQuestion.Text, result.ArchivedQuestion.YesVotes, result.ArchivedQuestion.NoVotes)
	}
	if result.SelectedProposal != nil {
		log.Printf("rotation: selected proposal %q by %s with %d votes",
			result.SelectedProposal.Text, result.SelectedProposal.SubmittedBy, result.SelectedProposal.Votes)
	} else {
		log.Printf("rotation: no active proposals, activated fallback question")
	}
	log.Printf("rotation: new active question %q, rejected %d proposals",
		result.NewQuestion.Text, result.RejectedCount)

	return result, nil
}
