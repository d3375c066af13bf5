package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
)

type CommentRepository interface {
	Save(ctx context.Context, comment *domain.Comment) error
	ListRecent(ctx context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error)
	// Sample returns pinned comments first, padded with a random sample of
	// the rest up to limit.
	Sample(ctx context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error)
}

type CommentInput struct {
	QuestionID uuid.UUID
	Content    string
	Anonymous  bool
	VoterIP    string
	UserAgent  string
}

type CommentService interface {
	Add(ctx context.Context, input CommentInput) (*domain.Comment, error)
}
