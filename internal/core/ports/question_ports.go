package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
)

type QuestionRepository interface {
	Save(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetActive(ctx context.Context) (*domain.Question, error)
	List(ctx context.Context, limit, offset int, category domain.Category) ([]*domain.Question, int64, error)
	ListTrending(ctx context.Context, limit int) ([]*domain.Question, error)
	IncrementVotes(ctx context.Context, id uuid.UUID, choice domain.Choice) error
}

type HistoryInput struct {
	Page     int
	Limit    int
	Category domain.Category
}

type HistoryPage struct {
	Questions  []*domain.Question `json:"questions"`
	Total      int64              `json:"total"`
	TotalPages int64              `json:"totalPages"`
	Page       int                `json:"currentPage"`
}

type QuestionService interface {
	Current(ctx context.Context, commentSample int) (*domain.Question, error)
	History(ctx context.Context, input HistoryInput) (*HistoryPage, error)
	Get(ctx context.Context, id string) (*domain.Question, error)
	Trending(ctx context.Context) ([]*domain.Question, error)
}
