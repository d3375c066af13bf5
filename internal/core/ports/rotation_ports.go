package ports

import (
	"context"

	"github.com/worldquestion/api/internal/core/domain"
)

// Rotator performs the archive/promote/reject sequence as one atomic unit of
// work against the store.
type Rotator interface {
	Rotate(ctx context.Context, fallback *domain.Question) (*domain.RotationResult, error)
}

type RotationService interface {
	RotateWeekly(ctx context.Context) (*domain.RotationResult, error)
}
