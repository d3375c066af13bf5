package ports

import (
	"context"

	"github.com/google/uuid"
)

// TallyRepository recomputes a question's denormalized counters from the
// votes ledger.
type TallyRepository interface {
	RecountVotes(ctx context.Context, questionID uuid.UUID) error
	ListQuestionIDs(ctx context.Context) ([]uuid.UUID, error)
}

type ReconcileService interface {
	ReconcileAll(ctx context.Context) error
}
