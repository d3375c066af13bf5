package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/ports"
)

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{
		db: db,
	}
}

func (r *tallyRepository) ListQuestionIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM questions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list question ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan question id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question ids: %w", err)
	}
	return ids, nil
}

// RecountVotes rebuilds the denormalized counters from the ledger in a single
// statement, treating the votes table as the source of truth.
func (r *tallyRepository) RecountVotes(ctx context.Context, questionID uuid.UUID) error {
	query := `
		UPDATE questions q
		SET yes_votes = t.yes, no_votes = t.no, total_votes = t.yes + t.no, updated_at = NOW()
		FROM (
			SELECT
				COUNT(*) FILTER (WHERE choice = 'yes') AS yes,
				COUNT(*) FILTER (WHERE choice = 'no') AS no
			FROM votes
			WHERE question_id = $1
		) t
		WHERE q.id = $1
	`
	_, err := r.db.ExecContext(ctx, query, questionID)
	if err != nil {
		return fmt.Errorf("failed to recount votes for question %s: %w", questionID, err)
	}
	return nil
}
