package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type rotationRepository struct {
	db *sql.DB
}

func NewRotationRepository(db *sql.DB) ports.Rotator {
	return &rotationRepository{
		db: db,
	}
}

// Rotate runs the archive/promote/reject sequence in a single transaction.
// The FOR UPDATE on the active row serializes overlapping runs; any error
// rolls the whole rotation back so no partial state is left behind.
func (r *rotationRepository) Rotate(ctx context.Context, fallback *domain.Question) (*domain.RotationResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &domain.RotationResult{}

	archiveQuery := `
		UPDATE questions
		SET active = false, archived_at = NOW(), updated_at = NOW()
		WHERE id = (SELECT id FROM questions WHERE active ORDER BY date DESC LIMIT 1 FOR UPDATE)
		RETURNING ` + questionColumns + `
	`
	archived, err := scanQuestion(tx.QueryRowContext(ctx, archiveQuery))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to archive active question: %w", err)
	}
	result.ArchivedQuestion = archived

	topQuery := `
		SELECT ` + proposalColumns + `
		FROM proposed_questions
		WHERE status = 'active'
		ORDER BY votes DESC, submitted_at DESC
		LIMIT 1
		FOR UPDATE
	`
	top, err := scanProposal(tx.QueryRowContext(ctx, topQuery))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch top proposal: %w", err)
	}

	newQuestion := fallback
	if top != nil {
		newQuestion = &domain.Question{
			ID:        fallback.ID,
			Text:      top.Text,
			Category:  top.Category,
			Tags:      top.Tags,
			Active:    true,
			Date:      fallback.Date,
			CreatedAt: fallback.CreatedAt,
			UpdatedAt: fallback.UpdatedAt,
		}

		markSelected := `
			UPDATE proposed_questions
			SET status = 'selected', selected_at = NOW()
			WHERE id = $1
			RETURNING ` + proposalColumns + `
		`
		selected, err := scanProposal(tx.QueryRowContext(ctx, markSelected, top.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to mark proposal selected: %w", err)
		}
		result.SelectedProposal = selected
	}

	insertQuery := `
		INSERT INTO questions (id, text, category, tags, active, date)
		VALUES ($1, $2, $3, $4, true, $5)
		RETURNING ` + questionColumns + `
	`
	created, err := scanQuestion(tx.QueryRowContext(ctx, insertQuery,
		newQuestion.ID, newQuestion.Text, newQuestion.Category,
		pq.Array(newQuestion.Tags), newQuestion.Date,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create new active question: %w", err)
	}
	result.NewQuestion = created

	rejectQuery := `
		UPDATE proposed_questions
		SET status = 'rejected', rejected_at = NOW()
		WHERE status = 'active'
	`
	rejectResult, err := tx.ExecContext(ctx, rejectQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to reject remaining proposals: %w", err)
	}
	rejected, err := rejectResult.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rejected count: %w", err)
	}
	result.RejectedCount = rejected

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rotation: %w", err)
	}

	return result, nil
}
