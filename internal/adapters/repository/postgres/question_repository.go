package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type questionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) ports.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

const questionColumns = `
	id, text, category, tags, ai_summary, active,
	yes_votes, no_votes, total_votes, date, archived_at, created_at, updated_at
`

func (r *questionRepository) Save(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, text, category, tags, ai_summary, active, date)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.Text, question.Category, pq.Array(question.Tags),
		question.AISummary, question.Active, question.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

func (r *questionRepository) GetActive(ctx context.Context) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE active ORDER BY date DESC LIMIT 1`
	question, err := scanQuestion(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNoActiveQuestion
		}
		return nil, fmt.Errorf("failed to get active question: %w", err)
	}
	return question, nil
}

func (r *questionRepository) List(ctx context.Context, limit, offset int, category domain.Category) ([]*domain.Question, int64, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE NOT active AND ($3 = '' OR category = $3)
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset, string(category))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions, err := r.scanQuestions(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM questions WHERE NOT active AND ($1 = '' OR category = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, string(category)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	return questions, total, nil
}

func (r *questionRepository) ListTrending(ctx context.Context, limit int) ([]*domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		ORDER BY total_votes DESC, date DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending questions: %w", err)
	}
	defer rows.Close()

	return r.scanQuestions(rows)
}

// IncrementVotes bumps the matching counter and the total in one statement so
// concurrent votes never read stale values.
func (r *questionRepository) IncrementVotes(ctx context.Context, id uuid.UUID, choice domain.Choice) error {
	query := `
		UPDATE questions
		SET yes_votes = yes_votes + CASE WHEN $2 = 'yes' THEN 1 ELSE 0 END,
		    no_votes = no_votes + CASE WHEN $2 = 'no' THEN 1 ELSE 0 END,
		    total_votes = total_votes + 1,
		    updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, string(choice))
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var question domain.Question
	var aiSummary sql.NullString
	err := row.Scan(
		&question.ID, &question.Text, &question.Category, pq.Array(&question.Tags),
		&aiSummary, &question.Active, &question.YesVotes, &question.NoVotes,
		&question.TotalVotes, &question.Date, &question.ArchivedAt,
		&question.CreatedAt, &question.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	question.AISummary = aiSummary.String
	return &question, nil
}

func (r *questionRepository) scanQuestions(rows *sql.Rows) ([]*domain.Question, error) {
	var questions []*domain.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	return questions, nil
}
