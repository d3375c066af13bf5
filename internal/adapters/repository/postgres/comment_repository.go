package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) ports.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

const commentColumns = `
	id, question_id, content, anonymous, pinned, voter_ip, user_agent, likes, created_at
`

func (r *commentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, question_id, content, anonymous, voter_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.QuestionID, comment.Content,
		comment.Anonymous, comment.VoterIP, comment.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *commentRepository) ListRecent(ctx context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE question_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, questionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	return r.scanComments(rows)
}

// Sample returns pinned comments first and pads with a random pick of the
// unpinned ones up to limit.
func (r *commentRepository) Sample(ctx context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + ` FROM (
			(SELECT ` + commentColumns + `
			 FROM comments WHERE question_id = $1 AND pinned
			 ORDER BY created_at DESC LIMIT $2)
			UNION ALL
			(SELECT ` + commentColumns + `
			 FROM comments WHERE question_id = $1 AND NOT pinned
			 ORDER BY random() LIMIT $2)
		) c
		ORDER BY pinned DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, questionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample comments: %w", err)
	}
	defer rows.Close()

	return r.scanComments(rows)
}

func (r *commentRepository) scanComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID, &comment.QuestionID, &comment.Content,
			&comment.Anonymous, &comment.Pinned, &comment.VoterIP,
			&comment.UserAgent, &comment.Likes, &comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
