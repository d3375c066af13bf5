package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type proposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) ports.ProposalRepository {
	return &proposalRepository{
		db: db,
	}
}

const proposalColumns = `
	id, text, category, tags, submitted_by, submitter_ip, user_agent,
	votes, status, submitted_at, selected_at, rejected_at
`

func (r *proposalRepository) Save(ctx context.Context, proposal *domain.Proposal) error {
	query := `
		INSERT INTO proposed_questions
			(id, text, category, tags, submitted_by, submitter_ip, user_agent, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		proposal.ID, proposal.Text, proposal.Category, pq.Array(proposal.Tags),
		proposal.SubmittedBy, proposal.SubmitterIP, proposal.UserAgent,
		proposal.Status, proposal.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert proposal: %w", err)
	}
	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposed_questions WHERE id = $1`
	proposal, err := scanProposal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

func (r *proposalRepository) ListActive(ctx context.Context, limit int) ([]*domain.Proposal, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposed_questions
		WHERE status = 'active'
		ORDER BY votes DESC, submitted_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*domain.Proposal
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, proposal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposals: %w", err)
	}
	return proposals, nil
}

func (r *proposalRepository) CountSubmittedSince(ctx context.Context, submitterIP string, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM proposed_questions WHERE submitter_ip = $1 AND submitted_at >= $2`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, submitterIP, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

func (r *proposalRepository) HasVoted(ctx context.Context, id uuid.UUID, voterIP string) (bool, error) {
	query := `SELECT 1 FROM proposal_voters WHERE proposal_id = $1 AND voter_ip = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, id, voterIP).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check proposal vote: %w", err)
	}
	return true, nil
}

// RegisterVote appends the voter and bumps the counter in one transaction so
// the two can never diverge.
func (r *proposalRepository) RegisterVote(ctx context.Context, id uuid.UUID, voterIP string) (*domain.Proposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertVoter := `INSERT INTO proposal_voters (proposal_id, voter_ip) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insertVoter, id, voterIP); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyVoted
		}
		return nil, fmt.Errorf("failed to record proposal voter: %w", err)
	}

	update := `
		UPDATE proposed_questions SET votes = votes + 1 WHERE id = $1
		RETURNING ` + proposalColumns + `
	`
	proposal, err := scanProposal(tx.QueryRowContext(ctx, update, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to increment proposal votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return proposal, nil
}

func scanProposal(row rowScanner) (*domain.Proposal, error) {
	var proposal domain.Proposal
	err := row.Scan(
		&proposal.ID, &proposal.Text, &proposal.Category, pq.Array(&proposal.Tags),
		&proposal.SubmittedBy, &proposal.SubmitterIP, &proposal.UserAgent,
		&proposal.Votes, &proposal.Status, &proposal.SubmittedAt,
		&proposal.SelectedAt, &proposal.RejectedAt,
	)
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
