package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
)

type ProposalRepository interface {
	Save(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListActive(ctx context.Context, limit int) ([]*domain.Proposal, error)
	CountSubmittedSince(ctx context.Context, submitterIP string, since time.Time) (int64, error)
	HasVoted(ctx context.Context, id uuid.UUID, voterIP string) (bool, error)
	// RegisterVote appends the voter and increments the counter in a single
	// atomic unit; returns domain.ErrAlreadyVoted on a repeat identity.
	RegisterVote(ctx context.Context, id uuid.UUID, voterIP string) (*domain.Proposal, error)
}

type SubmitProposalInput struct {
	Text        string
	Category    domain.Category
	Tags        []string
	SubmittedBy string
	SubmitterIP string
	UserAgent   string
}

type ProposalVoteResult struct {
	ProposalID uuid.UUID `json:"proposalId"`
	Votes      int64     `json:"votes"`
}

type ProposalService interface {
	Submit(ctx context.Context, input SubmitProposalInput) (*domain.Proposal, error)
	ListActive(ctx context.Context, limit int) ([]*domain.Proposal, error)
	Top(ctx context.Context, limit int) ([]*domain.Proposal, error)
	Get(ctx context.Context, id string) (*domain.Proposal, error)
	Vote(ctx context.Context, id string, voterIP string) (*ProposalVoteResult, error)
}
