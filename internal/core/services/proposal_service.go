package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

const (
	defaultProposalLimit = 20
	defaultTopLimit      = 10
	maxProposalLimit     = 100
	maxTagLen            = 20
	maxTags              = 10
)

type proposalService struct {
	repo      ports.ProposalRepository
	sanitizer *bluemonday.Policy
}

func NewProposalService(repo ports.ProposalRepository) ports.ProposalService {
	return &proposalService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *proposalService) Submit(ctx context.Context, input ports.SubmitProposalInput) (*domain.Proposal, error) {
	text := strings.TrimSpace(s.sanitizer.Sanitize(input.Text))
	if n := utf8.RuneCountInString(text); n < domain.ProposalTextMinLen || n > domain.ProposalTextMaxLen {
		return nil, &domain.ValidationError{Field: "text", Message: "Question must be between 10 and 500 characters"}
	}
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	submittedBy := strings.TrimSpace(s.sanitizer.Sanitize(input.SubmittedBy))
	if submittedBy == "" {
		submittedBy = "Anonymous"
	}
	if utf8.RuneCountInString(submittedBy) > domain.SubmitterNameMax {
		return nil, &domain.ValidationError{Field: "submittedBy", Message: "Name must be less than 50 characters"}
	}

	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-24 * time.Hour)
	recent, err := s.repo.CountSubmittedSince(ctx, input.SubmitterIP, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent submissions: %w", err)
	}
	if recent >= domain.ProposalDailyLimit {
		return nil, domain.ErrSubmissionLimit
	}

	proposal := &domain.Proposal{
		ID:          uuid.New(),
		Text:        text,
		Category:    input.Category,
		Tags:        tags,
		SubmittedBy: submittedBy,
		SubmitterIP: input.SubmitterIP,
		UserAgent:   input.UserAgent,
		Status:      domain.ProposalActive,
		SubmittedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, proposal); err != nil {
		return nil, err
	}

	return proposal, nil
}

func (s *proposalService) ListActive(ctx context.Context, limit int) ([]*domain.Proposal, error) {
	if limit <= 0 {
		limit = defaultProposalLimit
	}
	if limit > maxProposalLimit {
		limit = maxProposalLimit
	}
	return s.repo.ListActive(ctx, limit)
}

func (s *proposalService) Top(ctx context.Context, limit int) ([]*domain.Proposal, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxProposalLimit {
		limit = maxProposalLimit
	}
	return s.repo.ListActive(ctx, limit)
}

func (s *proposalService) Get(ctx context.Context, id string) (*domain.Proposal, error) {
	proposalID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}
	return s.repo.GetByID(ctx, proposalID)
}

func (s *proposalService) Vote(ctx context.Context, id string, voterIP string) (*ports.ProposalVoteResult, error) {
	proposalID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}

	if _, err := s.repo.GetByID(ctx, proposalID); err != nil {
		return nil, err
	}

	hasVoted, err := s.repo.HasVoted(ctx, proposalID, voterIP)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	proposal, err := s.repo.RegisterVote(ctx, proposalID, voterIP)
	if err != nil {
		return nil, err
	}

	return &ports.ProposalVoteResult{
		ProposalID: proposal.ID,
		Votes:      proposal.Votes,
	}, nil
}

func normalizeTags(tags []string) ([]string, error) {
	if len(tags) > maxTags {
		return nil, &domain.ValidationError{Field: "tags", Message: "too many tags"}
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if utf8.RuneCountInString(tag) > maxTagLen {
			return nil, &domain.ValidationError{Field: "tags", Message: "tag exceeds maximum length"}
		}
		out = append(out, tag)
	}
	return out, nil
}
