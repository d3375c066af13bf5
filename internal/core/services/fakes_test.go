package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type fakeQuestionRepo struct {
	questions map[uuid.UUID]*domain.Question
}

func newFakeQuestionRepo(questions ...*domain.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uuid.UUID]*domain.Question)}
	for _, q := range questions {
		repo.questions[q.ID] = q
	}
	return repo
}

func (f *fakeQuestionRepo) Save(_ context.Context, question *domain.Question) error {
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	copied := *q
	return &copied, nil
}

func (f *fakeQuestionRepo) GetActive(_ context.Context) (*domain.Question, error) {
	for _, q := range f.questions {
		if q.Active {
			copied := *q
			return &copied, nil
		}
	}
	return nil, domain.ErrNoActiveQuestion
}

func (f *fakeQuestionRepo) List(_ context.Context, limit, offset int, category domain.Category) ([]*domain.Question, int64, error) {
	var all []*domain.Question
	for _, q := range f.questions {
		if q.Active {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		all = append(all, q)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeQuestionRepo) ListTrending(_ context.Context, limit int) ([]*domain.Question, error) {
	var all []*domain.Question
	for _, q := range f.questions {
		all = append(all, q)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TotalVotes > all[j].TotalVotes })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeQuestionRepo) IncrementVotes(_ context.Context, id uuid.UUID, choice domain.Choice) error {
	q, ok := f.questions[id]
	if !ok {
		return domain.ErrQuestionNotFound
	}
	if choice == domain.ChoiceYes {
		q.YesVotes++
	} else {
		q.NoVotes++
	}
	q.TotalVotes++
	return nil
}

type fakeVoteRepo struct {
	votes map[uuid.UUID]map[string]*domain.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[uuid.UUID]map[string]*domain.Vote)}
}

func (f *fakeVoteRepo) SaveVote(_ context.Context, vote *domain.Vote) error {
	byVoter, ok := f.votes[vote.QuestionID]
	if !ok {
		byVoter = make(map[string]*domain.Vote)
		f.votes[vote.QuestionID] = byVoter
	}
	if _, exists := byVoter[vote.VoterIP]; exists {
		return domain.ErrAlreadyVoted
	}
	byVoter[vote.VoterIP] = vote
	return nil
}

func (f *fakeVoteRepo) HasVoted(_ context.Context, questionID uuid.UUID, voterIP string) (bool, error) {
	_, ok := f.votes[questionID][voterIP]
	return ok, nil
}

type fakeCommentRepo struct {
	comments []domain.Comment
}

func (f *fakeCommentRepo) Save(_ context.Context, comment *domain.Comment) error {
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListRecent(_ context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error) {
	return f.forQuestion(questionID, limit), nil
}

func (f *fakeCommentRepo) Sample(_ context.Context, questionID uuid.UUID, limit int) ([]domain.Comment, error) {
	return f.forQuestion(questionID, limit), nil
}

func (f *fakeCommentRepo) forQuestion(questionID uuid.UUID, limit int) []domain.Comment {
	var out []domain.Comment
	for _, c := range f.comments {
		if c.QuestionID == questionID {
			out = append(out, c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

type fakeProposalRepo struct {
	proposals map[uuid.UUID]*domain.Proposal
	voters    map[uuid.UUID]map[string]bool
}

func newFakeProposalRepo(proposals ...*domain.Proposal) *fakeProposalRepo {
	repo := &fakeProposalRepo{
		proposals: make(map[uuid.UUID]*domain.Proposal),
		voters:    make(map[uuid.UUID]map[string]bool),
	}
	for _, p := range proposals {
		repo.proposals[p.ID] = p
	}
	return repo
}

func (f *fakeProposalRepo) Save(_ context.Context, proposal *domain.Proposal) error {
	f.proposals[proposal.ID] = proposal
	return nil
}

func (f *fakeProposalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Proposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProposalRepo) ListActive(_ context.Context, limit int) ([]*domain.Proposal, error) {
	var active []*domain.Proposal
	for _, p := range f.proposals {
		if p.Status == domain.ProposalActive {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Votes > active[j].Votes })
	if len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (f *fakeProposalRepo) CountSubmittedSince(_ context.Context, submitterIP string, since time.Time) (int64, error) {
	var count int64
	for _, p := range f.proposals {
		if p.SubmitterIP == submitterIP && !p.SubmittedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeProposalRepo) HasVoted(_ context.Context, id uuid.UUID, voterIP string) (bool, error) {
	return f.voters[id][voterIP], nil
}

func (f *fakeProposalRepo) RegisterVote(_ context.Context, id uuid.UUID, voterIP string) (*domain.Proposal, error) {
	p, ok := f.proposals[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	if f.voters[id] == nil {
		f.voters[id] = make(map[string]bool)
	}
	if f.voters[id][voterIP] {
		return nil, domain.ErrAlreadyVoted
	}
	f.voters[id][voterIP] = true
	p.Votes++
	copied := *p
	return &copied, nil
}

type fakeRotator struct {
	fallback *domain.Question
	result   *domain.RotationResult
	err      error
}

func (f *fakeRotator) Rotate(_ context.Context, fallback *domain.Question) (*domain.RotationResult, error) {
	f.fallback = fallback
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.RotationResult{NewQuestion: fallback}, nil
}

var _ ports.QuestionRepository = (*fakeQuestionRepo)(nil)
var _ ports.VoteRepository = (*fakeVoteRepo)(nil)
var _ ports.CommentRepository = (*fakeCommentRepo)(nil)
var _ ports.ProposalRepository = (*fakeProposalRepo)(nil)
var _ ports.Rotator = (*fakeRotator)(nil)
