package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

const (
	defaultHistoryLimit  = 10
	maxHistoryLimit      = 50
	defaultCommentSample = 3
	maxCommentSample     = 20
	trendingLimit        = 5
)

type questionService struct {
	questionRepo ports.QuestionRepository
	commentRepo  ports.CommentRepository
}

func NewQuestionService(questionRepo ports.QuestionRepository, commentRepo ports.CommentRepository) ports.QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		commentRepo:  commentRepo,
	}
}

func (s *questionService) Current(ctx context.Context, commentSample int) (*domain.Question, error) {
	if commentSample <= 0 {
		commentSample = defaultCommentSample
	}
	if commentSample > maxCommentSample {
		commentSample = maxCommentSample
	}

	question, err := s.questionRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.Sample(ctx, question.ID, commentSample)
	if err != nil {
		return nil, fmt.Errorf("failed to sample comments: %w", err)
	}
	question.Comments = comments

	return question, nil
}

func (s *questionService) History(ctx context.Context, input ports.HistoryInput) (*ports.HistoryPage, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit <= 0 {
		input.Limit = defaultHistoryLimit
	}
	if input.Limit > maxHistoryLimit {
		input.Limit = maxHistoryLimit
	}
	if input.Category != "" && !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	offset := (input.Page - 1) * input.Limit
	questions, total, err := s.questionRepo.List(ctx, input.Limit, offset, input.Category)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(input.Limit)
	if total%int64(input.Limit) != 0 {
		totalPages++
	}

	return &ports.HistoryPage{
		Questions:  questions,
		Total:      total,
		TotalPages: totalPages,
		Page:       input.Page,
	}, nil
}

func (s *questionService) Get(ctx context.Context, id string) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListRecent(ctx, question.ID, defaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	question.Comments = comments

	return question, nil
}

func (s *questionService) Trending(ctx context.Context) ([]*domain.Question, error) {
	return s.questionRepo.ListTrending(ctx, trendingLimit)
}
