package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type commentService struct {
	questionRepo ports.QuestionRepository
	commentRepo  ports.CommentRepository
	sanitizer    *bluemonday.Policy
}

func NewCommentService(questionRepo ports.QuestionRepository, commentRepo ports.CommentRepository) ports.CommentService {
	return &commentService{
		questionRepo: questionRepo,
		commentRepo:  commentRepo,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *commentService) Add(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(input.Content))
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Message: "content is required"}
	}
	if utf8.RuneCountInString(content) > domain.CommentMaxLen {
		return nil, &domain.ValidationError{Field: "content", Message: "content exceeds maximum length"}
	}

	if _, err := s.questionRepo.GetByID(ctx, input.QuestionID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:         uuid.New(),
		QuestionID: input.QuestionID,
		Content:    content,
		Anonymous:  input.Anonymous,
		VoterIP:    input.VoterIP,
		UserAgent:  input.UserAgent,
		CreatedAt:  time.Now(),
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
