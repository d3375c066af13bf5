package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

func TestCurrentAttachesComments(t *testing.T) {
	active := &domain.Question{ID: uuid.New(), Text: "today", Active: true, Category: domain.CategorySociety}
	archived := &domain.Question{ID: uuid.New(), Text: "yesterday", Category: domain.CategorySociety}
	commentRepo := &fakeCommentRepo{comments: []domain.Comment{
		{ID: uuid.New(), QuestionID: active.ID, Content: "one"},
		{ID: uuid.New(), QuestionID: active.ID, Content: "two"},
		{ID: uuid.New(), QuestionID: archived.ID, Content: "other question"},
	}}
	svc := NewQuestionService(newFakeQuestionRepo(active, archived), commentRepo)

	question, err := svc.Current(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, active.ID, question.ID)
	assert.Len(t, question.Comments, 2)
}

func TestCurrentNoActiveQuestion(t *testing.T) {
	archived := &domain.Question{ID: uuid.New(), Text: "old", Category: domain.CategorySociety}
	svc := NewQuestionService(newFakeQuestionRepo(archived), &fakeCommentRepo{})

	_, err := svc.Current(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrNoActiveQuestion)
}

func TestHistoryPagination(t *testing.T) {
	repo := newFakeQuestionRepo()
	base := time.Now()
	for i := 0; i < 25; i++ {
		id := uuid.New()
		repo.questions[id] = &domain.Question{
			ID:       id,
			Text:     "q",
			Category: domain.CategorySociety,
			Date:     base.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	svc := NewQuestionService(repo, &fakeCommentRepo{})

	page, err := svc.History(context.Background(), ports.HistoryInput{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Questions, 10)
}

func TestHistoryDefaultsAndInvalidCategory(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo(), &fakeCommentRepo{})

	page, err := svc.History(context.Background(), ports.HistoryInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)

	_, err = svc.History(context.Background(), ports.HistoryInput{Category: "sports"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetRoundTrip(t *testing.T) {
	question := &domain.Question{
		ID:       uuid.New(),
		Text:     "Will fusion power arrive before 2050?",
		Category: domain.CategoryScience,
		Tags:     []string{"energy", "fusion"},
	}
	svc := NewQuestionService(newFakeQuestionRepo(question), &fakeCommentRepo{})

	fetched, err := svc.Get(context.Background(), question.ID.String())
	require.NoError(t, err)
	assert.Equal(t, question.Text, fetched.Text)
	assert.Equal(t, question.Category, fetched.Category)
	assert.Equal(t, question.Tags, fetched.Tags)
	assert.Zero(t, fetched.YesVotes)
	assert.Zero(t, fetched.NoVotes)
	assert.Zero(t, fetched.TotalVotes)
}

func TestGetBadID(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo(), &fakeCommentRepo{})

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestTrending(t *testing.T) {
	repo := newFakeQuestionRepo()
	for i := 0; i < 8; i++ {
		id := uuid.New()
		repo.questions[id] = &domain.Question{ID: id, Text: "q", Category: domain.CategorySociety, TotalVotes: int64(i)}
	}
	svc := NewQuestionService(repo, &fakeCommentRepo{})

	questions, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 5)
	assert.Equal(t, int64(7), questions[0].TotalVotes)
}
