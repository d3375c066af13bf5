package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldquestion/api/internal/core/domain"
)

func TestRotateWeeklyProvidesFallback(t *testing.T) {
	rotator := &fakeRotator{}
	svc := NewRotationService(rotator)

	result, err := svc.RotateWeekly(context.Background())
	require.NoError(t, err)

	require.NotNil(t, rotator.fallback)
	assert.Equal(t, domain.FallbackQuestionText, rotator.fallback.Text)
	assert.Equal(t, domain.FallbackQuestionCategory, rotator.fallback.Category)
	assert.Equal(t, domain.FallbackQuestionTags, rotator.fallback.Tags)
	assert.True(t, rotator.fallback.Active)
	assert.Zero(t, rotator.fallback.YesVotes)
	assert.Zero(t, rotator.fallback.NoVotes)
	assert.Zero(t, rotator.fallback.TotalVotes)

	assert.Equal(t, rotator.fallback, result.NewQuestion)
}

func TestRotateWeeklyPassesResultThrough(t *testing.T) {
	archived := &domain.Question{ID: uuid.New(), Text: "old", YesVotes: 7, NoVotes: 3}
	selected := &domain.Proposal{ID: uuid.New(), Text: "winner", SubmittedBy: "Ada", Votes: 12}
	promoted := &domain.Question{ID: uuid.New(), Text: "winner", Active: true}
	rotator := &fakeRotator{result: &domain.RotationResult{
		ArchivedQuestion: archived,
		NewQuestion:      promoted,
		SelectedProposal: selected,
		RejectedCount:    4,
	}}
	svc := NewRotationService(rotator)

	result, err := svc.RotateWeekly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, archived, result.ArchivedQuestion)
	assert.Equal(t, promoted, result.NewQuestion)
	assert.Equal(t, selected, result.SelectedProposal)
	assert.Equal(t, int64(4), result.RejectedCount)
}

func TestRotateWeeklyPropagatesError(t *testing.T) {
	rotator := &fakeRotator{err: errors.New("store down")}
	svc := NewRotationService(rotator)

	_, err := svc.RotateWeekly(context.Background())
	assert.Error(t, err)
}
