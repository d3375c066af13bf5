package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

func TestSubmitProposal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	payload := map[string]any{
		"text":        "Should every city have a car-free center?",
		"category":    "environment",
		"tags":        []string{"Urbanism", " transit "},
		"submittedBy": "Alex",
	}
	resp, body := app.doJSON(t, "POST", "/api/proposed-questions", payload, "203.0.113.30")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, body.Success)
	assert.Equal(t, "Question proposed successfully", body.Message)

	var proposal domain.Proposal
	require.NoError(t, json.Unmarshal(body.Data, &proposal))
	assert.Equal(t, "Should every city have a car-free center?", proposal.Text)
	assert.Equal(t, domain.CategoryEnvironment, proposal.Category)
	assert.Equal(t, []string{"urbanism", "transit"}, proposal.Tags)
	assert.Equal(t, "Alex", proposal.SubmittedBy)
	assert.Equal(t, domain.ProposalActive, proposal.Status)
	assert.Equal(t, int64(0), proposal.Votes)
}

func TestSubmitProposalValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Text too short
	resp, body := app.doJSON(t, "POST", "/api/proposed-questions",
		map[string]any{"text": "Too short", "category": "society"}, "203.0.113.31")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)

	// Unknown category
	resp, body = app.doJSON(t, "POST", "/api/proposed-questions",
		map[string]any{"text": "Should this category ever be accepted?", "category": "sports"}, "203.0.113.31")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestProposalDailyLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	for i := 0; i < domain.ProposalDailyLimit; i++ {
		resp, _ := app.doJSON(t, "POST", "/api/proposed-questions", map[string]any{
			"text":     fmt.Sprintf("Should proposal number %d be allowed through?", i),
			"category": "society",
		}, "203.0.113.40")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// 6th submission from the same identity is denied
	resp, body := app.doJSON(t, "POST", "/api/proposed-questions", map[string]any{
		"text":     "Should a sixth proposal slip past the limit?",
		"category": "society",
	}, "203.0.113.40")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "You can only submit 5 questions per day. Please try again tomorrow.", body.Message)

	// A different identity is unaffected
	resp, _ = app.doJSON(t, "POST", "/api/proposed-questions", map[string]any{
		"text":     "Should other submitters keep their own quota?",
		"category": "society",
	}, "203.0.113.41")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestVoteOnProposal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, body := app.doJSON(t, "POST", "/api/proposed-questions", map[string]any{
		"text":     "Should proposals be ranked by community votes?",
		"category": "society",
	}, "203.0.113.50")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var proposal domain.Proposal
	require.NoError(t, json.Unmarshal(body.Data, &proposal))

	// 1. First vote counts
	resp, body = app.doJSON(t, "POST", fmt.Sprintf("/api/proposed-questions/%s/vote", proposal.ID), nil, "203.0.113.51")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Vote recorded successfully", body.Message)

	var result ports.ProposalVoteResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, int64(1), result.Votes)

	// 2. Repeat vote from the same identity is rejected
	resp, body = app.doJSON(t, "POST", fmt.Sprintf("/api/proposed-questions/%s/vote", proposal.ID), nil, "203.0.113.51")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You have already voted on this question", body.Message)

	var votes int64
	err := app.DB.QueryRow("SELECT votes FROM proposed_questions WHERE id=$1", proposal.ID).Scan(&votes)
	require.NoError(t, err)
	assert.Equal(t, int64(1), votes)
}

func TestListProposalsOrderedByVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	texts := []string{
		"Should the least popular proposal come last?",
		"Should the most popular proposal come first?",
	}
	ids := make([]string, 0, len(texts))
	for i, text := range texts {
		resp, body := app.doJSON(t, "POST", "/api/proposed-questions", map[string]any{
			"text":     text,
			"category": "society",
		}, fmt.Sprintf("203.0.113.6%d", i))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var proposal domain.Proposal
		require.NoError(t, json.Unmarshal(body.Data, &proposal))
		ids = append(ids, proposal.ID.String())
	}

	// Two votes for the second proposal, one for the first
	for _, vote := range []struct{ id, ip string }{
		{ids[1], "203.0.113.70"},
		{ids[1], "203.0.113.71"},
		{ids[0], "203.0.113.70"},
	} {
		resp, _ := app.doJSON(t, "POST", fmt.Sprintf("/api/proposed-questions/%s/vote", vote.id), nil, vote.ip)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := app.doJSON(t, "GET", "/api/proposed-questions/top", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var proposals []*domain.Proposal
	require.NoError(t, json.Unmarshal(body.Data, &proposals))
	require.Len(t, proposals, 2)
	assert.Equal(t, ids[1], proposals[0].ID.String())
	assert.Equal(t, int64(2), proposals[0].Votes)
	assert.Equal(t, ids[0], proposals[1].ID.String())
}
