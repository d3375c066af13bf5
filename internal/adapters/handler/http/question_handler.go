package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type QuestionHandler struct {
	questions ports.QuestionService
	votes     ports.VoteService
	comments  ports.CommentService
	identity  IdentityResolver
}

func NewQuestionHandler(questions ports.QuestionService, votes ports.VoteService, comments ports.CommentService, identity IdentityResolver) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		votes:     votes,
		comments:  comments,
		identity:  identity,
	}
}

func (h *QuestionHandler) Current(w http.ResponseWriter, r *http.Request) {
	sample, _ := strconv.Atoi(r.URL.Query().Get("comments"))

	question, err := h.questions.Current(r.Context(), sample)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, question)
}

func (h *QuestionHandler) History(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	category := domain.Category(r.URL.Query().Get("category"))

	history, err := h.questions.History(r.Context(), ports.HistoryInput{
		Page:     page,
		Limit:    limit,
		Category: category,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, history)
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	question, err := h.questions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, question)
}

func (h *QuestionHandler) Trending(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.Trending(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, questions)
}

type voteRequest struct {
	Choice domain.Choice `json:"choice"`
}

func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Question not found")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question, err := h.votes.Vote(r.Context(), ports.VoteInput{
		QuestionID: questionID,
		Choice:     req.Choice,
		VoterIP:    h.identity.Identity(r),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Vote recorded successfully", question)
}

type commentRequest struct {
	Content   string `json:"content"`
	Anonymous *bool  `json:"isAnonymous"`
}

func (h *QuestionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Question not found")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" || utf8.RuneCountInString(req.Content) > domain.CommentMaxLen {
		respondValidation(w, fieldError{Field: "content", Message: "content must be between 1 and 1000 characters"})
		return
	}

	anonymous := true
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}

	comment, err := h.comments.Add(r.Context(), ports.CommentInput{
		QuestionID: questionID,
		Content:    req.Content,
		Anonymous:  anonymous,
		VoterIP:    h.identity.Identity(r),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, comment)
}
