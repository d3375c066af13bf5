package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worldquestion/api/internal/core/domain"
	"github.com/worldquestion/api/internal/core/ports"
)

type ProposalHandler struct {
	service  ports.ProposalService
	identity IdentityResolver
}

func NewProposalHandler(service ports.ProposalService, identity IdentityResolver) *ProposalHandler {
	return &ProposalHandler{
		service:  service,
		identity: identity,
	}
}

func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	proposals, err := h.service.ListActive(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, proposals)
}

func (h *ProposalHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	proposals, err := h.service.Top(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, proposals)
}

func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	proposal, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusOK, proposal)
}

type submitProposalRequest struct {
	Text        string   `json:"text"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	SubmittedBy string   `json:"submittedBy"`
}

func (h *ProposalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposal, err := h.service.Submit(r.Context(), ports.SubmitProposalInput{
		Text:        req.Text,
		Category:    domain.Category(req.Category),
		Tags:        req.Tags,
		SubmittedBy: req.SubmittedBy,
		SubmitterIP: h.identity.Identity(r),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusCreated, "Question proposed successfully", proposal)
}

func (h *ProposalHandler) Vote(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Vote(r.Context(), chi.URLParam(r, "id"), h.identity.Identity(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Vote recorded successfully", result)
}
