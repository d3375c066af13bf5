package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/worldquestion/api/internal/core/ports"
)

type RotationHandler struct {
	service    ports.RotationService
	adminToken string
}

// NewRotationHandler guards the rotation endpoint with a bearer token when
// one is configured; an empty token leaves the endpoint open (dev setups).
func NewRotationHandler(service ports.RotationService, adminToken string) *RotationHandler {
	return &RotationHandler{
		service:    service,
		adminToken: adminToken,
	}
}

func (h *RotationHandler) RotateWeekly(w http.ResponseWriter, r *http.Request) {
	if h.adminToken != "" {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
	}

	result, err := h.service.RotateWeekly(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Weekly rotation completed successfully", result)
}
