package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/service"
)

// SessionHandler handles anonymous session bootstrap.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleStart handles POST /api/v1/session requests.
func (h *SessionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Start()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
