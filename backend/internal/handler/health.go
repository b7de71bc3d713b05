package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forumapi/forum-api/shared/logger"
	"github.com/forumapi/forum-api/shared/utils"
)

type healthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Health is the liveness endpoint.
// Returns 200 OK if the server is running.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, healthResponse{
		Message:   "Server is healthy",
		Timestamp: time.Now().UTC(),
	})
}

// Ready is the readiness endpoint.
// Returns 503 Service Unavailable while the database is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		utils.WriteFail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, healthResponse{
		Message:   "Server is ready",
		Timestamp: time.Now().UTC(),
	})
}
