package handler

import (
	"context"
	"net/http"

	"github.com/forumapi/forum-api/backend/internal/service"
	"github.com/forumapi/forum-api/shared/config"
	"github.com/forumapi/forum-api/shared/domain"
	mw "github.com/forumapi/forum-api/shared/middleware"
	"github.com/forumapi/forum-api/shared/utils"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.CommentLikeService
	cfg     *config.Config
	health  HealthChecker
}

func New(
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	like service.CommentLikeService,
	cfg *config.Config,
	health HealthChecker,
) *Handler {
	return &Handler{
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		like:    like,
		cfg:     cfg,
		health:  health,
	}
}

// actingUser returns the authenticated user or writes 401.
func actingUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return nil, false
	}
	return user, true
}

// decodePayload reads the body as a raw payload. Text is passed through
// as submitted; escaping is up to whoever renders it. It writes 400 itself
// on malformed JSON.
func decodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, bool) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return nil, false
	}
	return payload, true
}
