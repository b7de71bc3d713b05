package handler

import (
	"net/http"

	"github.com/forumapi/forum-api/shared/api"
	"github.com/forumapi/forum-api/shared/middleware/metrics"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	comment, err := h.comment.Create(r.Context(), payload, chi.URLParam(r, "threadId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddCommentResponse{AddedComment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}

	err := h.comment.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

// ToggleCommentLike likes the comment, or unlikes it when already liked.
// The response is identical either way.
func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}

	liked, err := h.like.Toggle(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordLikeToggle(liked)

	utils.WriteSuccess(w, http.StatusOK, nil)
}
