package handler

import (
	"net/http"

	"github.com/forumapi/forum-api/shared/api"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	reply, err := h.reply.Create(r.Context(), payload, chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddReplyResponse{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}

	err := h.reply.Delete(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.Id,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
