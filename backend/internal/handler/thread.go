package handler

import (
	"net/http"

	"github.com/forumapi/forum-api/shared/api"
	"github.com/forumapi/forum-api/shared/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	thread, err := h.thread.Create(r.Context(), payload, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddThreadResponse{AddedThread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.Get(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user, ok := actingUser(w, r)
	if !ok {
		return
	}

	if err := h.thread.Delete(r.Context(), chi.URLParam(r, "threadId"), user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
