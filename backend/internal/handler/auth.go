package handler

import (
	"net/http"

	"github.com/forumapi/forum-api/shared/api"
	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), domain.UserCreationData{
		Username: body.Username,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.RegisterResponse{
		AddedUser: api.AddedUser{Id: user.Id, Username: user.Username, Fullname: user.Fullname},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.LoginResponse{AccessToken: accessToken})
}
