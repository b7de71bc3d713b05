package api

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AddedUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

type RegisterResponse struct {
	AddedUser AddedUser `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
