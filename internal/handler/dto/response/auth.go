package response

import "levelup-cart/internal/usecase"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *usecase.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	User *usecase.AuthorizedUserView `json:"user"`
}

type CurrentUserResponse struct {
	User *usecase.AuthorizedUserView `json:"user"`
}
