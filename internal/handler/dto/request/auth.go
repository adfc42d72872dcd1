package request

import (
	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/usecase"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Rut      string `json:"rut" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		Name:     r.Name,
		Email:    r.Email,
		Rut:      r.Rut,
		Password: r.Password,
	}
}
