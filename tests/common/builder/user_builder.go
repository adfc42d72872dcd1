//go:build unit

package builder

import (
	"time"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/usecase"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	Rut          string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Test User",
		Email:        "test@example.com",
		Rut:          "12345678-5",
		PasswordHash: "hashed_password",
		Role:         "customer",
		IsActive:     true,
	}
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRut(rut string) *UserBuilder {
	u.Rut = rut
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	rut, err := user.NewRut(u.Rut)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	account := user.NewUser(u.Name, email, rut, u.PasswordHash, role, time.Now())
	if !u.IsActive {
		account = user.ReconstructUser(
			account.ID(), u.Name, email, rut, u.PasswordHash, role,
			0, email.IsDuoc(), false, time.Now(),
		)
	}
	return account, nil
}

func (u *UserBuilder) BuildView() *usecase.AuthorizedUserView {
	return &usecase.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     u.Name,
		Email:    u.Email,
		Rut:      u.Rut,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
