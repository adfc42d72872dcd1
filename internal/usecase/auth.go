package usecase

import (
	"context"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/infra"
	"levelup-cart/internal/pkg/clock"
	"levelup-cart/internal/pkg/errs"
	"levelup-cart/internal/pkg/jwt"
	"levelup-cart/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrUserInactive        = errs.New("user account is inactive")
	ErrDuplicateUser       = errs.New("email or RUT already registered")
	ErrInvalidRegistration = errs.New("registration validation failed")
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrTokenValidation     = errs.New("token validation failed")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}

// AuthorizedUserView is the account shape exposed to the UI.
type AuthorizedUserView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Rut             string    `json:"rut"`
	Role            string    `json:"role"`
	Points          int       `json:"points"`
	HasDuocDiscount bool      `json:"hasDuocDiscount"`
	IsActive        bool      `json:"isActive"`
}

type RegisterParams struct {
	Name     string
	Email    string
	Rut      string
	Password string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *AuthorizedUserView, error)
	Register(ctx context.Context, params RegisterParams) (*AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *AuthorizedUserView, error) {
	account, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return "", nil, ErrUserNotFound
	}
	if !account.IsActive() {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(account.PasswordHash(), credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, viewFromUser(account), nil
}

// Register creates a customer account. RUT and email are validated as value
// objects; duplicates surface as a single sentinel so the handler cannot leak
// which of the two collided.
func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*AuthorizedUserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	rut, err := user.NewRut(params.Rut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	pass, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	if params.Name == "" {
		return nil, ErrInvalidRegistration
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	account := user.NewUser(params.Name, email, rut, hash, user.RoleCustomer, a.clock.Now())
	if err := a.userRepo.Create(ctx, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return viewFromUser(account), nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	account, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !account.IsActive() {
		return nil, ErrUserInactive
	}
	return viewFromUser(account), nil
}

func viewFromUser(u *user.User) *AuthorizedUserView {
	return &AuthorizedUserView{
		ID:              u.ID(),
		Name:            u.Name(),
		Email:           u.Email().Value(),
		Rut:             u.Rut().Value(),
		Role:            u.Role().String(),
		Points:          u.Points(),
		HasDuocDiscount: u.HasDuocDiscount(),
		IsActive:        u.IsActive(),
	}
}
