package repository

import (
	"context"
	"sync"

	"levelup-cart/internal/domain/user"
	"levelup-cart/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
	byRut   map[string]uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
		byRut:   make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user "+id.String())
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email.Value()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user "+email.Value())
	}
	return r.byID[id], nil
}

// Create rejects duplicate emails and RUTs; both identify a person.
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email().Value()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "email "+u.Email().Value())
	}
	if _, exists := r.byRut[u.Rut().Value()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "rut "+u.Rut().Value())
	}

	r.byID[u.ID()] = u
	r.byEmail[u.Email().Value()] = u.ID()
	r.byRut[u.Rut().Value()] = u.ID()
	return nil
}
