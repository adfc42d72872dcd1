package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Points accumulate through purchases and are
// spent on reward redemptions at checkout; the cart only records the debit.
type User struct {
	id              uuid.UUID
	name            string
	email           Email
	rut             Rut
	passwordHash    string
	role            Role
	points          int
	hasDuocDiscount bool
	isActive        bool
	createdAt       time.Time
}

func NewUser(name string, email Email, rut Rut, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:              uuid.New(),
		name:            name,
		email:           email,
		rut:             rut,
		passwordHash:    passwordHash,
		role:            role,
		points:          0,
		hasDuocDiscount: email.IsDuoc(),
		isActive:        true,
		createdAt:       now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	rut Rut,
	passwordHash string,
	role Role,
	points int,
	hasDuocDiscount bool,
	isActive bool,
	createdAt time.Time,
) *User {
	return &User{
		id:              id,
		name:            name,
		email:           email,
		rut:             rut,
		passwordHash:    passwordHash,
		role:            role,
		points:          points,
		hasDuocDiscount: hasDuocDiscount,
		isActive:        isActive,
		createdAt:       createdAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Rut() Rut              { return u.rut }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Points() int           { return u.points }
func (u *User) HasDuocDiscount() bool { return u.hasDuocDiscount }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
