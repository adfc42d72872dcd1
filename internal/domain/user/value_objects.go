package user

import (
	"errors"
	"regexp"
	"strings"

	"levelup-cart/internal/pkg/rut"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidRut      = errors.New("invalid RUT")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// IsDuoc reports whether the address belongs to the Duoc UC domain, which
// grants the institutional discount flag at registration.
func (e Email) IsDuoc() bool {
	lower := strings.ToLower(e.value)
	return strings.HasSuffix(lower, "@duocuc.cl") || strings.HasSuffix(lower, "@duoc.cl")
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Rut is a validated Chilean RUT held in canonical "body-DV" form.
type Rut struct {
	value string
}

func NewRut(s string) (Rut, error) {
	normalized, err := rut.Normalize(s)
	if err != nil {
		return Rut{}, ErrInvalidRut
	}
	return Rut{value: normalized}, nil
}

func (r Rut) Value() string {
	return r.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
