package user

import (
	"regexp"
	"strings"

	"walkies/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.New("invalid email address")
	ErrInvalidPassword = errs.New("password must be at least 8 characters")
	ErrInvalidName     = errs.New("name must not be empty")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

const minPasswordLength = 8

func NewPassword(value string) (Password, error) {
	if len(value) < minPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: value}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrInvalidName
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }
