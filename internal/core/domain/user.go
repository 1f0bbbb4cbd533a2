package domain

import (
	"errors"
	"net/mail"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already exists")
var ErrMissingFields = errors.New("name and email are required")
var ErrInvalidEmail = errors.New("email is not a valid address")

// User is a customer record managed through the admin panel.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidEmail reports whether s parses as a plain RFC 5322 address.
func ValidEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
