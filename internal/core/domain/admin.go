package domain

import (
	"errors"
	"time"
)

var ErrAdminNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidSession = errors.New("invalid session")

// Admin is an operator account. It exists only to authenticate against; it
// is never exposed through CRUD endpoints and the password hash never leaves
// the process.
type Admin struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
