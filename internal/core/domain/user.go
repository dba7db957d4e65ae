package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email is already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. The password hash never leaves the
// process: it is excluded from every serialized form.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
