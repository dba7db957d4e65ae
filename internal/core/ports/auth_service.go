package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login collapses unknown-email and wrong-password into a single
	// domain.ErrInvalidCredentials to avoid account enumeration.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
