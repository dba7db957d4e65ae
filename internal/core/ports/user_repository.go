package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts. The
// repository is the sole mutator of the account collection and enforces
// email uniqueness at creation time.
type UserRepository interface {
	// Create stores the user and returns the stored record. Fails with
	// domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
