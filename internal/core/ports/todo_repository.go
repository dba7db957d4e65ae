package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoRepository defines persistence operations for todos. The repository
// is the sole mutator of the todo collection; every call is atomic with
// respect to every other call.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// FindByID fails with domain.ErrTodoNotFound when the id is absent.
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// FindAll returns the todos surviving filter, in insertion order.
	// The result is an independent snapshot; later mutations do not
	// affect it.
	FindAll(ctx context.Context, filter domain.TodoFilter) ([]*domain.Todo, error)
	// Update merges the provided fields into the record and bumps
	// UpdatedAt. An empty change set returns the record unchanged
	// without bumping UpdatedAt.
	Update(ctx context.Context, id string, changes domain.TodoUpdate) (*domain.Todo, error)
	// Delete removes the record physically.
	Delete(ctx context.Context, id string) error
}
