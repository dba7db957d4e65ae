package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// CreateTodoInput carries the caller-supplied fields for a new todo.
// Field presence is validated at the transport layer.
type CreateTodoInput struct {
	Title       string
	Description string
	Category    string
}

// TodoService defines the use-case operations for todos. Create, Get and
// List are open to any authenticated account; Update and Delete resolve
// existence first, then require the actor to be the owner.
type TodoService interface {
	Create(ctx context.Context, ownerID string, input CreateTodoInput) (*domain.Todo, error)
	Get(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context, filter domain.TodoFilter) ([]*domain.Todo, error)
	Update(ctx context.Context, id, actorID string, changes domain.TodoUpdate) (*domain.Todo, error)
	Delete(ctx context.Context, id, actorID string) error
}
