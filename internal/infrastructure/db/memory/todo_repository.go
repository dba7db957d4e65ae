package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoRepository holds todo records in insertion order with an index by
// id. Filtering is a full scan over the ordered slice; the dataset is
// bounded and non-persistent, so no secondary indexes are kept.
type TodoRepository struct {
	mu    sync.RWMutex
	todos []*domain.Todo
	byID  map[string]*domain.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{byID: make(map[string]*domain.Todo)}
}

func (r *TodoRepository) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := *todo
	stored.ID = uuid.NewString()
	stored.Completed = false
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.todos = append(r.todos, &stored)
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *TodoRepository) FindByID(_ context.Context, id string) (*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	out := *todo
	return &out, nil
}

// FindAll returns a snapshot of the todos surviving filter, preserving
// insertion order. Repeated calls with the same filter return the same
// result absent interleaved mutation.
func (r *TodoRepository) FindAll(_ context.Context, filter domain.TodoFilter) ([]*domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		if filter.Matches(todo) {
			out := *todo
			result = append(result, &out)
		}
	}
	return result, nil
}

func (r *TodoRepository) Update(_ context.Context, id string, changes domain.TodoUpdate) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}

	// An empty change set is a no-op: the record is returned as-is and
	// UpdatedAt is not bumped.
	if changes.IsEmpty() {
		out := *todo
		return &out, nil
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.Category != nil {
		todo.Category = *changes.Category
	}
	if changes.Completed != nil {
		todo.Completed = *changes.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	out := *todo
	return &out, nil
}

func (r *TodoRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrTodoNotFound
	}

	delete(r.byID, id)
	for i, todo := range r.todos {
		if todo.ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			break
		}
	}
	return nil
}
