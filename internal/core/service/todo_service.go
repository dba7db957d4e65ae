package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoService implements the todo use cases and the ownership policy:
// reads and creation are open to any authenticated account, mutations
// require the actor to own the record. Existence is always resolved
// before ownership, so a foreign caller probing a missing id sees
// not-found rather than forbidden.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

func (s *TodoService) Create(ctx context.Context, ownerID string, input ports.CreateTodoInput) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		OwnerID:     ownerID,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create todo")
		return nil, err
	}

	s.log.Info().Str("todo_id", created.ID).Str("owner_id", ownerID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TodoService) List(ctx context.Context, filter domain.TodoFilter) ([]*domain.Todo, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *TodoService) Update(ctx context.Context, id, actorID string, changes domain.TodoUpdate) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.OwnerID != actorID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", id).Str("actor_id", actorID).Msg("todo updated")
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id, actorID string) error {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if todo.OwnerID != actorID {
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("todo_id", id).Str("actor_id", actorID).Msg("todo deleted")
	return nil
}
