// Package memory provides the volatile, single-process stores backing the
// service. Each repository owns its collection exclusively and guards it
// with a mutex, so every exported call is atomic with respect to every
// other call. Nothing here touches disk or network.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// UserRepository holds account records in insertion order with an index
// by id and by email for point lookups. Email uniqueness is enforced at
// creation time; accounts have no update path.
type UserRepository struct {
	mu      sync.RWMutex
	users   []*domain.User
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}

	stored := *user
	stored.ID = uuid.NewString()

	r.users = append(r.users, &stored)
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
