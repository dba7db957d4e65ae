package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrTodoNotFound = errors.New("todo not found")
var ErrNotOwner = errors.New("only the creator may modify a todo")

// Todo is an owned to-do record. OwnerID is set at creation and never
// changes; UpdatedAt is bumped on every effective mutation.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoFilter narrows a todo query. Zero-valued fields do not constrain.
// All present predicates are AND-combined.
type TodoFilter struct {
	Title       string // exact match
	Description string // case-insensitive substring match
	Category    string // exact match
	Completed   *bool  // exact match
	OwnerID     string // exact match
}

// Matches reports whether t survives every present predicate.
func (f TodoFilter) Matches(t *Todo) bool {
	if f.Title != "" && t.Title != f.Title {
		return false
	}
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Description)) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.OwnerID != "" && t.OwnerID != f.OwnerID {
		return false
	}
	return true
}

// TodoUpdate is a partial change set. Nil fields are left untouched.
type TodoUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Completed   *bool
}

// IsEmpty reports whether the change set carries no fields at all.
// An empty update is a no-op, not a mutation.
func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil && u.Completed == nil
}
