// Package storage declares the persistence contracts the services depend
// on. Implementations live in subpackages.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/avdeyev/go-todo-api/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type UserStore interface {
	// Create persists a new user. It returns ErrDuplicate if a user
	// with the same email already exists.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail looks a user up by email, case-insensitively.
	// It returns ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error

	// GetByID looks a todo up by id. Soft-deleted records are invisible:
	// it returns ErrNotFound for them just as for ids that never existed.
	GetByID(ctx context.Context, id string) (*models.Todo, error)

	// ListByOwner returns the owner's non-deleted todos ordered by due
	// date ascending, soonest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Todo, error)

	// Update overwrites the mutable fields of a non-deleted todo.
	// It returns ErrNotFound if the record is gone or soft-deleted.
	Update(ctx context.Context, todo *models.Todo) error

	// SoftDelete marks a non-deleted todo as deleted. It returns
	// ErrNotFound if the record is gone or already deleted, so a repeated
	// delete surfaces as not-found rather than silent success.
	SoftDelete(ctx context.Context, id string) error

	// CompleteOverdue marks every todo with a due date before now,
	// not yet completed and not deleted, as completed in a single bulk
	// statement. It returns the number of affected records.
	CompleteOverdue(ctx context.Context, now time.Time) (int64, error)
}
