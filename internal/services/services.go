package services

import (
	"context"
	"errors"
	"time"

	"github.com/avdeyev/go-todo-api/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrTodoAccessDenied   = errors.New("todo belongs to another user")
)

type IdentityService interface {
	// Login authenticates the user by email and password and issues
	// a signed access token.
	//
	// It returns ErrUserNotFound if no user with the given email exists
	// or ErrInvalidCredentials if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Register creates a user with a hashed password. It does not log
	// the user in.
	//
	// It returns ErrUserAlreadyExists if a user with the given email
	// already exists, matched case-insensitively.
	Register(ctx context.Context, params RegisterParams) error

	// FetchProfile returns the user's profile without the password hash
	// and audit timestamps, or ErrUserNotFound if the id no longer
	// resolves to a stored user.
	FetchProfile(ctx context.Context, userID string) (*Profile, error)
}

type TodoService interface {
	// Create persists a new incomplete todo owned by the user.
	Create(ctx context.Context, params CreateTodoParams) error

	// ListAll returns the user's non-deleted todos ordered by due date
	// ascending, soonest first.
	ListAll(ctx context.Context, userID string) ([]models.Todo, error)

	// Edit applies a partial update: only non-nil fields are written,
	// absent fields are left untouched. Completed may be explicitly set
	// to false.
	//
	// It returns ErrTodoNotFound if no non-deleted todo with that id
	// exists or ErrTodoAccessDenied if it is owned by another user.
	Edit(ctx context.Context, params EditTodoParams) error

	// Delete soft-deletes the todo. Deleted records are excluded from
	// lookup, so deleting the same id again returns ErrTodoNotFound.
	Delete(ctx context.Context, userID, todoID string) error
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
}

type RegisterParams struct {
	DisplayName string
	Email       string
	Password    string
}

type Profile struct {
	ID          string
	DisplayName string
	Email       string
}

type CreateTodoParams struct {
	OwnerID     string
	Title       string
	Description string
	DueDate     time.Time
}

type EditTodoParams struct {
	OwnerID     string
	TodoID      string
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}
