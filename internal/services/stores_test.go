package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/storage"
)

// In-memory store fakes backing the service tests. They honor the same
// contracts as the postgres implementations: case-insensitive email
// uniqueness, soft-deleted records invisible to every lookup, due-date
// ascending listing.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return storage.ErrDuplicate
		}
	}

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			found := *user
			return &found, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	found := *user
	return &found, nil
}

func (s *memUserStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type memTodoStore struct {
	mu    sync.Mutex
	todos map[string]*models.Todo

	completeOverdueErr error
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: make(map[string]*models.Todo)}
}

func (s *memTodoStore) Create(_ context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *todo
	s.todos[todo.ID] = &stored
	return nil
}

func (s *memTodoStore) GetByID(_ context.Context, id string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.IsDeleted {
		return nil, storage.ErrNotFound
	}
	found := *todo
	return &found, nil
}

func (s *memTodoStore) ListByOwner(_ context.Context, ownerID string) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]models.Todo, 0)
	for _, todo := range s.todos {
		if todo.OwnerID == ownerID && !todo.IsDeleted {
			todos = append(todos, *todo)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].DueDate.Before(todos[j].DueDate)
	})
	return todos, nil
}

func (s *memTodoStore) Update(_ context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[todo.ID]
	if !ok || existing.IsDeleted {
		return storage.ErrNotFound
	}
	stored := *todo
	s.todos[todo.ID] = &stored
	return nil
}

func (s *memTodoStore) SoftDelete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok || todo.IsDeleted {
		return storage.ErrNotFound
	}
	todo.IsDeleted = true
	todo.UpdatedAt = time.Now()
	return nil
}

func (s *memTodoStore) CompleteOverdue(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completeOverdueErr != nil {
		return 0, s.completeOverdueErr
	}

	var affected int64
	for _, todo := range s.todos {
		if todo.DueDate.Before(now) && !todo.Completed && !todo.IsDeleted {
			todo.Completed = true
			todo.UpdatedAt = now
			affected++
		}
	}
	return affected, nil
}

// raw returns the stored record without the soft-delete filter, for
// asserting that a record was left untouched.
func (s *memTodoStore) raw(id string) *models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return nil
	}
	found := *todo
	return &found
}
