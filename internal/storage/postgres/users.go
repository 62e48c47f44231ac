package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/storage"
)

type UserStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewUserStore(logger zerolog.Logger, pgPool *pgxpool.Pool) *UserStore {
	return &UserStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (id,
                   display_name,
                   email,
                   password_hash,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertUserQuery,
		user.ID,
		user.DisplayName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return storage.ErrDuplicate
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Msg("inserted user")

	return nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)

	const selectUserByEmailQuery = `
SELECT id,
       display_name,
       email,
       password_hash,
       created_at,
       updated_at
FROM users
WHERE LOWER(email) = LOWER($1)
`
	err := s.pgPool.QueryRow(
		ctx,
		selectUserByEmailQuery,
		email,
	).Scan(
		&user.ID,
		&user.DisplayName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Msg("failed to select user by email")
		return nil, err
	}

	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := new(models.User)

	const selectUserByIDQuery = `
SELECT id,
       display_name,
       email,
       password_hash,
       created_at,
       updated_at
FROM users
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectUserByIDQuery,
		id,
	).Scan(
		&user.ID,
		&user.DisplayName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", id).
			Msg("failed to select user by id")
		return nil, err
	}

	return user, nil
}
