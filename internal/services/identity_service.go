package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/auth"
	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/storage"
)

type identityServiceImpl struct {
	logger zerolog.Logger
	users  storage.UserStore
	tokens auth.TokenIssuer
}

func NewIdentityService(
	logger zerolog.Logger,
	users storage.UserStore,
	tokens auth.TokenIssuer,
) IdentityService {
	return &identityServiceImpl{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

func (s *identityServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	email := normalizeEmail(params.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("email", email).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("email", email).
			Msg("failed to select user by email")
		return nil, err
	}

	if !auth.VerifyPassword(params.Password, user.PasswordHash) {
		s.logger.Error().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to issue access token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("logged in")
	return &LoginResult{AccessToken: accessToken}, nil
}

func (s *identityServiceImpl) Register(ctx context.Context, params RegisterParams) error {
	email := normalizeEmail(params.Email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Error().
			Str("email", email).
			Msg("user with this email already exists")
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().
			Err(err).
			Str("email", email).
			Msg("failed to select user by email")
		return err
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return err
	}

	userUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate user uuid")
		return err
	}

	now := time.Now()
	user := &models.User{
		ID:           userUUID.String(),
		DisplayName:  params.DisplayName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.users.Create(ctx, user)
	if err != nil {
		// A concurrent registration may win the race between the
		// uniqueness check and the insert.
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Error().
				Str("email", email).
				Msg("user with this email already exists")
			return ErrUserAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("registered user")
	return nil
}

func (s *identityServiceImpl) FetchProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("user_id", userID).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select user by id")
		return nil, err
	}

	return &Profile{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
