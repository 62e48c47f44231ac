package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/go-todo-api/internal/apperr"
	"github.com/avdeyev/go-todo-api/internal/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, apperr.BadRequest.WithDescription(bindingDescription(err)))
		return
	}

	result, err := h.identity.Login(c, services.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, apperr.UserNotFound)
		case errors.Is(err, services.ErrInvalidCredentials):
			abort(c, apperr.InvalidCredentials)
		default:
			abortInternal(c)
		}
		return
	}

	respondOK(c, gin.H{
		"accessToken": result.AccessToken,
		"message":     "Login successful.",
	})
}

type registerRequest struct {
	UserName string `json:"userName" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, apperr.BadRequest.WithDescription(bindingDescription(err)))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("register request")

	err = h.identity.Register(c, services.RegisterParams{
		DisplayName: req.UserName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			abort(c, apperr.UserAlreadyExists)
		default:
			abortInternal(c)
		}
		return
	}

	respondOK(c, gin.H{
		"message": "User registered successfully.",
	})
}

type profileResponse struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

func (h *handlerImpl) HandleFetchProfile(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, apperr.Unauthorized)
		return
	}

	profile, err := h.identity.FetchProfile(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch profile")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, apperr.UserNotFound)
		default:
			abortInternal(c)
		}
		return
	}

	respondOK(c, gin.H{
		"data": profileResponse{
			ID:       profile.ID,
			UserName: profile.DisplayName,
			Email:    profile.Email,
		},
		"message": "User profile fetched successfully.",
	})
}
