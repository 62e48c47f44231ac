package v1

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/go-todo-api/internal/apperr"
	"github.com/avdeyev/go-todo-api/internal/auth"
)

const (
	userIDCtxKey    = "user_id"
	userEmailCtxKey = "user_email"
)

// HandleAuthMiddleware is the sole authorization gate: it verifies the
// bearer token and attaches the identity claims to the request context.
// It performs no database lookup; the claims are trusted for their
// lifetime.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		abort(c, apperr.Unauthorized)
		return
	}

	const bearerScheme = "bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		h.logger.Error().Msg("invalid authorization header")
		abort(c, apperr.Unauthorized)
		return
	}

	claims, err := h.tokens.Verify(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to verify access token")
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			abort(c, apperr.ExpiredToken)
		case errors.Is(err, auth.ErrTokenSignatureInvalid):
			abort(c, apperr.InvalidToken)
		default:
			abort(c, apperr.InvalidToken)
		}
		return
	}

	c.Set(userIDCtxKey, claims.Subject)
	c.Set(userEmailCtxKey, claims.Email)
	c.Next()
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}
