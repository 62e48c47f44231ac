package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/avdeyev/go-todo-api/internal/auth"
	"github.com/avdeyev/go-todo-api/internal/services"
)

type Handler interface {
	HandleAuthMiddleware(c *gin.Context)

	HandleLogin(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleFetchProfile(c *gin.Context)

	HandleCreateTodo(c *gin.Context)
	HandleGetTodos(c *gin.Context)
	HandleEditTodo(c *gin.Context)
	HandleDeleteTodo(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	identity services.IdentityService
	todos    services.TodoService
	tokens   auth.TokenIssuer
}

func New(
	logger zerolog.Logger,
	identityService services.IdentityService,
	todoService services.TodoService,
	tokens auth.TokenIssuer,
) Handler {
	return &handlerImpl{
		logger:   logger,
		identity: identityService,
		todos:    todoService,
		tokens:   tokens,
	}
}
