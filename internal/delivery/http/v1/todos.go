package v1

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeyev/go-todo-api/internal/apperr"
	"github.com/avdeyev/go-todo-api/internal/models"
	"github.com/avdeyev/go-todo-api/internal/services"
)

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTodoResponse(todo *models.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

type createTodoRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description *string   `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
}

func (h *handlerImpl) HandleCreateTodo(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, apperr.Unauthorized)
		return
	}

	var req createTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, apperr.BadRequest.WithDescription(bindingDescription(err)))
		return
	}

	params := services.CreateTodoParams{
		OwnerID: userID,
		Title:   req.Title,
		DueDate: req.DueDate,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	err = h.todos.Create(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create todo")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, apperr.UserNotFound)
		default:
			abortInternal(c)
		}
		return
	}

	respondOK(c, gin.H{
		"message": "Todo created successfully.",
	})
}

func (h *handlerImpl) HandleGetTodos(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, apperr.Unauthorized)
		return
	}

	todos, err := h.todos.ListAll(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list todos")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, apperr.UserNotFound)
		default:
			abortInternal(c)
		}
		return
	}

	response := make([]todoResponse, len(todos))
	for i := range todos {
		response[i] = newTodoResponse(&todos[i])
	}

	respondOK(c, gin.H{
		"data":    response,
		"message": "Get all todo successfully.",
	})
}

type editTodoRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleEditTodo(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, apperr.Unauthorized)
		return
	}

	todoID, ok := todoIDFromPath(c)
	if !ok {
		h.logger.Error().Msg("invalid todo id")
		abort(c, apperr.BadRequest.WithDescription("Invalid todoId"))
		return
	}

	var req editTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, apperr.BadRequest.WithDescription(bindingDescription(err)))
		return
	}

	err = h.todos.Edit(c, services.EditTodoParams{
		OwnerID:     userID,
		TodoID:      todoID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to edit todo")
		abortTodoError(c, err)
		return
	}

	respondOK(c, gin.H{
		"message": "Todo edited successfully.",
	})
}

func (h *handlerImpl) HandleDeleteTodo(c *gin.Context) {
	userID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, apperr.Unauthorized)
		return
	}

	todoID, ok := todoIDFromPath(c)
	if !ok {
		h.logger.Error().Msg("invalid todo id")
		abort(c, apperr.BadRequest.WithDescription("Invalid todoId"))
		return
	}

	err := h.todos.Delete(c, userID, todoID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete todo")
		abortTodoError(c, err)
		return
	}

	respondOK(c, gin.H{
		"message": "Todo deleted successfully.",
	})
}

func todoIDFromPath(c *gin.Context) (string, bool) {
	todoID := c.Param("todoId")
	if _, err := uuid.Parse(todoID); err != nil {
		return "", false
	}
	return todoID, true
}

func abortTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		abort(c, apperr.UserNotFound)
	case errors.Is(err, services.ErrTodoNotFound):
		abort(c, apperr.TodoNotFound)
	case errors.Is(err, services.ErrTodoAccessDenied):
		abort(c, apperr.Unauthorized)
	default:
		abortInternal(c)
	}
}
