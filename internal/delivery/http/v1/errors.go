package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/avdeyev/go-todo-api/internal/apperr"
)

// abort writes the error envelope and stops the handler chain.
func abort(c *gin.Context, err apperr.Error) {
	c.AbortWithStatusJSON(err.Status, gin.H{
		"error":          err,
		"message":        err.Message,
		"responseStatus": err.Status,
	})
}

// abortInternal hides the true cause behind a generic message; the cause
// stays in server-side logs only.
func abortInternal(c *gin.Context) {
	err := apperr.Internal
	c.AbortWithStatusJSON(err.Status, gin.H{
		"error":          gin.H{"description": err.Message},
		"message":        "Something went wrong",
		"responseStatus": err.Status,
	})
}

// respondOK writes the success envelope. responseStatus is always 200 on
// the success path, whatever the semantic outcome in message.
func respondOK(c *gin.Context, body gin.H) {
	body["responseStatus"] = http.StatusOK
	c.JSON(http.StatusOK, body)
}

// bindingDescription joins the messages of all violated binding rules.
func bindingDescription(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid request body."
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() + "." + fieldErr.Tag() {
	case "Email.required":
		return "Email is required"
	case "Email.email":
		return "Invalid email address"
	case "Password.required":
		return "Password is required"
	case "UserName.required":
		return "userName is required"
	case "Title.required":
		return "Title is required"
	case "DueDate.required":
		return "Due date is required"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
