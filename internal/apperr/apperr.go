// Package apperr defines the API error taxonomy. Every failure a client can
// observe is one of these values: an HTTP status, a stable numeric code and
// a user-facing message.
package apperr

import "net/http"

type Error struct {
	Status      int    `json:"status"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"errorDescription,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

// WithDescription returns a copy carrying extra detail, e.g.
// the joined list of violated validation rules.
func (e Error) WithDescription(description string) Error {
	e.Description = description
	return e
}

// WithMessage returns a copy with a more specific user-facing message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

var (
	Internal = Error{
		Status:  http.StatusInternalServerError,
		Code:    1000,
		Message: "Internal server error.",
	}
	Unauthorized = Error{
		Status:  http.StatusUnauthorized,
		Code:    1100,
		Message: "Unauthorized.",
	}
	BadRequest = Error{
		Status:  http.StatusBadRequest,
		Code:    1200,
		Message: "Bad request.",
	}
	InvalidCredentials = Error{
		Status:  http.StatusUnauthorized,
		Code:    1202,
		Message: "Invalid credentials.",
	}
	UserAlreadyExists = Error{
		Status:  http.StatusConflict,
		Code:    1302,
		Message: "User with the same email already exists.",
	}
	UserNotFound = Error{
		Status:  http.StatusNotFound,
		Code:    1401,
		Message: "User not found.",
	}
	TodoNotFound = Error{
		Status:  http.StatusNotFound,
		Code:    1402,
		Message: "Todo not found.",
	}
	ExpiredToken = Error{
		Status:  http.StatusUnauthorized,
		Code:    1501,
		Message: "This token has been expired.",
	}
	InvalidToken = Error{
		Status:  http.StatusUnauthorized,
		Code:    1502,
		Message: "Invalid token format. Please provide a valid JWT.",
	}
)
