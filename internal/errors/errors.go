package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTodoNotFound is returned when no todo matches the caller's owner
	// id and the requested todo id. Deliberately the same error whether the
	// todo does not exist or belongs to someone else.
	ErrTodoNotFound = errors.New("todo not found")
)

// ErrorResponse represents a standardized error response. The "Error" key is
// capitalized on the wire; existing clients match on it.
type ErrorResponse struct {
	Error string `json:"Error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps store-level errors to HTTP errors. Anything outside
// the closed taxonomy is reported as a generic store failure; raw driver
// messages never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTodoNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TODO_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusConflict, "store operation failed", "STORE_ERROR")
	}
}
