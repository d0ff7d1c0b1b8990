// errors.go - Structured error handling for API responses
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error constructors for consistent error handling

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewEmptyUploadError creates the 400 error for a zero-byte upload
func NewEmptyUploadError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "EMPTY_UPLOAD",
		Message: "Uploaded file is empty.",
	}
}

// NewConversionFailedError creates the 422 error for a converter failure,
// embedding the converter's own error text
func NewConversionFailedError(cause error) *APIError {
	return &APIError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "CONVERSION_FAILED",
		Message: fmt.Sprintf("Conversion failed: %v", cause),
	}
}

// NewUnexpectedResultError creates the 500 error for a converter result that
// could not be normalized. The offending shape is deliberately not leaked.
func NewUnexpectedResultError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "UNEXPECTED_RESULT",
		Message: "Conversion returned an unexpected format.",
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// ErrorHandler middleware for Echo
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "UNKNOWN_ERROR",
			Message: "An unexpected error occurred",
		}
	}

	if !c.Response().Committed {
		c.JSON(apiErr.Status, apiErr)
	}
}
