// Package apperrors defines the HTTP-facing error taxonomy. "No results" is
// never an error anywhere in this service; only provider and storage
// failures travel as errors, and they are converted to one of these at the
// handler boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error carries an HTTP status code alongside a user-safe message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap attaches an underlying cause to a template error without mutating it.
func Wrap(template *Error, err error) *Error {
	return &Error{Code: template.Code, Message: template.Message, Err: err}
}

var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrConflict       = New(http.StatusConflict, "Conflict", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)

	// ErrQueryFailure covers provider-level failures: the query boundary
	// converts them to a retryable error state instead of leaving the
	// caller loading forever.
	ErrQueryFailure = New(http.StatusServiceUnavailable, "Failed to load products. Please try again later.", nil)

	ErrProductNotFound = New(http.StatusNotFound, "Product not found", nil)
	ErrVariantNotFound = New(http.StatusBadRequest, "Unknown product variant", nil)
	ErrOutOfStock      = New(http.StatusConflict, "This item is out of stock", nil)
	ErrCartUnavailable = New(http.StatusServiceUnavailable, "Cart is temporarily unavailable", nil)
)

// Respond writes err as a JSON error response. Non-taxonomy errors become an
// internal server error; the cause is never exposed to the client.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Wrap(ErrInternalServer, err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
