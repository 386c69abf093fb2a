package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status and writes the
// standard error payload
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsConflictError(err),
		domainerr.IsInsufficientFundsError(err),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidTransactionKind),
		errors.Is(err, domainerr.ErrInvalidRequest):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for malformed request payloads
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
