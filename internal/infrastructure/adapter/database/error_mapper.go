package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for error mapping
type EntityType string

const (
	// EntityTypeCustomer represents the customer entity
	EntityTypeCustomer EntityType = "customer"
	// EntityTypeAccount represents the account entity
	EntityTypeAccount EntityType = "account"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
	// EntityTypeCredential represents the credential entity
	EntityTypeCredential EntityType = "credential"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFoundError(entityType)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return m.duplicateError(entityType)

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// notFoundError returns the not-found error matching the entity type
func (m *ErrorMapper) notFoundError(entityType EntityType) error {
	switch entityType {
	case EntityTypeCustomer:
		return domainErr.ErrCustomerNotFound
	case EntityTypeAccount:
		return domainErr.ErrAccountNotFound
	case EntityTypeTransaction:
		return domainErr.ErrTransactionNotFound
	default:
		return domainErr.ErrNotFound
	}
}

// duplicateError returns the conflict error matching the entity type
func (m *ErrorMapper) duplicateError(entityType EntityType) error {
	switch entityType {
	case EntityTypeCustomer:
		return domainErr.ErrDuplicateTaxID
	case EntityTypeAccount:
		return domainErr.ErrDuplicateAccountNumber
	case EntityTypeCredential:
		return domainErr.ErrUsernameTaken
	default:
		return domainErr.ErrConstraintViolation
	}
}
