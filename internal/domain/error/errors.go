package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds       = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidTransactionKind  = 4003
	CodeDuplicateTaxID          = 4004
	CodeDuplicateAccountNumber  = 4005
	CodeUsernameTaken           = 4006
	CodeConstraintViolation     = 4007
	CodeCustomerNotFound        = 4040
	CodeAccountNotFound         = 4041
	CodeInvalidCredentials      = 4010
	CodeTokenExpired            = 4011
	CodeTokenInvalid            = 4012

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance
	ErrInsufficientFunds = errors.New("saldo insuficiente")

	// ErrInvalidAmount is returned when the transaction amount is not a positive value
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransactionKind is returned when the transaction kind is not deposito or saque
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrCustomerNotFound is returned when the requested customer doesn't exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTaxID is returned when a customer with the same cpf already exists
	ErrDuplicateTaxID = errors.New("customer with this cpf already exists")

	// ErrDuplicateAccountNumber is returned when an account with the same number already exists
	ErrDuplicateAccountNumber = errors.New("account with this number already exists")

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login failure, without revealing whether
	// the username or the password was wrong
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned when a bearer token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for any other token verification failure
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidTransactionKind):
		return CodeInvalidTransactionKind
	case errors.Is(err, ErrDuplicateTaxID):
		return CodeDuplicateTaxID
	case errors.Is(err, ErrDuplicateAccountNumber):
		return CodeDuplicateAccountNumber
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrCustomerNotFound):
		return CodeCustomerNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrTokenInvalid):
		return CodeTokenInvalid
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for rejected withdrawals
type InsufficientFundsError struct {
	AccountNumber int64
	Amount        string
	Balance       string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %d: requested %s, available %s",
		e.AccountNumber, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "insufficient_funds",
		"account_number": e.AccountNumber,
		"amount":         e.Amount,
		"balance":        e.Balance,
		"error_code":     CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountNumber int64, amount, balance string) error {
	return &InsufficientFundsError{
		AccountNumber: accountNumber,
		Amount:        amount,
		Balance:       balance,
	}
}

// TransactionError represents an error raised while applying a transaction
type TransactionError struct {
	AccountNumber int64
	Kind          string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed on account %d (%s %s): %s - %v",
		e.AccountNumber, e.Kind, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"account_number": e.AccountNumber,
		"kind":           e.Kind,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(accountNumber int64, kind, amount, reason string, err error) error {
	return &TransactionError{
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateTaxID) ||
		errors.Is(err, ErrDuplicateAccountNumber) ||
		errors.Is(err, ErrUsernameTaken)
}

// IsAuthError checks if the error is a token verification failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenInvalid)
}
