package persistence

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with the append-only
// transaction ledger
type TransactionRepository interface {
	// Create appends a new transaction row
	//
	// Possible errors:
	// - ErrConstraintViolation: if the referenced account does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByAccount returns all transactions of an account in insertion
	// order, oldest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ListByAccount(ctx context.Context, accountID uint64) ([]entity.Transaction, error)
}
