package persistence

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

// AccountRepository defines the methods to interact with account data
type AccountRepository interface {
	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateAccountNumber: if an account with the same number already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, account *entity.Account) error

	// GetByNumber retrieves an account by its number, with the holder name
	// resolved through an explicit join
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account has this number
	// - ErrDatabaseConnection: if the database is unreachable
	GetByNumber(ctx context.Context, number int64) (*entity.Account, error)

	// GetByNumberForUpdate retrieves an account by number while holding a
	// row-level lock, so concurrent balance updates serialize. Only valid
	// inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account has this number
	// - ErrDatabaseConnection: if the database is unreachable
	GetByNumberForUpdate(ctx context.Context, number int64) (*entity.Account, error)

	// UpdateBalance writes the account's current balance back to storage
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account no longer exists
	// - ErrDatabaseConnection: if the database is unreachable
	UpdateBalance(ctx context.Context, account *entity.Account) error

	// List returns all accounts
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	List(ctx context.Context) ([]entity.Account, error)
}
