package persistence

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

// CustomerRepository defines the methods to interact with customer data
type CustomerRepository interface {
	// Create persists a new customer
	//
	// Possible errors:
	// - ErrDuplicateTaxID: if a customer with the same cpf already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, customer *entity.Customer) error

	// GetByTaxID retrieves a customer by cpf
	//
	// Possible errors:
	// - ErrCustomerNotFound: if no customer has this cpf
	// - ErrDatabaseConnection: if the database is unreachable
	GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)

	// GetByID retrieves a customer by primary key, with its accounts attached
	//
	// Possible errors:
	// - ErrCustomerNotFound: if no customer has this id
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Customer, error)

	// List returns all customers
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	List(ctx context.Context) ([]entity.Customer, error)
}
