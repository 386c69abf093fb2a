package persistence

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

// CredentialRepository defines the methods to interact with stored credentials
type CredentialRepository interface {
	// Create persists a new credential
	//
	// Possible errors:
	// - ErrUsernameTaken: if the username already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, credential *entity.Credential) error

	// GetByUsername retrieves a credential by username
	//
	// Possible errors:
	// - ErrNotFound: if no credential has this username
	// - ErrDatabaseConnection: if the database is unreachable
	GetByUsername(ctx context.Context, username string) (*entity.Credential, error)
}
