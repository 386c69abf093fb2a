package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CredentialRepository implements persistence.CredentialRepository using GORM
type CredentialRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCredentialRepository creates a new CredentialRepository instance
func NewCredentialRepository(db *gorm.DB, logger coreport.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create persists a new credential
func (r *CredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialModel := model.Credential{
		Username:       credential.Username,
		HashedPassword: credential.HashedPassword,
	}

	result := r.db.WithContext(ctx).Create(&credentialModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate username on register", map[string]any{
				"username": credential.Username,
			})
			return errs.ErrUsernameTaken
		}
		r.logger.Error("Failed to create credential", map[string]any{
			"username": credential.Username,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	credential.ID = credentialModel.ID
	return nil
}

// GetByUsername retrieves a credential by username
func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credentialModel model.Credential
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&credentialModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		r.logger.Error("Database error when getting credential", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Credential{
		ID:             credentialModel.ID,
		Username:       credentialModel.Username,
		HashedPassword: credentialModel.HashedPassword,
	}, nil
}
