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
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// accountModelToEntity converts an account model to a domain entity
func accountModelToEntity(m *model.Account) *entity.Account {
	acc := entity.RestoreAccount(m.ID, m.Number, m.BranchCode, m.CustomerID, m.Balance)
	acc.CreatedAt = m.CreatedAt
	acc.UpdatedAt = m.UpdatedAt
	return acc
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		Number:     account.Number,
		BranchCode: account.BranchCode,
		Balance:    account.Balance(),
		CustomerID: account.CustomerID,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate account number on create", map[string]any{
				"numero": account.Number,
			})
			return errs.ErrDuplicateAccountNumber
		}
		r.logger.Error("Failed to create account", map[string]any{
			"numero": account.Number,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	account.ID = accountModel.ID
	return nil
}

// GetByNumber retrieves an account by number, resolving the holder name
// through the owning customer
func (r *AccountRepository) GetByNumber(ctx context.Context, number int64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Preload("Customer").
		Where("number = ?", number).
		First(&accountModel)
	if result.Error != nil {
		return nil, r.translateLookupError(result.Error, number)
	}

	account := accountModelToEntity(&accountModel)
	account.HolderName = accountModel.Customer.Name
	return account, nil
}

// GetByNumberForUpdate retrieves an account by number holding a row-level
// lock until the surrounding transaction ends
func (r *AccountRepository) GetByNumberForUpdate(ctx context.Context, number int64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&accountModel)
	if result.Error != nil {
		if r.errorClassifier.IsLockError(result.Error) {
			r.logger.Warn("Lock contention on account row", map[string]any{
				"numero": number,
				"error":  result.Error.Error(),
			})
		}
		return nil, r.translateLookupError(result.Error, number)
	}

	return accountModelToEntity(&accountModel), nil
}

// UpdateBalance writes the account's balance back to storage
func (r *AccountRepository) UpdateBalance(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance":    account.Balance(),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Failed to update account balance", map[string]any{
			"numero": account.Number,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}

// List returns all accounts in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).Preload("Customer").Order("id").Find(&accountModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing accounts", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]entity.Account, 0, len(accountModels))
	for i := range accountModels {
		account := accountModelToEntity(&accountModels[i])
		account.HolderName = accountModels[i].Customer.Name
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

// translateLookupError converts raw lookup errors into domain errors
func (r *AccountRepository) translateLookupError(err error, number int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}
	r.logger.Error("Database error when getting account", map[string]any{
		"numero": number,
		"error":  err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
