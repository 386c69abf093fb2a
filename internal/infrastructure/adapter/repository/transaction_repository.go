package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a new ledger row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		AccountID:   transaction.AccountID,
		Kind:        string(transaction.Kind),
		AmountCents: transaction.AmountCents,
		CreatedAt:   transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if strings.Contains(strings.ToLower(result.Error.Error()), "foreign key") {
			return errs.ErrConstraintViolation
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"account_id": transaction.AccountID,
			"tipo":       string(transaction.Kind),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	return nil
}

// ListByAccount returns all transactions of an account, oldest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64) ([]entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id").
		Find(&transactionModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(transactionModels))
	for _, m := range transactionModels {
		transactions = append(transactions, entity.Transaction{
			ID:          m.ID,
			AccountID:   m.AccountID,
			Kind:        entity.TransactionKind(m.Kind),
			AmountCents: m.AmountCents,
			CreatedAt:   m.CreatedAt,
		})
	}
	return transactions, nil
}
