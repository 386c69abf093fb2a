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

// CustomerRepository implements persistence.CustomerRepository using GORM
type CustomerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository(db *gorm.DB, logger coreport.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a customer model to a domain entity
func customerModelToEntity(m *model.Customer) *entity.Customer {
	c := &entity.Customer{
		ID:        m.ID,
		Name:      m.Name,
		TaxID:     m.TaxID,
		Address:   m.Address,
		BirthDate: m.BirthDate,
		CreatedAt: m.CreatedAt,
	}
	for i := range m.Accounts {
		a := &m.Accounts[i]
		acc := entity.RestoreAccount(a.ID, a.Number, a.BranchCode, a.CustomerID, a.Balance)
		acc.HolderName = m.Name
		c.Accounts = append(c.Accounts, *acc)
	}
	return c
}

// Create persists a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.Customer{
		Name:      customer.Name,
		TaxID:     customer.TaxID,
		Address:   customer.Address,
		BirthDate: customer.BirthDate,
		CreatedAt: customer.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&customerModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate cpf on customer create", map[string]any{
				"cpf": customer.TaxID,
			})
			return errs.ErrDuplicateTaxID
		}
		r.logger.Error("Failed to create customer", map[string]any{
			"cpf":   customer.TaxID,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	customer.ID = customerModel.ID
	return nil
}

// GetByTaxID retrieves a customer by cpf
func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	var customerModel model.Customer
	result := r.db.WithContext(ctx).Where("cpf = ?", taxID).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		r.logger.Error("Database error when getting customer by cpf", map[string]any{
			"cpf":   taxID,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return customerModelToEntity(&customerModel), nil
}

// GetByID retrieves a customer by primary key, preloading its accounts
func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*entity.Customer, error) {
	var customerModel model.Customer
	result := r.db.WithContext(ctx).Preload("Accounts").First(&customerModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		r.logger.Error("Database error when getting customer", map[string]any{
			"customer_id": id,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return customerModelToEntity(&customerModel), nil
}

// List returns all customers in insertion order
func (r *CustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	var customerModels []model.Customer
	result := r.db.WithContext(ctx).Order("id").Find(&customerModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing customers", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	customers := make([]entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, *customerModelToEntity(&customerModels[i]))
	}
	return customers, nil
}
