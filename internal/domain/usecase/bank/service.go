package bank

import (
	"context"
	"errors"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/domain/port/persistence"
)

// Service orchestrates customer and account operations against the ledger store
type Service struct {
	customerRepo persistence.CustomerRepository
	accountRepo  persistence.AccountRepository
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new bank service
func NewService(
	customerRepo persistence.CustomerRepository,
	accountRepo persistence.AccountRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateCustomer registers a new customer, failing when the cpf is already taken
func (s *Service) CreateCustomer(ctx context.Context, name, taxID, address, birthDate string) (*entity.Customer, error) {
	_, err := s.customerRepo.GetByTaxID(ctx, taxID)
	if err == nil {
		return nil, errs.ErrDuplicateTaxID
	}
	if !errors.Is(err, errs.ErrCustomerNotFound) {
		return nil, err
	}

	customer := &entity.Customer{
		Name:      name,
		TaxID:     taxID,
		Address:   address,
		BirthDate: birthDate,
		CreatedAt: s.timeProvider.Now(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer", map[string]any{
			"cpf":   taxID,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Customer created", map[string]any{
		"customer_id": customer.ID,
		"cpf":         taxID,
	})
	return customer, nil
}

// OpenAccount creates an account for the customer holding the given cpf.
// New accounts start with zero balance and the default branch code.
func (s *Service) OpenAccount(ctx context.Context, number int64, taxID string) (*entity.Account, error) {
	customer, err := s.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	_, err = s.accountRepo.GetByNumber(ctx, number)
	if err == nil {
		return nil, errs.ErrDuplicateAccountNumber
	}
	if !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	account := entity.NewAccount(number, customer.ID, s.timeProvider)
	account.HolderName = customer.Name

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create account", map[string]any{
			"number": number,
			"cpf":    taxID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id":  account.ID,
		"number":      number,
		"customer_id": customer.ID,
	})
	return account, nil
}
