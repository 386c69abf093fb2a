package bank

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
)

// ListCustomers returns every registered customer, failing with
// ErrCustomerNotFound when there are none
func (s *Service) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, errs.ErrCustomerNotFound
	}
	return customers, nil
}

// ListAccounts returns every account, failing with ErrAccountNotFound when
// there are none
func (s *Service) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, errs.ErrAccountNotFound
	}
	return accounts, nil
}

// GetCustomer returns a customer by id with its accounts attached
func (s *Service) GetCustomer(ctx context.Context, id uint64) (*entity.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}
