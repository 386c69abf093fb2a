package bank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/logger"
)

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(customers *mockCustomerRepository, accounts *mockAccountRepository, uow *mockUnitOfWork) *Service {
	return NewService(customers, accounts, uow, &fixedClock{now: fixedTime}, logger.NewNoopLogger())
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("should create customer when cpf is new", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "12345678900").Return(nil, errs.ErrCustomerNotFound)
		customers.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Customer).ID = 1
			}).
			Return(nil)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		customer, err := service.CreateCustomer(ctx, "Maria Silva", "12345678900", "Rua A, 1", "1990-05-01")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), customer.ID)
		assert.Equal(t, "Maria Silva", customer.Name)
		assert.Equal(t, "12345678900", customer.TaxID)
		assert.Equal(t, fixedTime, customer.CreatedAt)
		customers.AssertExpectations(t)
	})

	t.Run("should reject duplicate cpf", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "12345678900").
			Return(&entity.Customer{ID: 1, TaxID: "12345678900"}, nil)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		customer, err := service.CreateCustomer(ctx, "Maria Silva", "12345678900", "", "")

		assert.ErrorIs(t, err, errs.ErrDuplicateTaxID)
		assert.Nil(t, customer)
		customers.AssertNotCalled(t, "Create")
	})

	t.Run("should propagate lookup failure", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "12345678900").Return(nil, errs.ErrDatabaseConnection)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		_, err := service.CreateCustomer(ctx, "Maria Silva", "12345678900", "", "")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		customers.AssertNotCalled(t, "Create")
	})
}

func TestOpenAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("should open account with zero balance and default branch", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "12345678900").
			Return(&entity.Customer{ID: 7, Name: "Maria Silva", TaxID: "12345678900"}, nil)

		accounts := new(mockAccountRepository)
		accounts.On("GetByNumber", ctx, int64(42)).Return(nil, errs.ErrAccountNotFound)
		accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Account).ID = 3
			}).
			Return(nil)

		service := newTestService(customers, accounts, &mockUnitOfWork{})

		account, err := service.OpenAccount(ctx, 42, "12345678900")

		require.NoError(t, err)
		assert.Equal(t, int64(42), account.Number)
		assert.Equal(t, entity.DefaultBranchCode, account.BranchCode)
		assert.Equal(t, int64(0), account.Balance())
		assert.Equal(t, uint64(7), account.CustomerID)
		assert.Equal(t, "Maria Silva", account.HolderName)
		accounts.AssertExpectations(t)
	})

	t.Run("should fail for unknown cpf", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "000").Return(nil, errs.ErrCustomerNotFound)

		accounts := new(mockAccountRepository)
		service := newTestService(customers, accounts, &mockUnitOfWork{})

		account, err := service.OpenAccount(ctx, 42, "000")

		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
		assert.Nil(t, account)
		accounts.AssertNotCalled(t, "Create")
	})

	t.Run("should reject duplicate account number", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByTaxID", ctx, "12345678900").
			Return(&entity.Customer{ID: 7, Name: "Maria Silva"}, nil)

		accounts := new(mockAccountRepository)
		accounts.On("GetByNumber", ctx, int64(42)).
			Return(entity.RestoreAccount(1, 42, "0001", 9, 0), nil)

		service := newTestService(customers, accounts, &mockUnitOfWork{})

		account, err := service.OpenAccount(ctx, 42, "12345678900")

		assert.ErrorIs(t, err, errs.ErrDuplicateAccountNumber)
		assert.Nil(t, account)
		accounts.AssertNotCalled(t, "Create")
	})
}
