package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
)

func TestListCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns customers", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("List", ctx).Return([]entity.Customer{
			{ID: 1, Name: "Maria Silva"},
			{ID: 2, Name: "Joao Souza"},
		}, nil)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		result, err := service.ListCustomers(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("empty store is a not-found error", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("List", ctx).Return([]entity.Customer{}, nil)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		result, err := service.ListCustomers(ctx)

		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
		assert.Nil(t, result)
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns accounts", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		accounts.On("List", ctx).Return([]entity.Account{
			*entity.RestoreAccount(1, 42, "0001", 7, 1000),
		}, nil)

		service := newTestService(new(mockCustomerRepository), accounts, &mockUnitOfWork{})

		result, err := service.ListAccounts(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("empty store is a not-found error", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		accounts.On("List", ctx).Return([]entity.Account{}, nil)

		service := newTestService(new(mockCustomerRepository), accounts, &mockUnitOfWork{})

		result, err := service.ListAccounts(ctx)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.Nil(t, result)
	})
}

func TestGetCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns customer with accounts", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByID", ctx, uint64(7)).Return(&entity.Customer{
			ID:   7,
			Name: "Maria Silva",
			Accounts: []entity.Account{
				*entity.RestoreAccount(3, 42, "0001", 7, 90000),
			},
		}, nil)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		customer, err := service.GetCustomer(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", customer.Name)
		assert.Len(t, customer.Accounts, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		customers := new(mockCustomerRepository)
		customers.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrCustomerNotFound)

		service := newTestService(customers, new(mockAccountRepository), &mockUnitOfWork{})

		customer, err := service.GetCustomer(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
		assert.Nil(t, customer)
	})
}
