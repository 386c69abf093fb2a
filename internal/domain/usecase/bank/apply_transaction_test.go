package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
)

func TestApplyTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit credits the balance and writes a ledger row", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		transactions := new(mockTransactionRepository)
		uow := &mockUnitOfWork{accounts: accounts, transactions: transactions}

		account := entity.RestoreAccount(3, 42, "0001", 7, 0)
		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(account, nil)
		accounts.On("UpdateBalance", ctx, account).Return(nil)
		transactions.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "deposito", 1000)

		require.NoError(t, err)
		assert.Equal(t, "Deposito realizado com sucesso", receipt.Message)
		assert.Equal(t, "1000.00", account.FormattedBalance())

		created := transactions.Calls[0].Arguments.Get(1).(*entity.Transaction)
		assert.Equal(t, uint64(3), created.AccountID)
		assert.Equal(t, entity.KindDeposit, created.Kind)
		assert.Equal(t, int64(100000), created.AmountCents)
		uow.AssertExpectations(t)
	})

	t.Run("withdrawal debits the balance", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		transactions := new(mockTransactionRepository)
		uow := &mockUnitOfWork{accounts: accounts, transactions: transactions}

		account := entity.RestoreAccount(3, 42, "0001", 7, 100000)
		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(account, nil)
		accounts.On("UpdateBalance", ctx, account).Return(nil)
		transactions.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "saque", 100)

		require.NoError(t, err)
		assert.Equal(t, "Saque realizado com sucesso", receipt.Message)
		assert.Equal(t, "900.00", account.FormattedBalance())
	})

	t.Run("oversized withdrawal rolls back without a ledger row", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		transactions := new(mockTransactionRepository)
		uow := &mockUnitOfWork{accounts: accounts, transactions: transactions}

		account := entity.RestoreAccount(3, 42, "0001", 7, 90000)
		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(account, nil)
		uow.On("Rollback", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "saque", 99999)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Nil(t, receipt)
		// The rejected withdrawal leaves the balance untouched
		assert.Equal(t, "900.00", account.FormattedBalance())
		accounts.AssertNotCalled(t, "UpdateBalance")
		transactions.AssertNotCalled(t, "Create")
		uow.AssertCalled(t, "Rollback", ctx)
	})

	t.Run("invalid kind fails before touching the database", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		uow := &mockUnitOfWork{accounts: accounts}

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "transferencia", 100)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionKind)
		assert.Nil(t, receipt)
		uow.AssertNotCalled(t, "Begin")
	})

	t.Run("invalid amounts fail before touching the database", func(t *testing.T) {
		for _, amount := range []float64{0, -10, 10.123} {
			accounts := new(mockAccountRepository)
			uow := &mockUnitOfWork{accounts: accounts}

			service := newTestService(new(mockCustomerRepository), accounts, uow)

			receipt, err := service.ApplyTransaction(ctx, 42, "deposito", amount)

			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Nil(t, receipt)
			uow.AssertNotCalled(t, "Begin")
		}
	})

	t.Run("unknown account rolls back", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		uow := &mockUnitOfWork{accounts: accounts}

		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(nil, errs.ErrAccountNotFound)
		uow.On("Rollback", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "deposito", 100)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.Nil(t, receipt)
		uow.AssertCalled(t, "Rollback", ctx)
	})

	t.Run("balance update failure rolls back with a transaction error", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		transactions := new(mockTransactionRepository)
		uow := &mockUnitOfWork{accounts: accounts, transactions: transactions}

		account := entity.RestoreAccount(3, 42, "0001", 7, 0)
		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(account, nil)
		accounts.On("UpdateBalance", ctx, account).Return(errs.ErrDatabaseConnection)
		uow.On("Rollback", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		receipt, err := service.ApplyTransaction(ctx, 42, "deposito", 100)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, receipt)
		var txErr *errs.TransactionError
		assert.ErrorAs(t, err, &txErr)
		transactions.AssertNotCalled(t, "Create")
	})

	t.Run("deposit then equal withdrawal restores the balance", func(t *testing.T) {
		accounts := new(mockAccountRepository)
		transactions := new(mockTransactionRepository)
		uow := &mockUnitOfWork{accounts: accounts, transactions: transactions}

		account := entity.RestoreAccount(3, 42, "0001", 7, 50000)
		uow.On("Begin", ctx).Return(ctx, nil)
		accounts.On("GetByNumberForUpdate", ctx, int64(42)).Return(account, nil)
		accounts.On("UpdateBalance", ctx, account).Return(nil)
		transactions.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		service := newTestService(new(mockCustomerRepository), accounts, uow)

		_, err := service.ApplyTransaction(ctx, 42, "deposito", 10.15)
		require.NoError(t, err)
		_, err = service.ApplyTransaction(ctx, 42, "saque", 10.15)
		require.NoError(t, err)

		assert.Equal(t, "500.00", account.FormattedBalance())
	})
}
