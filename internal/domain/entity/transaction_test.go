package entity

import (
	"testing"
	"time"

	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{now: fixedTime}

	t.Run("Valid deposit", func(t *testing.T) {
		tx, err := NewTransaction(1, string(KindDeposit), 100000, clock)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.AccountID)
		assert.Equal(t, KindDeposit, tx.Kind)
		assert.Equal(t, int64(100000), tx.AmountCents)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
	})

	t.Run("Valid withdrawal", func(t *testing.T) {
		tx, err := NewTransaction(1, string(KindWithdraw), 5000, clock)

		require.NoError(t, err)
		assert.Equal(t, KindWithdraw, tx.Kind)
		assert.True(t, tx.IsDebit())
		assert.False(t, tx.IsCredit())
	})

	t.Run("Invalid kind", func(t *testing.T) {
		tx, err := NewTransaction(1, "transferencia", 5000, clock)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionKind)
		assert.Nil(t, tx)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		tx, err := NewTransaction(1, string(KindDeposit), 0, clock)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})
}

func TestReceiptMessage(t *testing.T) {
	clock := &fixedClock{now: time.Now()}

	deposit, err := NewTransaction(1, string(KindDeposit), 1000, clock)
	require.NoError(t, err)
	assert.Equal(t, "Deposito realizado com sucesso", deposit.ReceiptMessage())

	withdraw, err := NewTransaction(1, string(KindWithdraw), 1000, clock)
	require.NoError(t, err)
	assert.Equal(t, "Saque realizado com sucesso", withdraw.ReceiptMessage())
}

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind("deposito"))
	assert.True(t, IsValidKind("saque"))
	assert.False(t, IsValidKind("Deposito"))
	assert.False(t, IsValidKind(""))
	assert.False(t, IsValidKind("transferencia"))
}

func TestStatementDateLayout(t *testing.T) {
	ts := time.Date(2023, 12, 31, 23, 59, 5, 0, time.UTC)
	assert.Equal(t, "31-12-2023 23:59:05", ts.Format(StatementDateLayout))
}
