package bank

import (
	"context"
	"fmt"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
)

// Receipt confirms an applied transaction
type Receipt struct {
	Message string
}

// ApplyTransaction applies a deposit or withdrawal to the account with the
// given number. The balance mutation and the transaction row commit in one
// database transaction under a row-level lock, so no transaction is ever
// recorded without the matching balance change.
func (s *Service) ApplyTransaction(ctx context.Context, number int64, kind string, amount float64) (*Receipt, error) {
	if !entity.IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}

	cents, err := entity.CentsFromFloat(amount)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	accountRepo := s.uow.GetAccountRepository(txCtx)
	transactionRepo := s.uow.GetTransactionRepository(txCtx)

	account, err := accountRepo.GetByNumberForUpdate(txCtx, number)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	switch entity.TransactionKind(kind) {
	case entity.KindDeposit:
		account.Deposit(cents)
	case entity.KindWithdraw:
		if err := account.Withdraw(cents); err != nil {
			_ = s.uow.Rollback(txCtx)
			s.logger.Warn("Withdrawal rejected", map[string]any{
				"number":  number,
				"amount":  entity.FormatCents(cents),
				"balance": account.FormattedBalance(),
			})
			return nil, err
		}
	}

	if err := accountRepo.UpdateBalance(txCtx, account); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewTransactionError(number, kind, entity.FormatCents(cents), "balance update failed", err)
	}

	transaction, err := entity.NewTransaction(account.ID, kind, cents, s.timeProvider)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := transactionRepo.Create(txCtx, transaction); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewTransactionError(number, kind, entity.FormatCents(cents), "ledger append failed", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction applied", map[string]any{
		"number":      number,
		"kind":        kind,
		"amount":      entity.FormatCents(cents),
		"new_balance": account.FormattedBalance(),
	})

	return &Receipt{Message: transaction.ReceiptMessage()}, nil
}
