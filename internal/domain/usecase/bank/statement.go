package bank

import (
	"context"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

// StatementEntry is one line of an account's transaction history
type StatementEntry struct {
	Kind   string
	Amount float64
	Date   string
}

// Statement is the full view of an account: balance, branch, holder and the
// ordered transaction history, oldest first
type Statement struct {
	Number     int64
	BranchCode string
	Balance    float64
	Holder     string
	History    []StatementEntry
}

// GetStatement returns the statement for the account with the given number
func (s *Service) GetStatement(ctx context.Context, number int64) (*Statement, error) {
	account, err := s.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	transactions, err := s.uow.GetTransactionRepository(ctx).ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	history := make([]StatementEntry, 0, len(transactions))
	for _, t := range transactions {
		history = append(history, StatementEntry{
			Kind:   string(t.Kind),
			Amount: entity.FloatFromCents(t.AmountCents),
			Date:   t.CreatedAt.Format(entity.StatementDateLayout),
		})
	}

	return &Statement{
		Number:     account.Number,
		BranchCode: account.BranchCode,
		Balance:    entity.FloatFromCents(account.Balance()),
		Holder:     account.HolderName,
		History:    history,
	}, nil
}
