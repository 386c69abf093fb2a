package entity

import (
	"time"

	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
)

// DefaultBranchCode is stamped on every account at creation
const DefaultBranchCode = "0001"

// Account represents a bank account owned by a customer
type Account struct {
	ID         uint64
	Number     int64 // globally unique account number
	BranchCode string
	CustomerID uint64
	balance    int64 // balance in cents, mutated only through Deposit/Withdraw
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// HolderName is filled by queries that join the owning customer
	HolderName string
}

// NewAccount creates an account with zero balance and the default branch code
func NewAccount(number int64, customerID uint64, timeProvider coreport.TimeProvider) *Account {
	now := timeProvider.Now()
	return &Account{
		Number:     number,
		BranchCode: DefaultBranchCode,
		CustomerID: customerID,
		balance:    0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// RestoreAccount rebuilds an account entity from persisted state
func RestoreAccount(id uint64, number int64, branchCode string, customerID uint64, balanceCents int64) *Account {
	return &Account{
		ID:         id,
		Number:     number,
		BranchCode: branchCode,
		CustomerID: customerID,
		balance:    balanceCents,
	}
}

// Balance returns the balance in cents
func (a *Account) Balance() int64 {
	return a.balance
}

// FormattedBalance returns the balance as a two-decimal string
func (a *Account) FormattedBalance() string {
	return FormatCents(a.balance)
}

// Deposit increases the balance by the given amount in cents
func (a *Account) Deposit(cents int64) {
	a.balance += cents
}

// Withdraw decreases the balance by the given amount in cents.
// It fails without mutating the balance when the amount exceeds it.
func (a *Account) Withdraw(cents int64) error {
	if cents > a.balance {
		return errs.NewInsufficientFundsError(a.Number, FormatCents(cents), FormatCents(a.balance))
	}
	a.balance -= cents
	return nil
}
