package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
)

// TransactionKind represents the kind of a transaction
type TransactionKind string

// Transaction kinds, using the wire literals of the original API
const (
	KindDeposit  TransactionKind = "deposito"
	KindWithdraw TransactionKind = "saque"
)

// StatementDateLayout is the timestamp format used in account statements
const StatementDateLayout = "02-01-2006 15:04:05"

// Transaction represents an append-only ledger entry for an account
type Transaction struct {
	ID          uint64
	AccountID   uint64
	Kind        TransactionKind
	AmountCents int64
	CreatedAt   time.Time
}

// NewTransaction creates a transaction with basic validation.
// The amount arrives already converted to cents by CentsFromFloat.
func NewTransaction(accountID uint64, kind string, amountCents int64, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		AccountID:   accountID,
		Kind:        TransactionKind(kind),
		AmountCents: amountCents,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction increases the account balance
func (t *Transaction) IsCredit() bool {
	return t.Kind == KindDeposit
}

// IsDebit returns true if this transaction decreases the account balance
func (t *Transaction) IsDebit() bool {
	return t.Kind == KindWithdraw
}

// ReceiptMessage returns the confirmation message for an applied transaction,
// e.g. "Deposito realizado com sucesso"
func (t *Transaction) ReceiptMessage() string {
	kind := string(t.Kind)
	return strings.ToUpper(kind[:1]) + kind[1:] + " realizado com sucesso"
}

// IsValidKind validates if the transaction kind is one of the known literals
func IsValidKind(kind string) bool {
	return kind == string(KindDeposit) || kind == string(KindWithdraw)
}
