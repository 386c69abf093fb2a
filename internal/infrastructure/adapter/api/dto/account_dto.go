package dto

import (
	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	"github.com/caiofernandes-dev/banco-api/internal/domain/usecase/bank"
)

// OpenAccountRequest is the payload for POST /banco/contas/
type OpenAccountRequest struct {
	Number int64  `json:"numero" binding:"required"`
	TaxID  string `json:"cpf" binding:"required"`
}

// AccountResponse represents an account on the wire
type AccountResponse struct {
	Number     int64   `json:"numero"`
	BranchCode string  `json:"agencia"`
	Balance    float64 `json:"saldo"`
	Holder     string  `json:"titular,omitempty"`
}

// NewAccountResponse maps an account entity to its wire representation
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		Number:     account.Number,
		BranchCode: account.BranchCode,
		Balance:    entity.FloatFromCents(account.Balance()),
		Holder:     account.HolderName,
	}
}

// StatementEntryResponse is one line of an account's history on the wire
type StatementEntryResponse struct {
	Kind   string  `json:"tipo_de_transacao"`
	Amount float64 `json:"valor"`
	Date   string  `json:"data"`
}

// StatementResponse is the full account view with transaction history
type StatementResponse struct {
	Number     int64                    `json:"numero"`
	BranchCode string                   `json:"agencia"`
	Balance    float64                  `json:"saldo"`
	Holder     string                   `json:"titular"`
	History    []StatementEntryResponse `json:"historico"`
}

// NewStatementResponse maps a statement to its wire representation
func NewStatementResponse(statement *bank.Statement) StatementResponse {
	history := make([]StatementEntryResponse, 0, len(statement.History))
	for _, e := range statement.History {
		history = append(history, StatementEntryResponse{
			Kind:   e.Kind,
			Amount: e.Amount,
			Date:   e.Date,
		})
	}
	return StatementResponse{
		Number:     statement.Number,
		BranchCode: statement.BranchCode,
		Balance:    statement.Balance,
		Holder:     statement.Holder,
		History:    history,
	}
}
