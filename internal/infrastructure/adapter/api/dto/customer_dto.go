package dto

import "github.com/caiofernandes-dev/banco-api/internal/domain/entity"

// CreateCustomerRequest is the payload for POST /banco/clientes/
type CreateCustomerRequest struct {
	Name      string `json:"nome" binding:"required"`
	TaxID     string `json:"cpf" binding:"required"`
	Address   string `json:"endereco"`
	BirthDate string `json:"data_nascimento"`
}

// CustomerResponse represents a customer on the wire
type CustomerResponse struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"nome"`
	TaxID     string            `json:"cpf"`
	Address   string            `json:"endereco"`
	BirthDate string            `json:"data_nascimento"`
	Accounts  []AccountResponse `json:"contas,omitempty"`
}

// NewCustomerResponse maps a customer entity to its wire representation
func NewCustomerResponse(customer *entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		TaxID:     customer.TaxID,
		Address:   customer.Address,
		BirthDate: customer.BirthDate,
	}
	for i := range customer.Accounts {
		resp.Accounts = append(resp.Accounts, NewAccountResponse(&customer.Accounts[i]))
	}
	return resp
}
