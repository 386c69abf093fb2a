package entity

import "time"

// Customer represents an account holder identified by a unique cpf
type Customer struct {
	ID        uint64
	Name      string
	TaxID     string // cpf, globally unique
	Address   string
	BirthDate string // stored as a plain string, as the original records it
	CreatedAt time.Time

	// Accounts owned by this customer, populated only by queries that ask for them
	Accounts []Account
}
