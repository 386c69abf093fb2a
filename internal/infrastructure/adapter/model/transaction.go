package model

import (
	"time"
)

// Transaction represents the database model for the append-only ledger
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID   uint64    `gorm:"not null;index"`
	Kind        string    `gorm:"not null;size:20"`
	AmountCents int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transacoes"
}
