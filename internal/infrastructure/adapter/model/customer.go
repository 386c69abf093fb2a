package model

import (
	"time"
)

// Customer represents the database model for customers
type Customer struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null;size:255"`
	TaxID     string    `gorm:"column:cpf;uniqueIndex;not null;size:14"`
	Address   string    `gorm:"not null;size:255"`
	BirthDate string    `gorm:"not null;size:20"`
	CreatedAt time.Time `gorm:"not null"`

	Accounts []Account `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "clientes"
}
