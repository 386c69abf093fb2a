package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Number     int64     `gorm:"uniqueIndex;not null"`
	BranchCode string    `gorm:"not null;size:10;default:0001"`
	Balance    int64     `gorm:"not null"` // balance in cents
	CustomerID uint64    `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "contas"
}
