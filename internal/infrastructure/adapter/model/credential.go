package model

// Credential represents the database model for login credentials
type Credential struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"uniqueIndex;not null;size:50"`
	HashedPassword string `gorm:"not null;size:255"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "usuarios"
}
