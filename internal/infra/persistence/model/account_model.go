package model

import "time"

// AccountModel mirrors the 'accounts' table, keyed by email.
type AccountModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
