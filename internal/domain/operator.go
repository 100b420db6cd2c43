package domain

import "time"

// Operator is a console account allowed through the session gate.
type Operator struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Operator) TableName() string { return "operators" }
