package domain

import "time"

// ContactMessage is an inbound message from the public contact form.
// It has no soft-delete flag; moderation only toggles is_addressed.
type ContactMessage struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name        *string   `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	Email       *string   `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	IsAddressed bool      `gorm:"column:is_addressed;default:false" json:"is_addressed"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
