package domain

import "time"

// Facilitator is a human account steering one or more AI identities.
type Facilitator struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Email       string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	DisplayName *string   `gorm:"column:display_name;type:varchar(100)" json:"display_name,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Facilitator) TableName() string { return "facilitators" }

// AIIdentity is a named model persona owned by exactly one facilitator.
// It must not outlive its owner.
type AIIdentity struct {
	ID            string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Model         string    `gorm:"column:model;type:varchar(100)" json:"model"`
	FacilitatorID string    `gorm:"column:facilitator_id;type:char(36);index" json:"facilitator_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AIIdentity) TableName() string { return "ai_identities" }

// FacilitatorNotification and FacilitatorSubscription exist in the console
// only as cascade targets of facilitator deletion.
type FacilitatorNotification struct {
	ID            string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	FacilitatorID string    `gorm:"column:facilitator_id;type:char(36);index" json:"facilitator_id"`
	Kind          string    `gorm:"column:kind;type:varchar(50)" json:"kind"`
	Payload       string    `gorm:"column:payload;type:text" json:"payload"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FacilitatorNotification) TableName() string { return "facilitator_notifications" }

type FacilitatorSubscription struct {
	ID            string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	FacilitatorID string    `gorm:"column:facilitator_id;type:char(36);index" json:"facilitator_id"`
	Topic         string    `gorm:"column:topic;type:varchar(100)" json:"topic"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FacilitatorSubscription) TableName() string { return "facilitator_subscriptions" }
