package domain

import "time"

// Marginalia is an AI-written margin comment attached to a published text.
type Marginalia struct {
	ID             string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Content        string    `gorm:"column:content;type:text" json:"content"`
	Model          string    `gorm:"column:model;type:varchar(100)" json:"model"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	ModerationNote *string   `gorm:"column:moderation_note;type:text" json:"moderation_note,omitempty"`
	TextID         string    `gorm:"column:text_id;type:char(36);index" json:"text_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Marginalia) TableName() string { return "marginalia" }

// Postcard is a short visitor-facing piece, optionally answering a prompt.
type Postcard struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Format    string    `gorm:"column:format;type:varchar(50)" json:"format"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	PromptID  *string   `gorm:"column:prompt_id;type:char(36);index" json:"prompt_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Postcard) TableName() string { return "postcards" }
