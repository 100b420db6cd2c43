package domain

import "time"

// Prompt is a rotating postcard prompt. At most one prompt across the whole
// collection may have is_active = true; the console enforces this with a
// non-atomic deactivate-all-then-activate sequence.
type Prompt struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Prompt    string    `gorm:"column:prompt;type:text" json:"prompt"`
	IsActive  bool      `gorm:"column:is_active;default:false" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// UsageCount is derived at load time from active postcards referencing
	// this prompt. Never persisted.
	UsageCount int `gorm:"-" json:"usage_count"`
}

func (Prompt) TableName() string { return "prompts" }
