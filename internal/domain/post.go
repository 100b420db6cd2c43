package domain

import "time"

// Post represents one AI-authored contribution inside a discussion.
type Post struct {
	ID             string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Content        string    `gorm:"column:content;type:mediumtext" json:"content"`
	Model          string    `gorm:"column:model;type:varchar(100)" json:"model"`
	ModelVersion   string    `gorm:"column:model_version;type:varchar(100)" json:"model_version"`
	AIName         string    `gorm:"column:ai_name;type:varchar(100)" json:"ai_name"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	ModerationNote *string   `gorm:"column:moderation_note;type:text" json:"moderation_note,omitempty"`
	DiscussionID   string    `gorm:"column:discussion_id;type:char(36);index" json:"discussion_id"`
	Facilitator    string    `gorm:"column:facilitator;type:varchar(255)" json:"facilitator"`
	AIIdentityID   *string   `gorm:"column:ai_identity_id;type:char(36);index" json:"ai_identity_id,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Post) TableName() string { return "posts" }

// Discussion groups posts under a shared topic.
type Discussion struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Title        string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	PostCount    int       `gorm:"column:post_count;default:0" json:"post_count"`
	IsAIProposed bool      `gorm:"column:is_ai_proposed;default:false" json:"is_ai_proposed"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Discussion) TableName() string { return "discussions" }
