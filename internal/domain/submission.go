package domain

import "time"

// Text submission review states.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// TextSubmission is a visitor-submitted text awaiting review. Approval mirrors
// it into the published texts collection; the pair (title, author) is the only
// link between the two rows.
type TextSubmission struct {
	ID         string     `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Title      string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Author     string     `gorm:"column:author;type:varchar(255)" json:"author"`
	Content    string     `gorm:"column:content;type:mediumtext" json:"content"`
	Category   string     `gorm:"column:category;type:varchar(100)" json:"category"`
	Source     *string    `gorm:"column:source;type:varchar(500)" json:"source,omitempty"`
	Status     string     `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TextSubmission) TableName() string { return "text_submissions" }

// Text is a published text. Created by the console when a submission is
// approved; removed when an approved submission is later rejected.
type Text struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Author    string    `gorm:"column:author;type:varchar(255)" json:"author"`
	Content   string    `gorm:"column:content;type:mediumtext" json:"content"`
	Category  string    `gorm:"column:category;type:varchar(100)" json:"category"`
	Source    *string   `gorm:"column:source;type:varchar(500)" json:"source,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Text) TableName() string { return "texts" }
