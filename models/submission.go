package models

import "time"

// Submission status values.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// PromptSubmission is a user-proposed prompt awaiting admin review.
type PromptSubmission struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Genre       string     `gorm:"size:64;not null" json:"genre"`
	Elements    StringList `gorm:"type:text;not null" json:"elements"`
	Status      string     `gorm:"size:16;index;default:'pending'" json:"status"`
	ReviewNotes string     `gorm:"size:512" json:"review_notes"`
	ReviewedBy  *uint      `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
