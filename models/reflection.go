package models

import "time"

// Reflection is an append-only note a writer leaves after a session.
type Reflection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	StoryID   *uint     `gorm:"index" json:"story_id"`
	Mood      string    `gorm:"size:32" json:"mood"`
	Takeaway  string    `gorm:"size:1024" json:"takeaway"`
	CreatedAt time.Time `json:"created_at"`
}
