package models

import "time"

// Prompt is a daily writing prompt: a genre plus the story elements a
// submission must include. At most one prompt is scheduled per day via
// ActiveDate; IsActive marks prompts usable as fallbacks.
type Prompt struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Genre      string     `gorm:"size:64;not null" json:"genre"`
	Elements   StringList `gorm:"type:text;not null" json:"elements"`
	IsActive   bool       `gorm:"index;default:false" json:"is_active"`
	ActiveDate *time.Time `gorm:"type:date;index" json:"active_date"`
	CreatedBy  *uint      `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
