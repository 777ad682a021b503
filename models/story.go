package models

import (
	"strings"
	"time"
)

// Story is a piece of writing submitted by a user, optionally tied to a prompt.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	PromptID  *uint     `gorm:"index" json:"prompt_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	WordCount int       `gorm:"default:0" json:"word_count"`
	IsPublic  bool      `gorm:"index;default:false" json:"is_public"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Prompt    *Prompt   `json:"prompt,omitempty"`
}

// CountWords returns the whitespace-delimited token count of content.
// Word counts are always derived through this so edits stay consistent.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
