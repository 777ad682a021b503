package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a writer's profile. Passwords are stored as bcrypt hashes only.
type User struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Username             string         `gorm:"size:64;not null;uniqueIndex" json:"username"`
	DisplayName          string         `gorm:"size:128" json:"display_name"`
	Email                string         `gorm:"size:255" json:"email"`
	PasswordHash         string         `gorm:"size:255" json:"-"`
	Bio                  string         `gorm:"size:255" json:"bio"`
	PublicID             string         `gorm:"size:36;uniqueIndex" json:"public_id"`
	RegisterIP           string         `gorm:"size:45" json:"-"`
	CurrentStreak        int            `gorm:"default:0" json:"current_streak"`
	LongestStreak        int            `gorm:"default:0" json:"longest_streak"`
	LastStoryAt          *time.Time     `json:"last_story_at"`
	EnableEmailReminders bool           `gorm:"default:false" json:"enable_email_reminders"`
	ReminderTime         string         `gorm:"size:5" json:"reminder_time"` // "HH:MM", empty when unset
	IsAdmin              bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
	Stories              []Story        `json:"-"`
}

// BeforeCreate hook ensures timestamps and the public id are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.PublicID == "" {
		u.PublicID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
