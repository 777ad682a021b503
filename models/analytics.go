package models

import "time"

// WritingAnalytics records how many words a user wrote on a given day.
type WritingAnalytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_wa_user_date,unique;not null" json:"user_id"`
	Date      time.Time `gorm:"index:idx_wa_user_date,unique;type:date;not null" json:"date"`
	WordCount int       `gorm:"not null;default:0" json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
