package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// StatsController provides site-wide statistics such as counts and daily active users.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate statistics for the site.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var storyCount int64
	var promptCount int64
	var dailyActive int64

	// Fall back to 0 instead of failing the whole endpoint
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		userCount = 0
	}
	if err := s.db.Model(&models.Story{}).Count(&storyCount).Error; err != nil {
		storyCount = 0
	}
	if err := s.db.Model(&models.Prompt{}).Count(&promptCount).Error; err != nil {
		promptCount = 0
	}

	// Daily active (PV-based): sum of today's page views across all paths.
	// Use string date equality to avoid timezone/type mismatches with DATE column.
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.PageView{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&dailyActive).Error; err != nil {
		dailyActive = 0
	}

	utils.Success(ctx, gin.H{
		"user_count":         userCount,
		"story_count":        storyCount,
		"prompt_count":       promptCount,
		"daily_active_count": dailyActive,
	})
}
