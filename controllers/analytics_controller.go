package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// AnalyticsController exposes per-user daily writing analytics. Rows are
// written by the story controller when stories are created.
type AnalyticsController struct {
	db *gorm.DB
}

// NewAnalyticsController creates a new controller instance.
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{db: db}
}

// List returns the caller's daily word counts, oldest first.
func (a *AnalyticsController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var rows []models.WritingAnalytics
	if err := a.db.Where("user_id = ?", userID).Order("date ASC").Find(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50090, "failed to load analytics")
		return
	}
	utils.Success(ctx, gin.H{"items": rows})
}
