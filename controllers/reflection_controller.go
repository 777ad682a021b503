package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// ReflectionController records and lists post-writing reflections.
// Reflections are append-only: no update or delete endpoints.
type ReflectionController struct {
	db *gorm.DB
}

// NewReflectionController creates a new controller instance.
func NewReflectionController(db *gorm.DB) *ReflectionController {
	return &ReflectionController{db: db}
}

// Create appends a reflection for the caller.
func (r *ReflectionController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		StoryID  *uint  `json:"story_id"`
		Mood     string `json:"mood"`
		Takeaway string `json:"takeaway"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40080, "invalid request payload")
		return
	}

	if req.StoryID != nil {
		var story models.Story
		if err := r.db.Where("id = ? AND user_id = ?", *req.StoryID, userID).First(&story).Error; err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40081, "story not found")
			return
		}
	}

	reflection := models.Reflection{
		UserID:   userID,
		StoryID:  req.StoryID,
		Mood:     strings.TrimSpace(req.Mood),
		Takeaway: strings.TrimSpace(req.Takeaway),
	}
	if err := r.db.Create(&reflection).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to save reflection")
		return
	}

	utils.Success(ctx, gin.H{"reflection": reflection})
}

// List returns the caller's reflections, newest first.
func (r *ReflectionController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var reflections []models.Reflection
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reflections).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to list reflections")
		return
	}
	utils.Success(ctx, gin.H{"items": reflections})
}
