package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// StoryController manages story CRUD, the public feed, and the streak
// bookkeeping that happens when a story lands.
type StoryController struct {
	db *gorm.DB
}

// NewStoryController creates a new controller instance.
func NewStoryController(db *gorm.DB) *StoryController {
	return &StoryController{db: db}
}

// Create stores a new story, derives its word count, updates the
// author's streak, and records daily analytics.
func (s *StoryController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Title    string `json:"title" binding:"required,min=1"`
		Content  string `json:"content" binding:"required"`
		PromptID *uint  `json:"prompt_id"`
		IsPublic bool   `json:"is_public"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40061, "title cannot be empty")
		return
	}
	content := utils.Sanitize(req.Content)
	if strings.TrimSpace(content) == "" {
		utils.Error(ctx, http.StatusBadRequest, 40062, "content cannot be empty")
		return
	}

	if req.PromptID != nil {
		var prompt models.Prompt
		if err := s.db.First(&prompt, *req.PromptID).Error; err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40063, "prompt not found")
			return
		}
	}

	story := models.Story{
		UserID:    userID,
		PromptID:  req.PromptID,
		Title:     title,
		Content:   content,
		WordCount: models.CountWords(content),
		IsPublic:  req.IsPublic,
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&story).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		current, longest := NextStreak(user.CurrentStreak, user.LongestStreak, user.LastStoryAt, now)
		user.CurrentStreak = current
		user.LongestStreak = longest
		user.LastStoryAt = &story.CreatedAt

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// Daily word-count analytics: one row per user per day, additive.
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"word_count": gorm.Expr("word_count + ?", story.WordCount), "updated_at": now}),
		}).Create(&models.WritingAnalytics{UserID: userID, Date: day, WordCount: story.WordCount}).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to create story")
		return
	}

	if story.IsPublic {
		utils.InvalidateByPrefix("cache:stories:public:")
	}
	utils.InvalidateByPrefix("cache:user:" + strconv.Itoa(int(userID)) + ":stories:")

	utils.Success(ctx, gin.H{"story": story})
}

// NextStreak computes the streak counters after a story written at now.
// Same-day stories keep the streak, a story the day after the last one
// extends it, anything else restarts at one.
func NextStreak(current, longest int, lastStoryAt *time.Time, now time.Time) (int, int) {
	next := 1
	if lastStoryAt != nil {
		if isSameDay(*lastStoryAt, now) {
			next = current
			if next < 1 {
				next = 1
			}
		} else if isYesterday(*lastStoryAt, now) {
			next = current + 1
		}
	}
	if next > longest {
		longest = next
	}
	return next, longest
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func isYesterday(last, today time.Time) bool {
	yesterday := today.AddDate(0, 0, -1)
	return last.Year() == yesterday.Year() && last.YearDay() == yesterday.YearDay()
}

// Update edits a story's title, content, or visibility. Word count is
// recomputed whenever the content changes.
func (s *StoryController) Update(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var story models.Story
	if err := s.db.First(&story, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "story not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load story")
		return
	}
	if story.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40360, "not your story")
		return
	}

	var req struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		IsPublic *bool   `json:"is_public"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			utils.Error(ctx, http.StatusBadRequest, 40061, "title cannot be empty")
			return
		}
		story.Title = title
	}
	if req.Content != nil {
		content := utils.Sanitize(*req.Content)
		if strings.TrimSpace(content) == "" {
			utils.Error(ctx, http.StatusBadRequest, 40062, "content cannot be empty")
			return
		}
		story.Content = content
		story.WordCount = models.CountWords(content)
	}
	if req.IsPublic != nil {
		story.IsPublic = *req.IsPublic
	}

	if err := s.db.Save(&story).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to update story")
		return
	}

	utils.InvalidateByPrefix("cache:stories:public:")
	utils.InvalidateByPrefix("cache:user:" + strconv.Itoa(int(userID)) + ":stories:")

	utils.Success(ctx, gin.H{"story": story})
}

// Delete removes a story owned by the caller.
func (s *StoryController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var story models.Story
	if err := s.db.First(&story, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "story not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load story")
		return
	}
	if story.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40360, "not your story")
		return
	}

	if err := s.db.Delete(&story).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to delete story")
		return
	}

	utils.InvalidateByPrefix("cache:stories:public:")
	utils.InvalidateByPrefix("cache:user:" + strconv.Itoa(int(userID)) + ":stories:")

	utils.Success(ctx, gin.H{"message": "story deleted"})
}

// Get returns one story with prompt and author. Private stories are
// visible to their owner only.
func (s *StoryController) Get(ctx *gin.Context) {
	var story models.Story
	if err := s.db.Preload("User").Preload("Prompt").First(&story, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "story not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load story")
		return
	}

	if !story.IsPublic {
		userID, ok := getUserID(ctx)
		if !ok || userID != story.UserID {
			utils.Error(ctx, http.StatusNotFound, 40460, "story not found")
			return
		}
	}

	utils.Success(ctx, gin.H{"story": story})
}

// ListMine returns the caller's stories, newest first.
func (s *StoryController) ListMine(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	var stories []models.Story
	var total int64
	q := s.db.Where("user_id = ?", userID).Preload("Prompt").Order("created_at DESC")
	if err := q.Model(&models.Story{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to count stories")
		return
	}
	if err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&stories).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50065, "failed to list stories")
		return
	}

	utils.Success(ctx, gin.H{
		"items": stories,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
		},
	})
}

// PublicFeed returns recent public stories with author and prompt info.
func (s *StoryController) PublicFeed(ctx *gin.Context) {
	limit := 20
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	cacheKey := fmt.Sprintf("cache:stories:public:limit=%d", limit)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var stories []models.Story
	if err := s.db.Where("is_public = ?", true).
		Preload("User").Preload("Prompt").
		Order("created_at DESC").Limit(limit).
		Find(&stories).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50066, "failed to load public stories")
		return
	}

	payload := gin.H{"items": stories}
	utils.CacheSetJSON(cacheKey, wrap(payload), time.Hour)
	utils.Success(ctx, payload)
}

// ListByPrompt returns public stories written against a prompt.
func (s *StoryController) ListByPrompt(ctx *gin.Context) {
	promptID := ctx.Param("id")
	limit := 20
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	var stories []models.Story
	if err := s.db.Where("prompt_id = ? AND is_public = ?", promptID, true).
		Preload("User").
		Order("created_at DESC").Limit(limit).
		Find(&stories).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50067, "failed to load prompt stories")
		return
	}

	utils.Success(ctx, gin.H{"items": stories})
}
