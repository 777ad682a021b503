package controllers

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// PromptController serves daily, random, and preference-weighted prompts.
type PromptController struct {
	db *gorm.DB
}

// NewPromptController creates a new controller instance.
func NewPromptController(db *gorm.DB) *PromptController {
	return &PromptController{db: db}
}

var errNoPrompts = errors.New("no prompts available")

// GetToday returns today's scheduled prompt, falling back to any active
// prompt. A missing prompt is not an error: data is null.
func (p *PromptController) GetToday(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:prompt:today"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	prompt, err := todayPrompt(p.db)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load today's prompt")
		return
	}

	payload := gin.H{"prompt": prompt}
	utils.CacheSetJSON("cache:prompt:today", wrap(payload), 5*time.Minute)
	utils.Success(ctx, payload)
}

// todayPrompt looks up the prompt scheduled for today, then any active
// prompt. Returns (nil, nil) when none exists.
func todayPrompt(db *gorm.DB) (*models.Prompt, error) {
	today := time.Now().UTC().Format("2006-01-02")

	var prompt models.Prompt
	err := db.Where("is_active = ? AND active_date = ?", true, today).First(&prompt).Error
	if err == nil {
		return &prompt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Where("is_active = ?", true).Limit(1).First(&prompt).Error
	if err == nil {
		return &prompt, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// List returns all prompts, newest first.
func (p *PromptController) List(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	var prompts []models.Prompt
	var total int64
	q := p.db.Model(&models.Prompt{}).Order("created_at DESC")
	if err := q.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to count prompts")
		return
	}
	if err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&prompts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to list prompts")
		return
	}

	utils.Success(ctx, gin.H{
		"items": prompts,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": totalPages(total, pageSize),
		},
	})
}

// Get returns a single prompt by id.
func (p *PromptController) Get(ctx *gin.Context) {
	var prompt models.Prompt
	if err := p.db.First(&prompt, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "prompt not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to load prompt")
		return
	}
	utils.Success(ctx, gin.H{"prompt": prompt})
}

// Random returns a uniformly random prompt, or a preference-weighted one
// for authenticated callers. `exclude` drops the currently shown prompt
// from the candidate set.
func (p *PromptController) Random(ctx *gin.Context) {
	var excludeID uint
	if v := ctx.Query("exclude"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			excludeID = uint(n)
		}
	}

	var prompt *models.Prompt
	var err error
	if userID, ok := getUserID(ctx); ok {
		prompt, err = p.preferredRandomPrompt(userID, excludeID)
	} else {
		prompt, err = p.randomPrompt(excludeID)
	}

	if err != nil {
		if errors.Is(err, errNoPrompts) {
			utils.Error(ctx, http.StatusNotFound, 40441, "no prompts available")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to pick prompt")
		return
	}
	utils.Success(ctx, gin.H{"prompt": prompt})
}

// randomPrompt picks uniformly at random, optionally excluding one id.
func (p *PromptController) randomPrompt(excludeID uint) (*models.Prompt, error) {
	q := p.db.Model(&models.Prompt{})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var prompts []models.Prompt
	if err := q.Find(&prompts).Error; err != nil {
		return nil, err
	}
	return choosePrompt(prompts)
}

// choosePrompt picks an element uniformly at random; an empty candidate
// set is an explicit error, never a nil result.
func choosePrompt(prompts []models.Prompt) (*models.Prompt, error) {
	if len(prompts) == 0 {
		return nil, errNoPrompts
	}
	return &prompts[rand.Intn(len(prompts))], nil
}

// preferredRandomPrompt weights the pick by the genres the user has
// written most. Any failure falls back to the uniform pick, as does a
// weighted result that matches the excluded id.
func (p *PromptController) preferredRandomPrompt(userID, excludeID uint) (*models.Prompt, error) {
	type genreCount struct {
		Genre string
		Cnt   int
	}
	var counts []genreCount
	err := p.db.Model(&models.Story{}).
		Select("prompts.genre AS genre, COUNT(*) AS cnt").
		Joins("JOIN prompts ON prompts.id = stories.prompt_id").
		Where("stories.user_id = ?", userID).
		Group("prompts.genre").
		Scan(&counts).Error
	if err != nil || len(counts) == 0 {
		if err != nil {
			utils.Sugar.Warnf("preferred prompt query failed, falling back to random: %v", err)
		}
		return p.randomPrompt(excludeID)
	}

	genres := make([]string, len(counts))
	weights := make([]int, len(counts))
	for i, c := range counts {
		genres[i] = c.Genre
		weights[i] = c.Cnt
	}
	genre := genres[weightedIndex(weights, rand.Intn)]

	var prompt models.Prompt
	if err := p.db.Where("genre = ?", genre).Order("RAND()").First(&prompt).Error; err != nil {
		return p.randomPrompt(excludeID)
	}
	// Re-roll uniformly when the weighted pick lands on the excluded prompt.
	if excludeID != 0 && prompt.ID == excludeID {
		return p.randomPrompt(excludeID)
	}
	return &prompt, nil
}

// weightedIndex picks an index with probability proportional to its
// weight. intn is injected for deterministic tests.
func weightedIndex(weights []int, intn func(int) int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	r := intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
