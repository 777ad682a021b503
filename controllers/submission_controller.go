package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// SubmissionController handles user prompt ideas and the admin review queue.
type SubmissionController struct {
	db *gorm.DB
}

// NewSubmissionController creates a new controller instance.
func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{db: db}
}

var (
	errTooFewElements  = errors.New("a prompt needs at least 3 story elements")
	errTooManyElements = errors.New("a prompt allows at most 4 story elements")
)

// CleanElements trims and drops empty entries, then enforces the 3-4
// element invariant. Order of the surviving elements is preserved.
// Validation happens before any store call.
func CleanElements(elements []string) ([]string, error) {
	if len(elements) > 4 {
		return nil, errTooManyElements
	}
	clean := make([]string, 0, len(elements))
	for _, el := range elements {
		if s := strings.TrimSpace(el); s != "" {
			clean = append(clean, s)
		}
	}
	if len(clean) < 3 {
		return nil, errTooFewElements
	}
	return clean, nil
}

// Create stores a new prompt submission in pending state.
func (s *SubmissionController) Create(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Genre    string   `json:"genre" binding:"required,min=1"`
		Elements []string `json:"elements" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40070, "invalid request payload")
		return
	}

	genre := strings.TrimSpace(req.Genre)
	if genre == "" {
		utils.Error(ctx, http.StatusBadRequest, 40071, "genre cannot be empty")
		return
	}

	clean, err := CleanElements(req.Elements)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40072, err.Error())
		return
	}

	submission := models.PromptSubmission{
		UserID:   userID,
		Genre:    genre,
		Elements: clean,
		Status:   models.SubmissionPending,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to create submission")
		return
	}

	utils.Success(ctx, gin.H{"submission": submission})
}

// ListMine returns the caller's submissions, newest first.
func (s *SubmissionController) ListMine(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var submissions []models.PromptSubmission
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&submissions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to list submissions")
		return
	}
	utils.Success(ctx, gin.H{"items": submissions})
}

// ListAll returns submissions for admin review, optionally filtered by
// status. The pending queue is oldest first so reviews happen in order.
func (s *SubmissionController) ListAll(ctx *gin.Context) {
	status := strings.TrimSpace(ctx.Query("status"))

	q := s.db.Model(&models.PromptSubmission{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if status == models.SubmissionPending {
		q = q.Order("created_at ASC")
	} else {
		q = q.Order("created_at DESC")
	}

	var submissions []models.PromptSubmission
	if err := q.Find(&submissions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to list submissions")
		return
	}
	utils.Success(ctx, gin.H{"items": submissions})
}

// Approve marks a pending submission approved and creates the prompt
// from it in the same transaction.
func (s *SubmissionController) Approve(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var prompt models.Prompt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var submission models.PromptSubmission
		if err := tx.First(&submission, ctx.Param("id")).Error; err != nil {
			return err
		}
		if submission.Status != models.SubmissionPending {
			return errSubmissionReviewed
		}

		now := time.Now()
		submission.Status = models.SubmissionApproved
		submission.ReviewedBy = &adminID
		submission.ReviewedAt = &now
		if err := tx.Save(&submission).Error; err != nil {
			return err
		}

		prompt = models.Prompt{
			Genre:     submission.Genre,
			Elements:  submission.Elements,
			IsActive:  true,
			CreatedBy: &submission.UserID,
		}
		return tx.Create(&prompt).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.Error(ctx, http.StatusNotFound, 40470, "submission not found")
		case errors.Is(err, errSubmissionReviewed):
			utils.Error(ctx, http.StatusBadRequest, 40073, "submission already reviewed")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50073, "failed to approve submission")
		}
		return
	}

	utils.InvalidateByPrefix("cache:prompt:")
	utils.Success(ctx, gin.H{"prompt": prompt})
}

var errSubmissionReviewed = errors.New("submission already reviewed")

// Reject marks a pending submission rejected with optional notes.
func (s *SubmissionController) Reject(ctx *gin.Context) {
	adminID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	// Body is optional; ignore bind errors for an empty body.
	_ = ctx.ShouldBindJSON(&req)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var submission models.PromptSubmission
		if err := tx.First(&submission, ctx.Param("id")).Error; err != nil {
			return err
		}
		if submission.Status != models.SubmissionPending {
			return errSubmissionReviewed
		}

		now := time.Now()
		submission.Status = models.SubmissionRejected
		submission.ReviewNotes = strings.TrimSpace(req.Notes)
		submission.ReviewedBy = &adminID
		submission.ReviewedAt = &now
		return tx.Save(&submission).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.Error(ctx, http.StatusNotFound, 40470, "submission not found")
		case errors.Is(err, errSubmissionReviewed):
			utils.Error(ctx, http.StatusBadRequest, 40073, "submission already reviewed")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50074, "failed to reject submission")
		}
		return
	}

	utils.Success(ctx, gin.H{"message": "submission rejected"})
}

// Stats returns submission counts grouped by status.
func (s *SubmissionController) Stats(ctx *gin.Context) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	if err := s.db.Model(&models.PromptSubmission{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50075, "failed to load submission stats")
		return
	}

	stats := gin.H{"total": int64(0), "pending": int64(0), "approved": int64(0), "rejected": int64(0)}
	var total int64
	for _, r := range rows {
		stats[r.Status] = r.Cnt
		total += r.Cnt
	}
	stats["total"] = total

	utils.Success(ctx, stats)
}
