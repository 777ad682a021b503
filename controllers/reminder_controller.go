package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/config"
	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// ReminderController runs the reminder dispatch pass. It is triggered by
// an external scheduler hitting the internal endpoint; the controller
// itself keeps no timer state.
type ReminderController struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReminderController creates a new controller instance.
func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{db: db, now: time.Now}
}

// DispatchResult aggregates the outcome of one reminder pass.
type DispatchResult struct {
	Sent    int
	Skipped int
	Failed  int
}

// Total returns the number of profiles processed.
func (r DispatchResult) Total() int {
	return r.Sent + r.Skipped + r.Failed
}

// DispatchTo walks the eligible users in order and sends each one a
// reminder. Users who already wrote today are skipped; any error for a
// single user counts as failed and the pass continues. wroteToday and
// send are injected so the loop can be exercised without a database or
// a mail provider.
func DispatchTo(users []models.User, wroteToday func(models.User) (bool, error), send func(models.User) error) DispatchResult {
	var result DispatchResult
	for _, u := range users {
		wrote, err := wroteToday(u)
		if err != nil {
			result.Failed++
			continue
		}
		if wrote {
			result.Skipped++
			continue
		}
		if err := send(u); err != nil {
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result
}

// Dispatch handles the internal trigger endpoint. Unlike the public API
// it answers with a flat JSON document so schedulers can parse it
// without knowing the site envelope.
func (r *ReminderController) Dispatch(ctx *gin.Context) {
	cfg := config.Get()

	secret := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if cfg.CronSecret == "" || secret != cfg.CronSecret {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if !utils.MailerConfigured() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "email service is not configured"})
		return
	}

	prompt, err := todayPrompt(r.db)
	if err != nil || prompt == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no prompt available for today"})
		return
	}

	var users []models.User
	if err := r.db.Where("enable_email_reminders = ? AND email <> ''", true).Find(&users).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminder profiles"})
		return
	}

	now := r.now().UTC()
	if len(users) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "no users with reminders enabled", "sent": 0, "skipped": 0, "failed": 0, "total": 0})
		return
	}

	eligible := FilterEligible(users, now.Hour(), now.Minute(), cfg.ReminderWindowMinutes)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	wroteToday := func(u models.User) (bool, error) {
		var n int64
		err := r.db.Model(&models.Story{}).
			Where("user_id = ? AND created_at >= ?", u.ID, dayStart).
			Count(&n).Error
		return n > 0, err
	}
	send := func(u models.User) error {
		html := RenderReminderEmail(u, *prompt, cfg.SiteBaseURL)
		return utils.SendMail(u.Email, ReminderSubject(u), html)
	}

	result := DispatchTo(eligible, wroteToday, send)

	utils.Sugar.Infow("reminder dispatch finished",
		"eligible", len(eligible),
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
		"total":   result.Total(),
	})
}
