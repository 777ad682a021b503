package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/config"
	"github.com/dailyquil/dailyquil/controllers"
	"github.com/dailyquil/dailyquil/middleware"
	"github.com/dailyquil/dailyquil/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))
	// Record PV after each request
	r.Use(middleware.PageViewRecorder(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	promptController := controllers.NewPromptController(db)
	storyController := controllers.NewStoryController(db)
	submissionController := controllers.NewSubmissionController(db)
	reflectionController := controllers.NewReflectionController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	statsController := controllers.NewStatsController(db)
	reminderController := controllers.NewReminderController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	// Prompts are readable without an account. The random pick honors
	// the caller's genre history when a valid token is present.
	promptsGroup := api.Group("/prompts")
	promptsGroup.GET("/today", promptController.GetToday)
	promptsGroup.GET("/random", middleware.AuthOptional(), promptController.Random)
	promptsGroup.GET("", promptController.List)
	promptsGroup.GET("/:id", promptController.Get)
	promptsGroup.GET("/:id/stories", storyController.ListByPrompt)

	// Public story surface
	api.GET("/stories", storyController.PublicFeed)
	api.GET("/stories/:id", middleware.AuthOptional(), storyController.Get)

	// Public stats endpoint
	api.GET("/stats", statsController.GetStats)
	// Public user by username
	api.GET("/user/by-username/:username", authController.GetUserPublicByUsername)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.POST("/stories", storyController.Create)
	protected.PUT("/stories/:id", storyController.Update)
	protected.DELETE("/stories/:id", storyController.Delete)
	protected.GET("/users/me/stories", storyController.ListMine)

	protected.POST("/submissions", submissionController.Create)
	protected.GET("/users/me/submissions", submissionController.ListMine)

	protected.POST("/reflections", reflectionController.Create)
	protected.GET("/users/me/reflections", reflectionController.List)

	protected.GET("/users/me/analytics", analyticsController.List)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired(db))
	admin.GET("/submissions", submissionController.ListAll)
	admin.GET("/submissions/stats", submissionController.Stats)
	admin.POST("/submissions/:id/approve", submissionController.Approve)
	admin.POST("/submissions/:id/reject", submissionController.Reject)

	// Scheduler-facing trigger, guarded by the cron secret inside the
	// handler rather than by user auth.
	r.POST("/internal/reminders/dispatch", reminderController.Dispatch)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
