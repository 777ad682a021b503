package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dailyquil/dailyquil/models"
)

// PageViewRecorder counts successful content reads per day and route.
// The aggregate feeds the daily-active figure on the stats endpoint.
func PageViewRecorder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" {
			return
		}
		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		// Route pattern, not the raw URL, so /prompts/1 and /prompts/2
		// share one row and cardinality stays bounded.
		path := c.FullPath()
		if path == "" || path == "/health" || strings.HasPrefix(path, "/internal/") || strings.HasSuffix(path, "/stats") {
			return
		}

		// Local midnight aligns with the DATE column
		now := time.Now().In(time.Local)
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		// Atomic upsert to avoid duplicate key errors under concurrency
		_ = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
		}).Create(&models.PageView{Date: day, Path: path, Count: 1}).Error
	}
}
