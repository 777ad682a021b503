package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/utils"
)

// AdminRequired ensures the authenticated user has the admin flag set.
// Must run after AuthRequired.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextUserIDKey)
		if !exists {
			utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
			ctx.Abort()
			return
		}

		var user models.User
		if err := db.Select("id", "is_admin").First(&user, userID).Error; err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
			ctx.Abort()
			return
		}
		if !user.IsAdmin {
			utils.Error(ctx, http.StatusForbidden, 40301, "admin access required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
