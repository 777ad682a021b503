package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dailyquil/dailyquil/middleware"
)

// responseWrapper mirrors utils.Envelope for caching full response bodies.
type responseWrapper struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func wrap(data interface{}) responseWrapper {
	return responseWrapper{Code: 0, Message: "success", Data: data}
}

// getUserID extracts the authenticated user id placed by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// parsePagination normalizes page / page_size query values.
func parsePagination(pageStr, sizeStr string) (int, int) {
	page, pageSize := 1, 10
	if v := strings.TrimSpace(pageStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(sizeStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
