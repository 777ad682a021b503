package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON shape of every API response. Code 0
// means success; non-zero codes identify the specific failure.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope around data.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Envelope{Code: 0, Message: "success", Data: data})
}

// Error writes an error envelope with the given HTTP status and
// application error code.
func Error(ctx *gin.Context, status, code int, message string) {
	ctx.JSON(status, Envelope{Code: code, Message: message})
}
