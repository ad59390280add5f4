package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope 所有端点统一的响应壳，success/timestamp 永远在。
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Timestamp: now()})
}

func OKMessage(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: msg, Timestamp: now()})
}

func Created(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: msg, Timestamp: now()})
}

func Fail(c *gin.Context, status int, errMsg string) {
	c.JSON(status, Envelope{Success: false, Error: errMsg, Timestamp: now()})
}

// AbortFail 中间件用：短路后续 handler。
func AbortFail(c *gin.Context, status int, errMsg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: errMsg, Timestamp: now()})
}
