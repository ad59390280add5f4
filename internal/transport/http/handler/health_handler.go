package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	resp "go-blog-api/internal/transport/http/response"
)

type HealthHandler struct {
	env   string
	start time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, start: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	resp.OKMessage(c, gin.H{
		"uptime":      time.Since(h.start).Seconds(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
	}, "Server is healthy")
}

// Welcome 根路径欢迎页。
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(200, gin.H{
		"success":   true,
		"message":   "Welcome to the Blog Backend API",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
