package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-blog-api/internal/transport/http/response"
)

// Recovery panic 也要回统一响应壳；栈信息只进日志，不出网。
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				resp.AbortFail(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
