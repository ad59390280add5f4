package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/core/auth"
	resp "go-blog-api/internal/transport/http/response"
)

const authContextKey = "authContext"

// RequireAuth 解出 AuthContext 挂到请求上，失败一律 401，不进 handler。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.ExtractToken(c.GetHeader("Authorization"))
		if !ok {
			resp.AbortFail(c, http.StatusUnauthorized, "Missing or invalid authorization token")
			return
		}
		ac, ok := auth.DecodeToken(token)
		if !ok {
			resp.AbortFail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(authContextKey, ac)
		c.Next()
	}
}

// RequireRole 必须排在 RequireAuth 之后；没有上下文说明路由配置错了。
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, ok := AuthUser(c)
		if !ok {
			resp.AbortFail(c, http.StatusUnauthorized,
				"User context not found. Use requireAuth middleware first.")
			return
		}
		if ac.Role != role {
			resp.AbortFail(c, http.StatusForbidden,
				fmt.Sprintf("Access denied. This action requires %s role.", role))
			return
		}
		c.Next()
	}
}

// AuthUser 取当前请求的身份。
func AuthUser(c *gin.Context) (*auth.AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	ac, ok := v.(*auth.AuthContext)
	return ac, ok
}
