package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/repo"
	"go-blog-api/internal/service"
	"go-blog-api/internal/transport/http/handler"
	mdw "go-blog-api/internal/transport/http/middleware"
)

// NewAPIEngine 组装整条中间件链和 /api/v1 路由。
func NewAPIEngine(l *zap.Logger, db *gorm.DB, env string) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	userH := handler.NewUserHandler(service.NewUserService(repo.NewUserRepo(db)), l)
	postH := handler.NewPostHandler(service.NewPostService(repo.NewPostRepo(db)), l)
	healthH := handler.NewHealthHandler(env)

	r.GET("/", healthH.Welcome)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/health", healthH.Check)

	users := api.Group("/users")
	{
		users.GET("", mdw.RequireAuth(), userH.List)
		users.GET("/:id", mdw.RequireAuth(), userH.Get)
		// 注册入口，公开
		users.POST("", userH.Create)
		users.PUT("/:id", mdw.RequireAuth(), mdw.RequireRole(auth.RoleAdmin), userH.Update)
		users.DELETE("/:id", mdw.RequireAuth(), mdw.RequireRole(auth.RoleAdmin), userH.Delete)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", postH.List)
		posts.GET("/:id", postH.Get)
		posts.GET("/slug/:slug", postH.GetBySlug)
		posts.POST("", postH.Create)
		posts.PUT("/:id", postH.Update)
		posts.PATCH("/:id/publish", postH.Publish)
		posts.DELETE("/:id", postH.Delete)
	}

	return r
}
