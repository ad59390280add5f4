package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/domain"
	"go-blog-api/internal/repo"
	"go-blog-api/internal/service"
	mdw "go-blog-api/internal/transport/http/middleware"
)

// envelope 测试侧的响应壳，data 留 raw 按用例再解
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Post{}))
	return db
}

// setupAPI 路由挂载方式与生产 router 一致，只是省掉限流等硬化链
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	l := zap.NewNop()
	userH := NewUserHandler(service.NewUserService(repo.NewUserRepo(db)), l)
	postH := NewPostHandler(service.NewPostService(repo.NewPostRepo(db)), l)
	healthH := NewHealthHandler("test")

	r := gin.New()
	r.GET("/", healthH.Welcome)
	api := r.Group("/api/v1")
	api.GET("/health", healthH.Check)

	users := api.Group("/users")
	users.GET("", mdw.RequireAuth(), userH.List)
	users.GET("/:id", mdw.RequireAuth(), userH.Get)
	users.POST("", userH.Create)
	users.PUT("/:id", mdw.RequireAuth(), mdw.RequireRole(auth.RoleAdmin), userH.Update)
	users.DELETE("/:id", mdw.RequireAuth(), mdw.RequireRole(auth.RoleAdmin), userH.Delete)

	posts := api.Group("/posts")
	posts.GET("", postH.List)
	posts.GET("/:id", postH.Get)
	posts.GET("/slug/:slug", postH.GetBySlug)
	posts.POST("", postH.Create)
	posts.PUT("/:id", postH.Update)
	posts.PATCH("/:id/publish", postH.Publish)
	posts.DELETE("/:id", postH.Delete)

	return r, db
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func bearer(role string) map[string]string {
	tok := auth.EncodeToken(auth.AuthContext{
		UserID: "caller-1",
		Email:  "caller@example.com",
		Name:   "Caller",
		Role:   role,
	})
	return map[string]string{"Authorization": "Bearer " + tok}
}
