package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-blog-api/internal/domain"
	"go-blog-api/internal/repo"
)

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

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := openTestDB(t)
	return NewUserService(repo.NewUserRepo(db)), db
}

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	db := openTestDB(t)
	return NewPostService(repo.NewPostRepo(db)), db
}
