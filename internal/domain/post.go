package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type Post struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Status      string         `gorm:"size:50;not null;default:draft" json:"status"` // "draft"/"published"
	ViewCount   int            `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Post) TableName() string { return "posts" }

type PostRepository interface {
	FindAll() ([]Post, error)
	FindByID(id string) (*Post, error)
	FindBySlug(slug string) (*Post, error)
	FindByStatus(status string) ([]Post, error)
	Create(p *Post) error
	Save(p *Post) error
	SoftDelete(id string) (*Post, error)
	HardDelete(id string) error
	// IncrementViewCount 单条 UPDATE，原子加一。
	IncrementViewCount(id string) error
	Count() (int64, error)
	FindPaginated(page, limit int) ([]Post, int64, error)
}
