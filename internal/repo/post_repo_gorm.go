package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) FindAll() ([]domain.Post, error) {
	var ps []domain.Post
	err := r.db.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *PostRepo) FindByID(id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) FindBySlug(slug string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) FindByStatus(status string) ([]domain.Post, error) {
	var ps []domain.Post
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *PostRepo) Create(p *domain.Post) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return r.db.Create(p).Error
}

func (r *PostRepo) Save(p *domain.Post) error { return r.db.Save(p).Error }

func (r *PostRepo) SoftDelete(id string) (*domain.Post, error) {
	p, err := r.FindByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	if err := r.db.Delete(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepo) HardDelete(id string) error {
	return r.db.Unscoped().Delete(&domain.Post{}, "id = ?", id).Error
}

// IncrementViewCount 交给存储引擎做原子自增，避免读改写竞态。
func (r *PostRepo) IncrementViewCount(id string) error {
	return r.db.Model(&domain.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *PostRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Post{}).Count(&n).Error
	return n, err
}

func (r *PostRepo) FindPaginated(page, limit int) ([]domain.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	var total int64
	if err := r.db.Model(&domain.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ps []domain.Post
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ps).Error
	if err != nil {
		return nil, 0, err
	}
	return ps, total, nil
}
