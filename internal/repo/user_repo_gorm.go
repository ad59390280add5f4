package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) FindAll() ([]domain.User, error) {
	var us []domain.User
	err := r.db.Order("created_at DESC").Find(&us).Error
	return us, err
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	return r.db.Create(u).Error
}

func (r *UserRepo) Save(u *domain.User) error { return r.db.Save(u).Error }

// SoftDelete 找不到（含已软删）返回 nil, nil。
func (r *UserRepo) SoftDelete(id string) (*domain.User, error) {
	u, err := r.FindByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	if err := r.db.Delete(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// HardDelete 物理删除，连软删行一起清掉。没有任何 HTTP 流程会走到这里。
func (r *UserRepo) HardDelete(id string) error {
	return r.db.Unscoped().Delete(&domain.User{}, "id = ?", id).Error
}

func (r *UserRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Count(&n).Error
	return n, err
}

func (r *UserRepo) FindPaginated(page, limit int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var us []domain.User
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&us).Error
	if err != nil {
		return nil, 0, err
	}
	return us, total, nil
}
