package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserStatusActive = "active"
)

type User struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string         `gorm:"size:255" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	Status    string         `gorm:"size:50;not null;default:active" json:"status"`
	Role      string         `gorm:"size:50;not null;default:user" json:"role"` // "user"/"admin"
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserRepository 所有读路径都排除软删行。
type UserRepository interface {
	FindAll() ([]User, error)
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Create(u *User) error
	Save(u *User) error
	SoftDelete(id string) (*User, error)
	HardDelete(id string) error
	Count() (int64, error)
	FindPaginated(page, limit int) ([]User, int64, error)
}
