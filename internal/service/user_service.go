package service

import (
	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/domain"
)

type CreateUserInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Role    string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetAllUsers() ([]domain.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) GetUserByID(id string) (*domain.User, error) {
	return s.repo.FindByID(id)
}

// CreateUser 固定 status=active。邮箱唯一不在这里预检，
// 由存储层唯一索引兜底，冲突由调用方翻译成用户可见的提示。
func (s *UserService) CreateUser(in CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = auth.RoleUser
	}
	u := &domain.User{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Status:  domain.UserStatusActive,
		Role:    role,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser 只覆盖传入的 name/email；不会校验新邮箱与其他用户冲突
//（历史行为，唯一索引仍会拦住真正的重复写入）。
func (s *UserService) UpdateUser(id string, in UpdateUserInput) (*domain.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if err := s.repo.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeleteUser(id string) (*domain.User, error) {
	return s.repo.SoftDelete(id)
}
