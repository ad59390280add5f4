package service

import (
	"errors"

	"go-blog-api/internal/domain"
)

// ErrSlugExists 消息会原样透给调用方。
var ErrSlugExists = errors.New("Slug already exists")

type CreatePostInput struct {
	Title       string
	Slug        string
	Content     string
	Description string
	Status      string
}

type UpdatePostInput struct {
	Title       *string
	Slug        *string
	Content     *string
	Description *string
	Status      *string
	ViewCount   *int
}

type PostService struct {
	repo domain.PostRepository
}

func NewPostService(repo domain.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// GetAllPosts 公开列表只给已发布的，和仓储层“全部未删”的语义刻意不同。
func (s *PostService) GetAllPosts() ([]domain.Post, error) {
	return s.repo.FindByStatus(domain.PostStatusPublished)
}

// GetPostByID 命中即浏览数 +1。返回的是自增前读到的那一行。
func (s *PostService) GetPostByID(id string) (*domain.Post, error) {
	p, err := s.repo.FindByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	if err := s.repo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPostBySlug 不计浏览数。
func (s *PostService) GetPostBySlug(slug string) (*domain.Post, error) {
	return s.repo.FindBySlug(slug)
}

func (s *PostService) GetPostsByStatus(status string) ([]domain.Post, error) {
	return s.repo.FindByStatus(status)
}

// CreatePost slug 预检是乐观的（先查后写），真正的兜底是唯一索引。
func (s *PostService) CreatePost(in CreatePostInput) (*domain.Post, error) {
	existing, err := s.repo.FindBySlug(in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	status := in.Status
	if status == "" {
		status = domain.PostStatusDraft
	}
	p := &domain.Post{
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		Description: in.Description,
		Status:      status,
		ViewCount:   0,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePost 只在 slug 实际变化时重查冲突。
func (s *PostService) UpdatePost(id string, in UpdatePostInput) (*domain.Post, error) {
	p, err := s.repo.FindByID(id)
	if err != nil || p == nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != p.Slug {
		existing, err := s.repo.FindBySlug(*in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSlugExists
		}
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.ViewCount != nil {
		p.ViewCount = *in.ViewCount
	}
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// PublishPost 不看当前状态，重复发布也成功（幂等）。
func (s *PostService) PublishPost(id string) (*domain.Post, error) {
	p, err := s.repo.FindByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	p.Status = domain.PostStatusPublished
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) DeletePost(id string) (*domain.Post, error) {
	return s.repo.SoftDelete(id)
}
