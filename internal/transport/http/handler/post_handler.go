package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/service"
	resp "go-blog-api/internal/transport/http/response"
)

type PostHandler struct {
	svc *service.PostService
	log *zap.Logger
}

func NewPostHandler(svc *service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

type createPostReq struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updatePostReq struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	ViewCount   *int    `json:"viewCount"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.svc.GetAllPosts()
	if err != nil {
		h.log.Error("list posts", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	resp.OK(c, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.svc.GetPostByID(c.Param("id"))
	if err != nil {
		h.log.Error("get post", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	resp.OK(c, p)
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.svc.GetPostBySlug(c.Param("slug"))
	if err != nil {
		h.log.Error("get post by slug", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	resp.OK(c, p)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}
	if req.Title == "" || req.Slug == "" || req.Content == "" {
		resp.Fail(c, http.StatusBadRequest, "Title, slug, and content are required")
		return
	}

	p, err := h.svc.CreatePost(service.CreatePostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		// 预检与唯一索引两条路都归成同一条 400 提示
		if errors.Is(err, service.ErrSlugExists) || isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		h.log.Error("create post", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	resp.Created(c, p, "Post created successfully")
}

func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	p, err := h.svc.UpdatePost(c.Param("id"), service.UpdatePostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Description: req.Description,
		Status:      req.Status,
		ViewCount:   req.ViewCount,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) || isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		h.log.Error("update post", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	resp.OKMessage(c, p, "Post updated successfully")
}

func (h *PostHandler) Publish(c *gin.Context) {
	p, err := h.svc.PublishPost(c.Param("id"))
	if err != nil {
		h.log.Error("publish post", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to publish post")
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	resp.OKMessage(c, p, "Post published successfully")
}

func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	p, err := h.svc.DeletePost(id)
	if err != nil {
		h.log.Error("delete post", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if p == nil {
		resp.Fail(c, http.StatusNotFound, "Post not found")
		return
	}
	resp.OKMessage(c, gin.H{"id": id}, "Post deleted successfully")
}
