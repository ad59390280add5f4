package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-blog-api/internal/core/auth"
	"go-blog-api/internal/service"
	mdw "go-blog-api/internal/transport/http/middleware"
	resp "go-blog-api/internal/transport/http/response"
	"go-blog-api/pkg/utils"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

type createUserReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type updateUserReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
	Role    *string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.GetAllUsers()
	if err != nil {
		h.log.Error("list users", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	resp.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.GetUserByID(c.Param("id"))
	if err != nil {
		h.log.Error("get user", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	resp.OK(c, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}
	if req.Name == "" || req.Email == "" {
		resp.Fail(c, http.StatusBadRequest, "Name and email are required")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		resp.Fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if req.Role != "" && req.Role != auth.RoleAdmin && req.Role != auth.RoleUser {
		resp.Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	u, err := h.svc.CreateUser(service.CreateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
	})
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Email already exists")
			return
		}
		h.log.Error("create user", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	resp.Created(c, u, "User created successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}
	if req.Email != nil && !utils.IsValidEmail(*req.Email) {
		resp.Fail(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	if ac, ok := mdw.AuthUser(c); ok {
		h.log.Info("admin action: update user",
			zap.String("admin", ac.Email), zap.String("target", id))
	}

	u, err := h.svc.UpdateUser(id, service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if isDupKey(err) {
			resp.Fail(c, http.StatusBadRequest, "Email already exists")
			return
		}
		h.log.Error("update user", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	resp.OKMessage(c, u, "User updated successfully")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if ac, ok := mdw.AuthUser(c); ok {
		h.log.Info("admin action: delete user",
			zap.String("admin", ac.Email), zap.String("target", id))
	}

	u, err := h.svc.DeleteUser(id)
	if err != nil {
		h.log.Error("delete user", zap.Error(err))
		resp.Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if u == nil {
		resp.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	resp.OKMessage(c, gin.H{"id": id}, "User deleted successfully")
}
