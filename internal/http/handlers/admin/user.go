package admin

import (
	"strconv"

	handlershared "github.com/stylemart/internal/http/handlers/shared"
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/repository"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var userErrorRules = []mappedHandlerError{
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "user not found"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, msg: "email already registered"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid user input"},
}

// ListUsers returns accounts, filterable by keyword and role.
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list users", err)
		return
	}
	response.SuccessWithPage(c, users, buildPagination(page, pageSize, total))
}

// CreateUserRequest is the create account payload. The role defaults
// to admin when omitted.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// CreateUser adds an account from the admin console.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	user, err := h.UserService.Create(service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "failed to create user")
		return
	}
	response.Created(c, user)
}

// UpdateUserRoleRequest carries the target role.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole switches an account between user and admin.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	user, err := h.UserService.UpdateRole(uint(id), req.Role)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "failed to update user role")
		return
	}
	response.Success(c, user)
}

// DeleteUser removes an account.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return
	}
	if err := h.UserService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, userErrorRules, response.CodeInternal, "failed to delete user")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
