package admin

import (
	"strconv"

	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
	{target: service.ErrCategoryExists, code: response.CodeBadRequest, msg: "category name already exists"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid category input"},
}

// CategoryRequest is the create/update category payload.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories returns all categories, active or not.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list categories", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory adds a category. Names are unique ignoring case.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "failed to create category")
		return
	}
	response.Created(c, category)
}

// UpdateCategory edits a category. Renaming does not rewrite the
// category names stored on products.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	category, err := h.CategoryService.Update(uint(id), service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "failed to update category")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category. Products keep the stale name.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}
	if err := h.CategoryService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "failed to delete category")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
