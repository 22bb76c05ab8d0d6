package admin

import (
	"strconv"

	handlershared "github.com/stylemart/internal/http/handlers/shared"
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid product input"},
}

// ProductRequest is the create/update product payload.
type ProductRequest struct {
	Title       string       `json:"title" binding:"required"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Stock       int          `json:"stock"`
	Images      []string     `json:"images"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Images:      r.Images,
	}
}

// ListProducts returns the full catalog for the admin console,
// including products in inactive categories.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}
	response.SuccessWithPage(c, products, buildPagination(page, pageSize, total))
}

// CreateProduct adds a product. Its id is allocated from the product
// counter, so ids are sequential across concurrent creates.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "failed to create product")
		return
	}
	h.ReportService.InvalidateQuickStats()
	response.Created(c, product)
}

// UpdateProduct edits a product. The id never changes.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	product, err := h.ProductService.Update(uint(id), req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "failed to update product")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product. Order lines keep their snapshots.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	if err := h.ProductService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "failed to delete product")
		return
	}
	h.ReportService.InvalidateQuickStats()
	response.Success(c, gin.H{"deleted": true})
}
