package public

import (
	"strconv"

	handlershared "github.com/stylemart/internal/http/handlers/shared"
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/repository"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the paginated catalog, optionally filtered by
// category name or a title/description search.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}
	response.SuccessWithPage(c, products, buildPagination(page, pageSize, total))
}

// GetProduct returns one product by its numeric id.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	product, err := h.ProductService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
		}, response.CodeInternal, "failed to fetch product")
		return
	}
	response.Success(c, product)
}

// ListCategories returns active categories for the storefront.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(true)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list categories", err)
		return
	}
	response.Success(c, categories)
}

// GetCategory returns one category by id.
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}
	category, err := h.CategoryService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
		}, response.CodeInternal, "failed to fetch category")
		return
	}
	response.Success(c, category)
}
