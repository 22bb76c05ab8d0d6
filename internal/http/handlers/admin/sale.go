package admin

import (
	"strconv"
	"time"

	handlershared "github.com/stylemart/internal/http/handlers/shared"
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var saleErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid sale input"},
}

func (h *Handler) saleListFilter(c *gin.Context) repository.SaleListFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.SaleListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
	}
	if raw := c.Query("product_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.ProductID = uint(id)
		}
	}
	if raw := c.Query("date_from"); raw != "" {
		if from, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateFrom = &from
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if to, err := time.Parse("2006-01-02", raw); err == nil {
			filter.DateTo = &to
		}
	}
	return filter
}

// ListProductSales returns product sale records, newest first.
func (h *Handler) ListProductSales(c *gin.Context) {
	filter := h.saleListFilter(c)
	sales, total, err := h.SaleService.ListProductSales(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list product sales", err)
		return
	}
	response.SuccessWithPage(c, sales, buildPagination(filter.Page, filter.PageSize, total))
}

// ListCategorySales returns category sale records, newest first.
func (h *Handler) ListCategorySales(c *gin.Context) {
	filter := h.saleListFilter(c)
	sales, total, err := h.SaleService.ListCategorySales(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list category sales", err)
		return
	}
	response.SuccessWithPage(c, sales, buildPagination(filter.Page, filter.PageSize, total))
}

// ProductSaleRequest is the manual product sale record payload.
type ProductSaleRequest struct {
	ProductID    uint       `json:"product_id" binding:"required"`
	Date         *time.Time `json:"date"`
	QuantitySold int        `json:"quantity_sold" binding:"required"`
	StockLeft    int        `json:"stock_left"`
}

// AddProductSale records a product sale outside the order flow.
func (h *Handler) AddProductSale(c *gin.Context) {
	var req ProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	sale := models.ProductSale{
		ProductID:    req.ProductID,
		QuantitySold: req.QuantitySold,
		StockLeft:    req.StockLeft,
	}
	if req.Date != nil {
		sale.Date = *req.Date
	}
	if err := h.SaleService.AddProductSale(sale); err != nil {
		respondWithMappedError(c, err, saleErrorRules, response.CodeInternal, "failed to record product sale")
		return
	}
	response.Created(c, gin.H{"recorded": true})
}

// CategorySaleRequest is the manual category sale record payload.
type CategorySaleRequest struct {
	Category     string     `json:"category" binding:"required"`
	Date         *time.Time `json:"date"`
	QuantitySold int        `json:"quantity_sold" binding:"required"`
}

// AddCategorySale records a category sale outside the order flow.
func (h *Handler) AddCategorySale(c *gin.Context) {
	var req CategorySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	sale := models.CategorySale{
		Category:     req.Category,
		QuantitySold: req.QuantitySold,
	}
	if req.Date != nil {
		sale.Date = *req.Date
	}
	if err := h.SaleService.AddCategorySale(sale); err != nil {
		respondWithMappedError(c, err, saleErrorRules, response.CodeInternal, "failed to record category sale")
		return
	}
	response.Created(c, gin.H{"recorded": true})
}
