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

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrInvalidOrderStatus, code: response.CodeBadRequest, msg: "unknown order status"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid order input"},
}

// ListOrders returns orders across all users, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	if raw := c.Query("user_id"); raw != "" {
		if uid, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.UserID = uint(uid)
		}
	}
	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetOrder returns one order with its lines.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	order, err := h.OrderService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to fetch order")
		return
	}
	response.Success(c, order)
}

// UpdateOrderRequest is the order edit payload. Absent fields are
// left untouched.
type UpdateOrderRequest struct {
	ShippingFee *models.Money           `json:"shipping_fee"`
	Payment     *models.PaymentInfo     `json:"payment"`
	Shipping    *models.ShippingAddress `json:"shipping_address"`
}

// UpdateOrder edits an order. Totals are recomputed on save.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	order, err := h.OrderService.Update(uint(id), service.UpdateOrderInput{
		ShippingFee: req.ShippingFee,
		Payment:     req.Payment,
		Shipping:    req.Shipping,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to update order")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest carries the target status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to any known status. Reaching
// Delivered records the order's sales.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	order, err := h.OrderService.SetStatus(uint(id), req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to update order status")
		return
	}
	response.Success(c, order)
}

// DeleteOrder removes an order and its lines.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	if err := h.OrderService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to delete order")
		return
	}
	h.ReportService.InvalidateQuickStats()
	response.Success(c, gin.H{"deleted": true})
}
