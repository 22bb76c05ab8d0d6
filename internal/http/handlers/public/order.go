package public

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
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "order references an unknown product"},
	{target: service.ErrEmptyOrder, code: response.CodeBadRequest, msg: "order has no items"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, msg: "insufficient stock"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid order input"},
}

// OrderItemRequest is one line of the create-order payload. Title and
// price are optional; omitted values are snapshotted from the catalog.
type OrderItemRequest struct {
	ProductID uint          `json:"product_id" binding:"required"`
	Title     string        `json:"title"`
	Quantity  int           `json:"quantity" binding:"required"`
	Price     *models.Money `json:"price"`
	Size      string        `json:"size"`
	Color     string        `json:"color"`
}

// CreateOrderRequest is the place-order payload.
type CreateOrderRequest struct {
	Items       []OrderItemRequest      `json:"items" binding:"required"`
	ShippingFee *models.Money           `json:"shipping_fee"`
	Payment     *models.PaymentInfo     `json:"payment"`
	Shipping    *models.ShippingAddress `json:"shipping_address"`
}

// CreateOrder places an order for the signed-in user and clears
// their cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	input := service.CreateOrderInput{UserID: uid}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CreateOrderItemInput{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Size:      item.Size,
			Color:     item.Color,
		})
	}
	if req.ShippingFee != nil {
		input.ShippingFee = *req.ShippingFee
	} else if fee, err := models.NewMoneyFromString(h.Config.Order.DefaultShippingFee); err == nil {
		input.ShippingFee = fee
	}
	if req.Payment != nil {
		input.Payment = *req.Payment
	}
	if req.Shipping != nil {
		input.Shipping = *req.Shipping
	}

	order, err := h.OrderService.Create(input)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to create order")
		return
	}
	response.Created(c, order)
}

// ListMyOrders returns the signed-in user's orders, newest first.
func (h *Handler) ListMyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetMyOrder returns one of the signed-in user's orders.
func (h *Handler) GetMyOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}
	order, err := h.OrderService.GetForUser(uint(id), uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to fetch order")
		return
	}
	response.Success(c, order)
}
