package service

import (
	"strings"

	"github.com/stylemart/internal/constants"
	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/queue"
	"github.com/stylemart/internal/repository"

	"gorm.io/gorm"
)

// OrderService is the order business service.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
	saleService *SaleService
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, queueClient *queue.Client, saleService *SaleService) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
		saleService: saleService,
	}
}

// CreateOrderItemInput is one requested order line.
type CreateOrderItemInput struct {
	ProductID uint
	Title     string
	Quantity  int
	UnitPrice *models.Money
	Size      string
	Color     string
}

// CreateOrderInput carries the create-order fields.
type CreateOrderInput struct {
	UserID      uint
	Items       []CreateOrderItemInput
	ShippingFee models.Money
	Payment     models.PaymentInfo
	Shipping    models.ShippingAddress
}

// Create places an order. Item titles and prices are snapshotted from
// the catalog when the caller leaves them empty; the subtotal and
// total are always recomputed from the lines when the row is saved.
// Stock is decremented per line in the same transaction as the order
// insert, so an order never exists without its stock reserved.
// The user's cart is cleared afterwards on a best effort basis: a
// failed clear is logged, not rolled back.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	productIDs := make([]uint, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, ErrInvalidInput
		}
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = product.Title
		}
		unitPrice := product.Price
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Title:     title,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	payment := input.Payment
	if strings.TrimSpace(payment.Method) == "" {
		payment.Method = constants.PaymentMethodCOD
	}

	order := models.Order{
		UserID:      input.UserID,
		Status:      constants.OrderStatusPending,
		ShippingFee: input.ShippingFee,
		Payment:     payment,
		Shipping:    input.Shipping,
		Items:       items,
	}
	if err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)
		for _, item := range order.Items {
			affected, err := products.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}
		return s.orderRepo.WithTx(tx).Create(&order)
	}); err != nil {
		return nil, err
	}

	s.clearCartAfterOrder(input.UserID, order.ID)

	return s.orderRepo.GetByID(order.ID)
}

func (s *OrderService) clearCartAfterOrder(userID, orderID uint) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		logger.Warnw("order_cart_clear_lookup_failed", "user_id", userID, "order_id", orderID, "error", err)
		return
	}
	if cart == nil {
		return
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		logger.Warnw("order_cart_clear_failed", "user_id", userID, "order_id", orderID, "error", err)
	}
}

// Get fetches one order with items.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetForUser fetches an order only when it belongs to the user.
func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns orders matching the filter.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateOrderInput carries the general-edit fields. Nil means leave
// the field alone.
type UpdateOrderInput struct {
	ShippingFee *models.Money
	Payment     *models.PaymentInfo
	Shipping    *models.ShippingAddress
}

// Update applies general edits. The order is re-saved with its items
// loaded, so the totals are recomputed against the new shipping fee.
func (s *OrderService) Update(id uint, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if input.ShippingFee != nil {
		order.ShippingFee = *input.ShippingFee
	}
	if input.Payment != nil {
		order.Payment = *input.Payment
	}
	if input.Shipping != nil {
		order.Shipping = *input.Shipping
	}
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus moves the order to the given status. Any recognized
// status is accepted from any other; there is no transition graph.
// Reaching Delivered triggers the sales recording task.
func (s *OrderService) SetStatus(id uint, status string) (*models.Order, error) {
	if !isKnownOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	previous := order.Status
	order.Status = status
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}

	if status == constants.OrderStatusDelivered && previous != constants.OrderStatusDelivered {
		s.recordSales(order.ID)
	}
	return order, nil
}

func (s *OrderService) recordSales(orderID uint) {
	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderRecordSales(queue.OrderRecordSalesPayload{OrderID: orderID}); err != nil {
			logger.Errorw("order_record_sales_enqueue_failed", "order_id", orderID, "error", err)
		}
		return
	}
	if s.saleService == nil {
		return
	}
	if err := s.saleService.RecordOrderSales(orderID); err != nil {
		logger.Errorw("order_record_sales_failed", "order_id", orderID, "error", err)
	}
}

// Delete removes an order and its lines.
func (s *OrderService) Delete(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(id)
}

func isKnownOrderStatus(status string) bool {
	for _, known := range constants.OrderStatuses {
		if status == known {
			return true
		}
	}
	return false
}
