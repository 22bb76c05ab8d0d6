package constants

// Order status constants
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses lists every recognized order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Payment method constants
const (
	PaymentMethodCOD  = "COD"
	PaymentMethodCard = "Card"
)

// User role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Counter name constants
const (
	CounterProductID = "product_id"
)

// Queue constants
const (
	QueueDefault         = "default"
	TaskOrderRecordSales = "order:record_sales"
)

// Cache defaults
const (
	RedisPrefixDefault = "sm"
)
