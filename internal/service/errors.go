package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUploadInvalidType  = errors.New("file type not allowed")
	ErrUploadTooLarge     = errors.New("file too large")
)
