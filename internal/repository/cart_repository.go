package repository

import (
	"errors"

	"github.com/stylemart/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	FindItem(cartID, productID uint, size string) (*models.CartItem, error)
	GetItem(cartID, itemID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(cartID, itemID uint) error
	ClearItems(cartID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction runs fn in a transaction.
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByUser fetches the user's cart with items and products, nil when
// the user has no cart yet.
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.created_at ASC, cart_items.id ASC")
	}).Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUser fetches the user's cart, creating an empty one on
// first use.
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	created := models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := r.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// FindItem looks up a line by (product, size), nil when absent.
func (r *GormCartRepository) FindItem(cartID, productID uint, size string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem fetches a line by ID within the cart, nil when absent.
func (r *GormCartRepository) GetItem(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a cart line.
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateItemQuantity sets a line's quantity.
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteItem removes a line from the cart.
func (r *GormCartRepository) DeleteItem(cartID, itemID uint) error {
	return r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{}).Error
}

// ClearItems removes every line from the cart.
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
