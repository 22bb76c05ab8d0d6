package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is a user's single shopping cart. One row per user; items are
// merged on (product, size) when added again.
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is a line in a cart. UnitPrice is the product price captured
// when the line was first added.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CartID    uint           `gorm:"not null;index" json:"cart_id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Size      string         `gorm:"type:varchar(20);not null" json:"size"`
	Color     string         `gorm:"type:varchar(50)" json:"color"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
