package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a line in an order. Title and UnitPrice are snapshots
// taken at order time so later product edits or deletes do not change
// historical orders.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	Title     string         `gorm:"type:varchar(200)" json:"title"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Size      string         `gorm:"type:varchar(20)" json:"size,omitempty"`
	Color     string         `gorm:"type:varchar(50)" json:"color,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
