package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item. The primary key is not auto-incremented
// by the database; the repository assigns it from the product_id
// counter when the product is created.
type Product struct {
	ID          uint           `gorm:"primarykey;autoIncrement:false" json:"product_id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	Images      StringArray    `gorm:"type:json" json:"images"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
