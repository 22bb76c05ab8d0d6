package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentInfo is the payment sub-record embedded in an order.
type PaymentInfo struct {
	Method        string `gorm:"type:varchar(20);default:'COD'" json:"method"`
	Paid          bool   `gorm:"default:false" json:"paid"`
	TransactionID string `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
}

// ShippingAddress is the shipping sub-record embedded in an order.
type ShippingAddress struct {
	Name         string `gorm:"type:varchar(100)" json:"name"`
	Phone        string `gorm:"type:varchar(30)" json:"phone"`
	AddressLine1 string `gorm:"type:varchar(200)" json:"address_line1"`
	AddressLine2 string `gorm:"type:varchar(200)" json:"address_line2,omitempty"`
	City         string `gorm:"type:varchar(100)" json:"city"`
	State        string `gorm:"type:varchar(100)" json:"state"`
	PostalCode   string `gorm:"type:varchar(20)" json:"postal_code"`
	Country      string `gorm:"type:varchar(100)" json:"country"`
}

// Order is the order aggregate. Subtotal and Total are derived from
// the items in BeforeSave and never trusted from callers.
type Order struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Status      string          `gorm:"index;not null;default:'Pending'" json:"status"`
	Subtotal    Money           `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	ShippingFee Money           `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`
	Total       Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	Payment     PaymentInfo     `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Shipping    ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// BeforeSave recomputes the money totals from the items. Skipped when
// the items were not loaded so a bare column update cannot zero the
// totals.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.Items == nil {
		return nil
	}
	subtotal := decimal.Zero
	for _, item := range o.Items {
		line := item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	o.Subtotal = NewMoneyFromDecimal(subtotal)
	o.Total = NewMoneyFromDecimal(subtotal.Add(o.ShippingFee.Decimal))
	return nil
}
