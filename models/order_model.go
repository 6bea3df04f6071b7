package models

import (
	"storefront-app/types"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentMethodTransfer = "transfer"
	PaymentMethodCOD      = "cod"
)

type OrderHeader struct {
	gorm.Model
	OrderNo       types.SnowflakeID `json:"order_no" gorm:"uniqueIndex"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Address       string            `json:"address"`
	Status        string            `json:"status" gorm:"default:pending"`
	PaymentMethod string            `json:"payment_method"`
	ShippingCost  float64           `json:"shipping_cost"`
	Total         float64           `json:"total"`
	Items         []OrderItem       `json:"items" gorm:"foreignKey:OrderID"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
