package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting admin confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by admin
	OrderStatusRejected  OrderStatus = "rejected"  // rejected by admin
)

// PaymentUPI is the only payment method the storefront accepts.
const PaymentUPI = "upi"

type OrderCustomer struct {
	Name    string `gorm:"not null" json:"name"`
	Mobile  string `gorm:"not null;index" json:"mobile"` // normalized to last 10 digits
	Address string `gorm:"not null" json:"address"`
}

type Order struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID      string        `gorm:"uniqueIndex;not null" json:"orderId"`
	DeliveryDate time.Time     `gorm:"not null" json:"deliveryDate"`
	Customer     OrderCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Payment      string        `gorm:"not null" json:"payment"`
	PaymentRef   string        `json:"paymentRef"`
	Status       OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items        []OrderItem   `gorm:"foreignKey:OrderRowID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Delivery     float64       `json:"delivery"`
	Total        float64       `json:"total"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// OrderItem is a point-in-time snapshot of a product; later product edits or
// deletes never touch it.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderRowID uint    `gorm:"index" json:"-"`
	ProductID  string  `gorm:"not null" json:"productId"`
	Title      string  `gorm:"not null" json:"title"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
}
