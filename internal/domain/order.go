package domain

import "time"

// Order is the parent of the order-detail rows created with it.
// Customer and OrderItems are populated only by preloaded reads; the
// persistent relationship is the CustomerID foreign key.
type Order struct {
	ID             string        `gorm:"primaryKey;size:36" json:"id"`
	OrderPlaced    time.Time     `json:"order_placed"`
	OrderFulfilled *time.Time    `json:"order_fulfilled,omitempty"`
	CustomerID     string        `gorm:"index;size:36" json:"customer_id"`
	Customer       *Customer     `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	OrderItems     []OrderDetail `gorm:"foreignKey:OrderID;references:ID" json:"order_items"`
}
