package domain

// OrderDetail is a single product/quantity line of an order. The parent
// order is referenced by OrderID only; there is no back pointer, which keeps
// the Order -> OrderItems JSON output cycle free.
type OrderDetail struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	Quantity  int      `json:"quantity"`
	ProductID string   `gorm:"index;size:36" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	OrderID   string   `gorm:"index;size:36" json:"order_id"`
}
