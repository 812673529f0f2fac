package domain

import "time"

// Input shapes accepted by the API, one per write operation. Each declares
// an explicit copy function onto its target entity: ToXxx builds a fresh
// entity, ApplyTo overwrites the declared fields of a loaded one and leaves
// identifier and relationships alone.

type CreateCustomerInput struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (in *CreateCustomerInput) ToCustomer() *Customer {
	return &Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
	}
}

type UpdateCustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (in *UpdateCustomerInput) ApplyTo(c *Customer) {
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.PhoneNumber = in.PhoneNumber
	c.Address = in.Address
}

type CreateProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (in *CreateProductInput) ToProduct() *Product {
	return &Product{
		Name:  in.Name,
		Price: in.Price,
	}
}

type UpdateProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (in *UpdateProductInput) ApplyTo(p *Product) {
	p.Name = in.Name
	p.Price = in.Price
}

type UpdateOrderInput struct {
	OrderPlaced    time.Time  `json:"order_placed"`
	OrderFulfilled *time.Time `json:"order_fulfilled"`
	CustomerID     string     `json:"customer_id"`
}

func (in *UpdateOrderInput) ApplyTo(o *Order) {
	o.OrderPlaced = in.OrderPlaced
	o.OrderFulfilled = in.OrderFulfilled
	o.CustomerID = in.CustomerID
}

type UpdateOrderDetailInput struct {
	Quantity int `json:"quantity"`
}

func (in *UpdateOrderDetailInput) ApplyTo(od *OrderDetail) {
	od.Quantity = in.Quantity
}

// OrderItemInput is one (product, quantity) line of a create-order request.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// CreateOrderDetailInput creates a standalone order-detail row outside the
// order-creation workflow.
type CreateOrderDetailInput struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (in *CreateOrderDetailInput) ToOrderDetail() *OrderDetail {
	return &OrderDetail{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
}
