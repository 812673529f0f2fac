package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateCustomerInputToCustomer(t *testing.T) {
	in := CreateCustomerInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john@example.com",
		PhoneNumber: "555-0100",
		Address:     "1 Main St",
	}
	c := in.ToCustomer()
	assert.Empty(t, c.ID)
	assert.Equal(t, "John", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
	assert.Equal(t, "john@example.com", c.Email)
	assert.Equal(t, "555-0100", c.PhoneNumber)
	assert.Equal(t, "1 Main St", c.Address)
}

func TestUpdateCustomerInputApplyTo(t *testing.T) {
	c := Customer{ID: "fixed-id", FirstName: "Old", LastName: "Name"}
	in := UpdateCustomerInput{FirstName: "New", LastName: "Name", Email: "new@example.com"}
	in.ApplyTo(&c)

	// identifier stays untouched
	assert.Equal(t, "fixed-id", c.ID)
	assert.Equal(t, "New", c.FirstName)
	assert.Equal(t, "new@example.com", c.Email)
}

func TestUpdateOrderInputApplyTo(t *testing.T) {
	placed := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	fulfilled := placed.Add(48 * time.Hour)
	o := Order{
		ID:         "fixed-id",
		OrderItems: []OrderDetail{{ID: "d1"}},
	}
	in := UpdateOrderInput{OrderPlaced: placed, OrderFulfilled: &fulfilled, CustomerID: "c1"}
	in.ApplyTo(&o)

	assert.Equal(t, "fixed-id", o.ID)
	assert.Equal(t, placed, o.OrderPlaced)
	assert.Equal(t, &fulfilled, o.OrderFulfilled)
	assert.Equal(t, "c1", o.CustomerID)
	// relationships stay untouched
	assert.Len(t, o.OrderItems, 1)
}

func TestUpdateOrderDetailInputApplyTo(t *testing.T) {
	od := OrderDetail{ID: "fixed-id", Quantity: 1, ProductID: "p1", OrderID: "o1"}
	in := UpdateOrderDetailInput{Quantity: 5}
	in.ApplyTo(&od)

	assert.Equal(t, 5, od.Quantity)
	assert.Equal(t, "p1", od.ProductID)
	assert.Equal(t, "o1", od.OrderID)
}

func TestUpdateProductInputApplyTo(t *testing.T) {
	p := Product{ID: "fixed-id", Name: "Widget", Price: 9.99}
	in := UpdateProductInput{Name: "Widget v2", Price: 14.99}
	in.ApplyTo(&p)

	assert.Equal(t, "fixed-id", p.ID)
	assert.Equal(t, "Widget v2", p.Name)
	assert.Equal(t, 14.99, p.Price)
}
