package domain

import "time"

// Customer represents a store customer. Orders reference the customer by
// foreign key only; deleting a customer does not touch its orders.
type Customer struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName   string    `gorm:"size:200" json:"first_name"`
	LastName    string    `gorm:"size:200" json:"last_name"`
	Email       string    `gorm:"size:200" json:"email,omitempty"`
	PhoneNumber string    `gorm:"size:50" json:"phone_number,omitempty"`
	Address     string    `gorm:"size:500" json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
