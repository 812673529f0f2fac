package store

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository interface {
	// List retrieves all customers
	List(ctx context.Context) ([]domain.Customer, error)

	// GetByID retrieves a customer by ID
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// ListOrders retrieves all orders placed by a customer
	ListOrders(ctx context.Context, customerID string) ([]domain.Order, error)

	// Create inserts a new customer
	Create(ctx context.Context, c *domain.Customer) error

	// Save persists changes to an existing customer
	Save(ctx context.Context, c *domain.Customer) error

	// Delete removes a customer
	Delete(ctx context.Context, id string) error
}

// GormCustomerRepository is the GORM implementation of CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) ListOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

func (r *GormCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormCustomerRepository) Save(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Customer{}).Error
}
