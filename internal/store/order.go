package store

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders
type OrderRepository interface {
	// List retrieves all orders with customer and items (and each item's
	// product) resolved
	List(ctx context.Context) ([]domain.Order, error)

	// GetByID retrieves an order without resolving relationships; used by
	// write paths so a later Save touches only the order row
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// GetWithRelations retrieves an order with customer and items->product
	// resolved
	GetWithRelations(ctx context.Context, id string) (*domain.Order, error)

	// Create inserts an order together with its order-detail rows as one unit
	Create(ctx context.Context, o *domain.Order) error

	Save(ctx context.Context, o *domain.Order) error

	Delete(ctx context.Context, id string) error
}

// GormOrderRepository is the GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("OrderItems.Product").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) GetWithRelations(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("OrderItems.Product").
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	// GORM persists the OrderItems association inside the same transaction
	// as the order row.
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormOrderRepository) Save(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Omit("Customer", "OrderItems").Save(o).Error
}

func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Order{}).Error
}
