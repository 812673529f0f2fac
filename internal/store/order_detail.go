package store

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"gorm.io/gorm"
)

// OrderDetailRepository handles database operations for order-detail rows
type OrderDetailRepository interface {
	// ListWithProduct retrieves all order details with their product resolved
	ListWithProduct(ctx context.Context) ([]domain.OrderDetail, error)

	// GetWithProduct retrieves one order detail with its product resolved
	GetWithProduct(ctx context.Context, id string) (*domain.OrderDetail, error)

	// GetByID retrieves one order detail without resolving the product;
	// used by write paths
	GetByID(ctx context.Context, id string) (*domain.OrderDetail, error)

	Create(ctx context.Context, od *domain.OrderDetail) error

	Save(ctx context.Context, od *domain.OrderDetail) error

	Delete(ctx context.Context, id string) error
}

// GormOrderDetailRepository is the GORM implementation of OrderDetailRepository
type GormOrderDetailRepository struct {
	db *gorm.DB
}

func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{db: db}
}

func (r *GormOrderDetailRepository) ListWithProduct(ctx context.Context) ([]domain.OrderDetail, error) {
	var details []domain.OrderDetail
	err := r.db.WithContext(ctx).Preload("Product").Find(&details).Error
	return details, err
}

func (r *GormOrderDetailRepository) GetWithProduct(ctx context.Context, id string) (*domain.OrderDetail, error) {
	var od domain.OrderDetail
	err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&od).Error
	if err != nil {
		return nil, err
	}
	return &od, nil
}

func (r *GormOrderDetailRepository) GetByID(ctx context.Context, id string) (*domain.OrderDetail, error) {
	var od domain.OrderDetail
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&od).Error
	if err != nil {
		return nil, err
	}
	return &od, nil
}

func (r *GormOrderDetailRepository) Create(ctx context.Context, od *domain.OrderDetail) error {
	return r.db.WithContext(ctx).Create(od).Error
}

func (r *GormOrderDetailRepository) Save(ctx context.Context, od *domain.OrderDetail) error {
	return r.db.WithContext(ctx).Omit("Product").Save(od).Error
}

func (r *GormOrderDetailRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.OrderDetail{}).Error
}
