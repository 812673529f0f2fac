package store

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)

	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// ListByIDs retrieves all products matching the given IDs in one batch
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)

	Create(ctx context.Context, p *domain.Product) error

	Save(ctx context.Context, p *domain.Product) error

	Delete(ctx context.Context, id string) error
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{}).Error
}
