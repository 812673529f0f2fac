package service

import (
	"context"
	"time"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/store"
	"github.com/openretail/storeapi/pkg/common"
)

// ProductService mediates between the API surface and the persistence
// gateway for products.
type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.store.Products().List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.store.Products().GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return p, err
}

func (s *ProductService) Create(ctx context.Context, in *domain.CreateProductInput) (*domain.Product, error) {
	p := in.ToProduct()
	p.ID = common.UUID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.store.Products().Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in *domain.UpdateProductInput) (bool, error) {
	p, err := s.store.Products().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	in.ApplyTo(p)
	p.UpdatedAt = time.Now()
	if err := s.store.Products().Save(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := s.store.Products().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.Products().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
