package service

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/store"
)

// OrderService mediates between the API surface and the persistence gateway
// for orders. Orders are only created through the customer order workflow;
// this service reads, updates and deletes them.
type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// List returns all orders with customer and items->product resolved.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.store.Orders().List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.store.Orders().GetWithRelations(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return o, err
}

func (s *OrderService) Update(ctx context.Context, id string, in *domain.UpdateOrderInput) (bool, error) {
	o, err := s.store.Orders().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	in.ApplyTo(o)
	if err := s.store.Orders().Save(ctx, o); err != nil {
		return false, err
	}
	return true, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := s.store.Orders().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.Orders().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
