package service

import (
	"context"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/store"
	"github.com/openretail/storeapi/pkg/common"
)

// OrderDetailService mediates between the API surface and the persistence
// gateway for order-detail rows.
type OrderDetailService struct {
	store *store.Store
}

func NewOrderDetailService(st *store.Store) *OrderDetailService {
	return &OrderDetailService{store: st}
}

func (s *OrderDetailService) List(ctx context.Context) ([]domain.OrderDetail, error) {
	return s.store.OrderDetails().ListWithProduct(ctx)
}

func (s *OrderDetailService) Get(ctx context.Context, id string) (*domain.OrderDetail, error) {
	od, err := s.store.OrderDetails().GetWithProduct(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return od, err
}

// Create inserts a standalone order-detail row outside the order-creation
// workflow. References are taken verbatim.
func (s *OrderDetailService) Create(ctx context.Context, in *domain.CreateOrderDetailInput) (*domain.OrderDetail, error) {
	od := in.ToOrderDetail()
	od.ID = common.UUID()

	if err := s.store.OrderDetails().Create(ctx, od); err != nil {
		return nil, err
	}
	return od, nil
}

func (s *OrderDetailService) Update(ctx context.Context, id string, in *domain.UpdateOrderDetailInput) (bool, error) {
	od, err := s.store.OrderDetails().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	in.ApplyTo(od)
	if err := s.store.OrderDetails().Save(ctx, od); err != nil {
		return false, err
	}
	return true, nil
}

func (s *OrderDetailService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := s.store.OrderDetails().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.OrderDetails().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
