package service

import (
	"context"
	"time"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/store"
	"github.com/openretail/storeapi/pkg/common"
	"go.uber.org/zap"
)

// CustomerService mediates between the API surface and the persistence
// gateway for customers, and owns the order-creation workflow.
type CustomerService struct {
	store *store.Store
}

func NewCustomerService(st *store.Store) *CustomerService {
	return &CustomerService{store: st}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

// Get returns nil without error when the customer does not exist.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := s.store.Customers().GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return c, err
}

func (s *CustomerService) Orders(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.store.Customers().ListOrders(ctx, customerID)
}

// Create validates the input, maps it onto a fresh customer and persists it.
// A *ValidationError is returned before anything is written.
func (s *CustomerService) Create(ctx context.Context, in *domain.CreateCustomerInput) (*domain.Customer, error) {
	if err := ValidateCreateCustomer(in); err != nil {
		return nil, err
	}

	c := in.ToCustomer()
	c.ID = common.UUID()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.store.Customers().Create(ctx, c); err != nil {
		return nil, err
	}

	zap.L().Info("customer created", zap.String("customer_id", c.ID))
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in *domain.UpdateCustomerInput) (bool, error) {
	c, err := s.store.Customers().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	in.ApplyTo(c)
	c.UpdatedAt = time.Now()
	if err := s.store.Customers().Save(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) (bool, error) {
	_, err := s.store.Customers().GetByID(ctx, id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.Customers().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateOrder places an order for a customer. It returns nil without error
// when the customer or any referenced product does not exist; the check is
// pass/fail only and does not report which id was invalid.
func (s *CustomerService) CreateOrder(ctx context.Context, customerID string, in *domain.CreateOrderInput) (*domain.Order, error) {
	_, err := s.store.Customers().GetByID(ctx, customerID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	distinct := make(map[string]struct{}, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if _, seen := distinct[item.ProductID]; !seen {
			distinct[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.store.Products().ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, nil
	}

	order := &domain.Order{
		ID:          common.UUID(),
		CustomerID:  customerID,
		OrderPlaced: time.Now().UTC(),
	}
	// repeated product ids stay repeated: one detail row per input line
	for _, item := range in.Items {
		order.OrderItems = append(order.OrderItems, domain.OrderDetail{
			ID:        common.UUID(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, err
	}

	zap.L().Info("order created",
		zap.String("order_id", order.ID),
		zap.String("customer_id", customerID),
		zap.Int("items", len(order.OrderItems)))

	return s.store.Orders().GetWithRelations(ctx, order.ID)
}
