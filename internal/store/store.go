package store

import "gorm.io/gorm"

// Store is the persistence gateway: it owns the database handle and hands
// out one typed repository per entity.
type Store struct {
	db           *gorm.DB
	customers    *GormCustomerRepository
	products     *GormProductRepository
	orders       *GormOrderRepository
	orderDetails *GormOrderDetailRepository
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		customers:    NewGormCustomerRepository(db),
		products:     NewGormProductRepository(db),
		orders:       NewGormOrderRepository(db),
		orderDetails: NewGormOrderDetailRepository(db),
	}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Customers() CustomerRepository { return s.customers }

func (s *Store) Products() ProductRepository { return s.products }

func (s *Store) Orders() OrderRepository { return s.orders }

func (s *Store) OrderDetails() OrderDetailRepository { return s.orderDetails }
