package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openretail/storeapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(db)
}

func TestOrderCreatePersistsItems(t *testing.T) {
	st := newTestDB(t)
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.NewString(), FirstName: "John", LastName: "Doe"}
	require.NoError(t, st.Customers().Create(ctx, customer))
	product := &domain.Product{ID: uuid.NewString(), Name: "Widget", Price: 9.99}
	require.NoError(t, st.Products().Create(ctx, product))

	order := &domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		OrderPlaced: time.Now().UTC(),
		OrderItems: []domain.OrderDetail{
			{ID: uuid.NewString(), ProductID: product.ID, Quantity: 2},
		},
	}
	require.NoError(t, st.Orders().Create(ctx, order))

	// the detail row was written with the parent reference set
	details, err := st.OrderDetails().ListWithProduct(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, order.ID, details[0].OrderID)
	require.NotNil(t, details[0].Product)
	assert.Equal(t, "Widget", details[0].Product.Name)
}

func TestOrderDeleteLeavesDetailRows(t *testing.T) {
	st := newTestDB(t)
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.NewString(), FirstName: "John", LastName: "Doe"}
	require.NoError(t, st.Customers().Create(ctx, customer))
	product := &domain.Product{ID: uuid.NewString(), Name: "Widget", Price: 9.99}
	require.NoError(t, st.Products().Create(ctx, product))

	order := &domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		OrderPlaced: time.Now().UTC(),
		OrderItems: []domain.OrderDetail{
			{ID: uuid.NewString(), ProductID: product.ID, Quantity: 1},
		},
	}
	require.NoError(t, st.Orders().Create(ctx, order))
	require.NoError(t, st.Orders().Delete(ctx, order.ID))

	// no cascade at this layer: the detail row keeps its dangling reference
	details, err := st.OrderDetails().ListWithProduct(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, order.ID, details[0].OrderID)
}

func TestProductListByIDs(t *testing.T) {
	st := newTestDB(t)
	ctx := context.Background()

	a := &domain.Product{ID: uuid.NewString(), Name: "A", Price: 1}
	b := &domain.Product{ID: uuid.NewString(), Name: "B", Price: 2}
	require.NoError(t, st.Products().Create(ctx, a))
	require.NoError(t, st.Products().Create(ctx, b))

	products, err := st.Products().ListByIDs(ctx, []string{a.ID, uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, a.ID, products[0].ID)
}
