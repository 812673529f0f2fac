package service

import (
	"context"
	"testing"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductService(st)
	ctx := context.Background()

	p, err := svc.Create(ctx, &domain.CreateProductInput{Name: "Widget", Price: 9.99})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NotEmpty(t, p.ID)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 9.99, got.Price)
}

func TestProductList(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateProductInput{Name: "A", Price: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateProductInput{Name: "B", Price: 2})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestProductUpdate(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductService(st)
	ctx := context.Background()

	p, err := svc.Create(ctx, &domain.CreateProductInput{Name: "Widget", Price: 9.99})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, &domain.UpdateProductInput{Name: "Widget v2", Price: 14.99})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", got.Name)
	assert.Equal(t, 14.99, got.Price)
}

func TestProductUpdateMissing(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductService(st)

	updated, err := svc.Update(context.Background(), common.UUID(), &domain.UpdateProductInput{Name: "X"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestProductDelete(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductService(st)
	ctx := context.Background()

	p, err := svc.Create(ctx, &domain.CreateProductInput{Name: "Widget", Price: 9.99})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
