package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/repository"
	"storefront-service/services"
)

func newTestService() *services.ProductService {
	return services.NewProductService(repository.NewSeededStore(), 0)
}

func TestGetProductBySlugRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, p := range repository.SeedProducts() {
		got, err := svc.GetProductBySlug(ctx, p.Slug)
		require.NoError(t, err)
		if assert.NotNil(t, got, "slug %q", p.Slug) {
			assert.Equal(t, p.ID, got.ID)
		}
	}
}

func TestGetProductBySlugUnknownIsNotAnError(t *testing.T) {
	svc := newTestService()
	got, err := svc.GetProductBySlug(context.Background(), "no-such-slug")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProductsDefaultReturnsWholeCatalog(t *testing.T) {
	svc := newTestService()
	items, total, err := svc.GetProducts(context.Background(), services.QuerySpec{})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
	assert.Len(t, items, 8)
	// Seed order is the default ordering.
	assert.Equal(t, "1", items[0].ID)
}

func TestGetFeaturedProducts(t *testing.T) {
	svc := newTestService()
	items, err := svc.GetFeaturedProducts(context.Background(), 0)
	require.NoError(t, err)
	// Default limit is 4 and the seed has exactly 4 featured products.
	assert.Len(t, items, 4)
	for _, p := range items {
		assert.True(t, p.IsFeatured, "product %s", p.ID)
	}

	items, err = svc.GetFeaturedProducts(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetRelatedProductsShareACategoryAndExcludeSelf(t *testing.T) {
	svc := newTestService()

	// Product 1 (Earrings/Studs) relates to the other earring products.
	items, err := svc.GetRelatedProducts(context.Background(), "1", 4)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	ids := map[string]bool{}
	for _, p := range items {
		ids[p.ID] = true
	}
	assert.False(t, ids["1"], "related set must not contain the source product")
	assert.True(t, ids["5"] || ids["8"], "expected fellow earrings in the related set")
}

func TestGetRelatedProductsUnknownIDYieldsEmpty(t *testing.T) {
	svc := newTestService()
	items, err := svc.GetRelatedProducts(context.Background(), "404", 4)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetProductVariantsReturnsCopy(t *testing.T) {
	svc := newTestService()
	variants, err := svc.GetProductVariants(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, variants, 3)

	variants[0].Stock = 999
	again, err := svc.GetProductVariants(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 6, again[0].Stock)
}

func TestSearchProducts(t *testing.T) {
	svc := newTestService()
	items, err := svc.SearchProducts(context.Background(), "moonstone")
	require.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "2", items[0].ID)
	}
}

func TestContextCancellationAbortsQuery(t *testing.T) {
	svc := services.NewProductService(repository.NewSeededStore(), 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.GetProducts(ctx, services.QuerySpec{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.GetProductBySlug(ctx, "opal-signet-ring")
	assert.ErrorIs(t, err, context.Canceled)
}
