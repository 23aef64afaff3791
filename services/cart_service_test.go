package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/apperrors"
	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"
)

// memoryCartRepo keeps carts in a map, standing in for Redis.
type memoryCartRepo struct {
	carts   map[string]*models.Cart
	failGet bool
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: make(map[string]*models.Cart)}
}

func (r *memoryCartRepo) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if r.failGet {
		return nil, errors.New("connection refused")
	}
	return r.carts[userID], nil
}

func (r *memoryCartRepo) SaveCart(ctx context.Context, cart *models.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}

func (r *memoryCartRepo) DeleteCart(ctx context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

func newCartService(repo services.CartRepo) *services.CartService {
	return services.NewCartService(repo, repository.NewSeededStore())
}

func TestGetCartReturnsEmptyCartForNewUser(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	cart, err := svc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestAddItemSnapshotsProductAndVariant(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())

	cart, err := svc.AddItem(context.Background(), "u1", "2", "v1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, "moonstone-pendant-necklace", item.Slug)
	assert.Equal(t, 78.00, item.Price)
	assert.Equal(t, 2, item.Quantity)
	if assert.NotNil(t, item.Variant) {
		assert.Equal(t, "16 inch", item.Variant.Value)
	}
	assert.NotEmpty(t, item.Image)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	_, err := svc.AddItem(context.Background(), "u1", "404", "", 1)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestAddItemUnknownVariant(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	_, err := svc.AddItem(context.Background(), "u1", "2", "v99", 1)
	assert.ErrorIs(t, err, apperrors.ErrVariantNotFound)
}

func TestAddItemSoldOutVariantRejectedDespiteProductFlag(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	// Product 2 is in stock overall but variant v3 has zero stock.
	_, err := svc.AddItem(context.Background(), "u1", "2", "v3", 1)
	assert.ErrorIs(t, err, apperrors.ErrOutOfStock)
}

func TestAddItemOutOfStockProduct(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	_, err := svc.AddItem(context.Background(), "u1", "5", "", 1)
	assert.ErrorIs(t, err, apperrors.ErrOutOfStock)
}

func TestAddItemClampsToVariantStock(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	// Variant v2 of product 2 has 4 in stock.
	cart, err := svc.AddItem(context.Background(), "u1", "2", "v2", 9)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "1", "v1", 3)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", "1", "v1", 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// A different variant of the same product is its own line.
	cart, err = svc.AddItem(ctx, "u1", "1", "v2", 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestAddItemMergeReclampsAgainstStock(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	ctx := context.Background()

	// Variant v2 of product 2 has 4 in stock; 3 + 3 clamps back to 4.
	_, err := svc.AddItem(ctx, "u1", "2", "v2", 3)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", "2", "v2", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "3", "v1", 1)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "u1", "3", "v1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Below 1 is rejected outright.
	_, err = svc.UpdateQuantity(ctx, "u1", "3", "v1", 0)
	assert.Error(t, err)

	// Unknown line is not found.
	_, err = svc.UpdateQuantity(ctx, "u1", "3", "v2", 2)
	assert.Error(t, err)
}

func TestRemoveItemMatchesProductAndVariant(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "1", "v1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", "1", "v2", 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "u1", "1", "v1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "v2", cart.Items[0].Variant.ID)

	// Removing an absent line is a no-op.
	cart, err = svc.RemoveItem(ctx, "u1", "1", "v9")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestClearCart(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := newCartService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "1", "v1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "u1"))

	cart, err := svc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartStorageFailureIsServiceUnavailable(t *testing.T) {
	repo := newMemoryCartRepo()
	repo.failGet = true
	svc := newCartService(repo)

	_, err := svc.GetCart(context.Background(), "u1")
	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCartUnavailable.Code, appErr.Code)
}

func TestCartSubtotalUsesVariantPriceOverride(t *testing.T) {
	svc := newCartService(newMemoryCartRepo())
	ctx := context.Background()

	// Product 1 variant v2 overrides the 45.00 base price with 55.00.
	cart, err := svc.AddItem(ctx, "u1", "1", "v2", 2)
	require.NoError(t, err)
	assert.Equal(t, 110.00, cart.Subtotal())
}
