package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront-service/apperrors"
	"storefront-service/models"
)

// CartRepo is the persistence slice used by the cart service; backed by
// Redis in production.
type CartRepo interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// CartService validates additions against the catalog (variant stock
// overrides the product-level flag) and clamps quantities before persisting.
type CartService struct {
	repo    CartRepo
	catalog Catalog
}

func NewCartService(repo CartRepo, catalog Catalog) *CartService {
	return &CartService{repo: repo, catalog: catalog}
}

// GetCart always returns a cart; a user without one gets an empty cart.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCartUnavailable, err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	return cart, nil
}

// AddItem snapshots the product, flattens the selected variant and merges
// with an existing line for the same product+variant. The merged quantity is
// re-clamped against variant stock and the hard cap.
func (s *CartService) AddItem(ctx context.Context, userID, productID, variantID string, quantity int) (*models.Cart, error) {
	product := s.catalog.FindByID(productID)
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}

	var variant *models.ProductVariant
	if variantID != "" {
		variant = product.FindVariant(variantID)
		if variant == nil {
			return nil, apperrors.ErrVariantNotFound
		}
	}
	if !models.IsPurchasable(product, variant) {
		return nil, apperrors.ErrOutOfStock
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ProductID: product.ID,
		Slug:      product.Slug,
		Name:      product.Name,
		SKU:       product.SKU,
		Price:     product.Price,
		Quantity:  models.ClampQuantity(quantity, models.MaxQuantity(variant)),
		Image:     firstImageURL(product),
	}
	if variant != nil {
		item.Variant = &models.CartVariant{
			ID:    variant.ID,
			Name:  variant.Name,
			Value: variant.Value,
			Price: variant.Price,
		}
	}

	merged := false
	for i := range cart.Items {
		if sameLine(&cart.Items[i], &item) {
			cart.Items[i].Quantity = models.ClampQuantity(
				cart.Items[i].Quantity+item.Quantity, models.MaxQuantity(variant))
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		zap.L().Error("Failed to save cart", zap.String("userId", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrCartUnavailable, err)
	}
	return cart, nil
}

// UpdateQuantity sets an existing line's quantity, clamped to the line's
// variant stock. A quantity below 1 is rejected rather than removing the
// line; removal is explicit.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, variantID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.New(http.StatusBadRequest, "Quantity must be at least 1", nil)
	}
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	product := s.catalog.FindByID(productID)
	var variant *models.ProductVariant
	if product != nil && variantID != "" {
		variant = product.FindVariant(variantID)
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID && variantIDOf(&cart.Items[i]) == variantID {
			cart.Items[i].Quantity = models.ClampQuantity(quantity, models.MaxQuantity(variant))
			if err := s.repo.SaveCart(ctx, cart); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCartUnavailable, err)
			}
			return cart, nil
		}
	}
	return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
}

// RemoveItem drops the line matching product+variant; removing an absent
// line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID, variantID string) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID && variantIDOf(&item) == variantID {
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept
	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCartUnavailable, err)
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.repo.DeleteCart(ctx, userID); err != nil {
		return apperrors.Wrap(apperrors.ErrCartUnavailable, err)
	}
	return nil
}

func sameLine(a, b *models.CartItem) bool {
	return a.ProductID == b.ProductID && variantIDOf(a) == variantIDOf(b)
}

func variantIDOf(item *models.CartItem) string {
	if item.Variant == nil {
		return ""
	}
	return item.Variant.ID
}

func firstImageURL(p *models.Product) string {
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return p.FeaturedImage
}
