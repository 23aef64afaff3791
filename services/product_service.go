package services

import (
	"context"
	"time"

	"storefront-service/models"
)

const (
	DefaultFeaturedLimit = 4
	DefaultRelatedLimit  = 4
)

// Catalog is the read-only product source queried by the service. The
// production implementation is the in-memory repository.CatalogStore; tests
// inject fixtures.
type Catalog interface {
	Snapshot() []models.Product
	FindBySlug(slug string) *models.Product
	FindByID(id string) *models.Product
}

// ProductService executes catalog queries with a simulated provider latency,
// so callers exercise the same async behavior they would against a remote
// backend. All methods honor context cancellation.
type ProductService struct {
	catalog Catalog
	latency time.Duration
}

func NewProductService(catalog Catalog, latency time.Duration) *ProductService {
	return &ProductService{catalog: catalog, latency: latency}
}

func (s *ProductService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetProducts runs the query spec against a catalog snapshot and returns the
// limited result set plus the pre-limit total.
func (s *ProductService) GetProducts(ctx context.Context, spec QuerySpec) ([]models.Product, int, error) {
	if err := s.wait(ctx); err != nil {
		return nil, 0, err
	}
	items, total := Query(s.catalog.Snapshot(), spec)
	return items, total, nil
}

// GetProductBySlug returns nil (not an error) when no product has the slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.FindBySlug(slug), nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	var out []models.Product
	for _, p := range s.catalog.Snapshot() {
		if !p.IsFeatured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// GetRelatedProducts returns other products sharing at least one category
// with the source, in catalog order. An unknown productID yields an empty
// result.
func (s *ProductService) GetRelatedProducts(ctx context.Context, productID string, limit int) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	source := s.catalog.FindByID(productID)
	if source == nil {
		return nil, nil
	}
	var out []models.Product
	for _, p := range s.catalog.Snapshot() {
		if p.ID == productID || !p.SharesCategoryWith(source) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *ProductService) GetProductVariants(ctx context.Context, productID string) ([]models.ProductVariant, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	p := s.catalog.FindByID(productID)
	if p == nil {
		return nil, nil
	}
	out := make([]models.ProductVariant, len(p.Variants))
	copy(out, p.Variants)
	return out, nil
}

// SearchProducts matches the query against name, description and tags.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	items, _ := Query(s.catalog.Snapshot(), QuerySpec{Search: query})
	return items, nil
}
