package repository

import (
	"storefront-service/models"
)

// CatalogStore holds the authoritative product set in memory. It is seeded
// once at startup and read-only afterwards, so queries need no locking; each
// caller works against a snapshot and never mutates store-owned data.
type CatalogStore struct {
	products []models.Product
	bySlug   map[string]int
	byID     map[string]int
}

func NewCatalogStore(products []models.Product) *CatalogStore {
	s := &CatalogStore{
		products: make([]models.Product, len(products)),
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(s.products, products)
	for i := range s.products {
		s.bySlug[s.products[i].Slug] = i
		s.byID[s.products[i].ID] = i
	}
	return s
}

// Snapshot returns the catalog in seed order. The returned slice is owned by
// the caller; the product structs themselves must be treated as read-only.
func (s *CatalogStore) Snapshot() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindBySlug returns the product with the given slug, or nil. Absence is a
// normal outcome, not an error.
func (s *CatalogStore) FindBySlug(slug string) *models.Product {
	i, ok := s.bySlug[slug]
	if !ok {
		return nil
	}
	p := s.products[i]
	return &p
}

// FindByID returns the product with the given ID, or nil.
func (s *CatalogStore) FindByID(id string) *models.Product {
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	p := s.products[i]
	return &p
}

func (s *CatalogStore) Len() int {
	return len(s.products)
}
