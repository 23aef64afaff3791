package controllers

import (
	"context"

	"storefront-service/filters"
	"storefront-service/models"
	"storefront-service/services"
)

// ProductAPI is the product-service surface the controllers depend on.
type ProductAPI interface {
	GetProducts(ctx context.Context, spec services.QuerySpec) ([]models.Product, int, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetRelatedProducts(ctx context.Context, productID string, limit int) ([]models.Product, error)
	GetProductVariants(ctx context.Context, productID string) ([]models.ProductVariant, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

// CartAPI is the cart-service surface the cart controller depends on.
type CartAPI interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID, variantID string, quantity int) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID, variantID string, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID, variantID string) (*models.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

// ListMeta is the pagination envelope returned with product listings.
type ListMeta struct {
	Page              int  `json:"page"`
	PerPage           int  `json:"perPage"`
	Total             int  `json:"total"`
	TotalPages        int  `json:"totalPages"`
	Start             int  `json:"start"`
	End               int  `json:"end"`
	HasPrev           bool `json:"hasPrev"`
	HasNext           bool `json:"hasNext"`
	ActiveFilterCount int  `json:"activeFilterCount"`
}

// ListLinks carries the canonical query strings for the view and its
// neighboring pages, so clients never rebuild filter state by hand.
type ListLinks struct {
	Self string `json:"self"`
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}

type ListResponse struct {
	Products []models.Product `json:"products"`
	Meta     ListMeta         `json:"meta"`
	Links    ListLinks        `json:"links"`
}

// DisplayInfo is the derived pricing/stock view for a product with an
// optionally selected variant.
type DisplayInfo struct {
	Price           float64  `json:"price"`
	CompareAtPrice  *float64 `json:"compareAtPrice,omitempty"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	IsPurchasable   bool     `json:"isPurchasable"`
	MaxQuantity     int      `json:"maxQuantity"`
}

// FacetOption is one selectable value inside a filter section.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FacetSection is a filter dimension shown on the collection page.
type FacetSection struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Options []FacetOption `json:"options"`
}

// FilterSections mirrors the collection page's filter rail. Category feeds
// the query engine; material/stone are facet bookkeeping; price decomposes
// into min/max bounds.
var FilterSections = []FacetSection{
	{
		ID:   filters.KeyCategory,
		Name: "Category",
		Options: []FacetOption{
			{Value: "earrings", Label: "Earrings", Count: 24},
			{Value: "necklaces", Label: "Necklaces", Count: 18},
			{Value: "bracelets", Label: "Bracelets", Count: 12},
			{Value: "rings", Label: "Rings", Count: 15},
		},
	},
	{
		ID:   "material",
		Name: "Material",
		Options: []FacetOption{
			{Value: "gold", Label: "Gold", Count: 32},
			{Value: "silver", Label: "Silver", Count: 28},
			{Value: "rose-gold", Label: "Rose Gold", Count: 15},
			{Value: "gemstone", Label: "Gemstone", Count: 22},
		},
	},
	{
		ID:   "stone",
		Name: "Stone",
		Options: []FacetOption{
			{Value: "diamond", Label: "Diamond", Count: 18},
			{Value: "sapphire", Label: "Sapphire", Count: 12},
			{Value: "ruby", Label: "Ruby", Count: 10},
			{Value: "emerald", Label: "Emerald", Count: 8},
		},
	},
	{
		ID:   "price",
		Name: "Price",
		Options: []FacetOption{
			{Value: "0-50", Label: "Under $50", Count: 15},
			{Value: "50-100", Label: "$50 - $100", Count: 28},
			{Value: "100-200", Label: "$100 - $200", Count: 35},
			{Value: "200-500", Label: "$200 - $500", Count: 22},
			{Value: "500-1000", Label: "$500 - $1000", Count: 12},
			{Value: "1000", Label: "Over $1000", Count: 8},
		},
	},
}

// SortOptions is the dropdown whitelist; anything else degrades to the
// catalog's default ordering.
var SortOptions = map[string]bool{
	"rating:desc":    true,
	"createdAt:desc": true,
	"price:asc":      true,
	"price:desc":     true,
	"name:asc":       true,
	"name:desc":      true,
}
