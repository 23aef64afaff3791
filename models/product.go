package models

import "time"

// ProductVariant is a purchasable option of a product. Variants sharing a
// Name form a selection group (e.g. all "Size" options).
type ProductVariant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"` // nil means "use product price"
	Stock int      `json:"stock"`
	SKU   string   `json:"sku"`
}

type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Product is the catalog's primary entity. Slug is the stable external
// reference used in URLs; it is unique across the catalog and immutable
// once published.
type Product struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	CompareAtPrice *float64         `json:"compareAtPrice,omitempty"`
	IsInStock      bool             `json:"isInStock"`
	IsFeatured     bool             `json:"isFeatured"`
	IsNew          bool             `json:"isNew"`
	IsOnSale       bool             `json:"isOnSale"`
	Tags           []string         `json:"tags"`
	Materials      []string         `json:"materials"`
	Categories     []string         `json:"categories"`
	Collections    []string         `json:"collections"`
	Variants       []ProductVariant `json:"variants"`
	Images         []ProductImage   `json:"images"`
	FeaturedImage  string           `json:"featuredImage"`
	Rating         *float64         `json:"rating,omitempty"`
	ReviewCount    *int             `json:"reviewCount,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// VariantGroup collects the options of one variant axis, in catalog order.
type VariantGroup struct {
	Name    string           `json:"name"`
	Options []ProductVariant `json:"options"`
}

// FindVariant returns the variant with the given ID, or nil.
func (p *Product) FindVariant(id string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// VariantGroups groups the product's variants by Name, preserving the order
// in which each axis first appears.
func (p *Product) VariantGroups() []VariantGroup {
	var groups []VariantGroup
	index := make(map[string]int)
	for _, v := range p.Variants {
		i, ok := index[v.Name]
		if !ok {
			i = len(groups)
			index[v.Name] = i
			groups = append(groups, VariantGroup{Name: v.Name})
		}
		groups[i].Options = append(groups[i].Options, v)
	}
	return groups
}

// HasCategory reports whether the product carries the exact category label.
func (p *Product) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// SharesCategoryWith reports whether the two products have at least one
// category label in common.
func (p *Product) SharesCategoryWith(other *Product) bool {
	for _, c := range other.Categories {
		if p.HasCategory(c) {
			return true
		}
	}
	return false
}
