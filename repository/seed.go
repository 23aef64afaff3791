package repository

import (
	"time"

	"storefront-service/models"
)

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedProducts returns the handcrafted jewelry catalog served by this
// storefront. Order matters: the seed order is the "most popular" default
// ordering and the tie-break order for every query.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:             "1",
			SKU:            "KB-001",
			Name:           "Rose Quartz Stud Earrings",
			Slug:           "rose-quartz-stud-earrings",
			Description:    "Beautiful rose quartz stud earrings that bring love and harmony. Handcrafted with genuine rose quartz stones set in 14k gold-plated sterling silver.",
			Price:          45.00,
			CompareAtPrice: f(55.00),
			IsInStock:      true,
			IsFeatured:     true,
			IsNew:          true,
			IsOnSale:       true,
			Tags:           []string{"rose quartz", "studs", "earrings", "healing crystals"},
			Materials:      []string{"Rose Quartz", "14k Gold Plated Sterling Silver"},
			Categories:     []string{"Earrings", "Studs", "Rose Quartz"},
			Collections:    []string{"New Arrivals", "Best Sellers", "Rose Quartz Collection"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Size", Value: "6mm", Price: f(45.00), Stock: 10, SKU: "KB-001-6MM"},
				{ID: "v2", Name: "Size", Value: "8mm", Price: f(55.00), Stock: 8, SKU: "KB-001-8MM"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/rose-quartz-1.jpg", Alt: "Rose Quartz Stud Earrings front view"},
				{ID: "img2", URL: "https://cdn.kirabloom.example/products/rose-quartz-2.jpg", Alt: "Rose Quartz Stud Earrings side view"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/rose-quartz-1.jpg",
			Rating:        f(4.8),
			ReviewCount:   n(24),
			CreatedAt:     ts("2025-01-15T10:30:00Z"),
			UpdatedAt:     ts("2025-05-20T14:45:00Z"),
		},
		{
			ID:          "2",
			SKU:         "KB-002",
			Name:        "Moonstone Pendant Necklace",
			Slug:        "moonstone-pendant-necklace",
			Description: "A luminous rainbow moonstone pendant on a delicate sterling silver chain. Each stone is hand-selected for its blue flash.",
			Price:       78.00,
			IsInStock:   true,
			IsFeatured:  true,
			Tags:        []string{"moonstone", "pendant", "necklaces"},
			Materials:   []string{"Rainbow Moonstone", "Sterling Silver"},
			Categories:  []string{"Necklaces", "Pendants"},
			Collections: []string{"Best Sellers", "Celestial Collection"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Chain Length", Value: "16 inch", Stock: 6, SKU: "KB-002-16"},
				{ID: "v2", Name: "Chain Length", Value: "18 inch", Stock: 4, SKU: "KB-002-18"},
				{ID: "v3", Name: "Chain Length", Value: "20 inch", Price: f(84.00), Stock: 0, SKU: "KB-002-20"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/moonstone-1.jpg", Alt: "Moonstone Pendant Necklace"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/moonstone-1.jpg",
			Rating:        f(4.9),
			ReviewCount:   n(41),
			CreatedAt:     ts("2024-11-02T09:00:00Z"),
			UpdatedAt:     ts("2025-04-12T11:20:00Z"),
		},
		{
			ID:             "3",
			SKU:            "KB-003",
			Name:           "Hammered Gold Cuff Bracelet",
			Slug:           "hammered-gold-cuff-bracelet",
			Description:    "Bold hand-hammered cuff in 18k gold vermeil. Open back adjusts to most wrists.",
			Price:          120.00,
			CompareAtPrice: f(150.00),
			IsInStock:      true,
			IsOnSale:       true,
			Tags:           []string{"cuff", "bracelets", "gold", "statement"},
			Materials:      []string{"18k Gold Vermeil"},
			Categories:     []string{"Bracelets", "Cuffs"},
			Collections:    []string{"Gold Edit"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Width", Value: "Slim", Stock: 12, SKU: "KB-003-S"},
				{ID: "v2", Name: "Width", Value: "Wide", Price: f(140.00), Stock: 3, SKU: "KB-003-W"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/gold-cuff-1.jpg", Alt: "Hammered Gold Cuff Bracelet"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/gold-cuff-1.jpg",
			Rating:        f(4.6),
			ReviewCount:   n(17),
			CreatedAt:     ts("2024-08-21T15:10:00Z"),
			UpdatedAt:     ts("2025-02-02T08:05:00Z"),
		},
		{
			ID:          "4",
			SKU:         "KB-004",
			Name:        "Emerald Halo Ring",
			Slug:        "emerald-halo-ring",
			Description: "Lab-grown emerald surrounded by a halo of white sapphires, set in recycled 14k gold.",
			Price:       340.00,
			IsInStock:   true,
			IsFeatured:  true,
			Tags:        []string{"emerald", "rings", "halo", "sapphire"},
			Materials:   []string{"Lab-Grown Emerald", "White Sapphire", "Recycled 14k Gold"},
			Categories:  []string{"Rings"},
			Collections: []string{"Fine Collection"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Ring Size", Value: "6", Stock: 2, SKU: "KB-004-6"},
				{ID: "v2", Name: "Ring Size", Value: "7", Stock: 5, SKU: "KB-004-7"},
				{ID: "v3", Name: "Ring Size", Value: "8", Stock: 0, SKU: "KB-004-8"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/emerald-ring-1.jpg", Alt: "Emerald Halo Ring"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/emerald-ring-1.jpg",
			Rating:        f(5.0),
			ReviewCount:   n(9),
			CreatedAt:     ts("2025-03-08T12:00:00Z"),
			UpdatedAt:     ts("2025-06-01T16:30:00Z"),
		},
		{
			ID:          "5",
			SKU:         "KB-005",
			Name:        "Amethyst Drop Earrings",
			Slug:        "amethyst-drop-earrings",
			Description: "Faceted amethyst briolettes on hand-formed sterling silver ear wires. Light and everyday wearable.",
			Price:       52.00,
			IsInStock:   false,
			Tags:        []string{"amethyst", "drops", "earrings"},
			Materials:   []string{"Amethyst", "Sterling Silver"},
			Categories:  []string{"Earrings", "Drops"},
			Collections: []string{"Healing Stones"},
			Variants:    []models.ProductVariant{},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/amethyst-1.jpg", Alt: "Amethyst Drop Earrings"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/amethyst-1.jpg",
			Rating:        f(4.3),
			ReviewCount:   n(12),
			CreatedAt:     ts("2024-06-30T10:00:00Z"),
			UpdatedAt:     ts("2025-01-11T09:45:00Z"),
		},
		{
			ID:             "6",
			SKU:            "KB-006",
			Name:           "Layered Chain Necklace Set",
			Slug:           "layered-chain-necklace-set",
			Description:    "Three delicate chains in graduated lengths, sold as a set. 14k gold filled.",
			Price:          96.00,
			CompareAtPrice: f(96.00), // compare-at equals price: no discount shown
			IsInStock:      true,
			IsNew:          true,
			Tags:           []string{"chains", "layering", "necklaces", "set"},
			Materials:      []string{"14k Gold Filled"},
			Categories:     []string{"Necklaces", "Chains"},
			Collections:    []string{"New Arrivals", "Gold Edit"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Finish", Value: "Gold", Stock: 15, SKU: "KB-006-G"},
				{ID: "v2", Name: "Finish", Value: "Silver", Stock: 11, SKU: "KB-006-S"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/layered-set-1.jpg", Alt: "Layered Chain Necklace Set"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/layered-set-1.jpg",
			CreatedAt:     ts("2025-05-25T08:15:00Z"),
			UpdatedAt:     ts("2025-05-25T08:15:00Z"),
		},
		{
			ID:             "7",
			SKU:            "KB-007",
			Name:           "Opal Signet Ring",
			Slug:           "opal-signet-ring",
			Description:    "Australian opal inlaid into a classic signet silhouette. Unisex sizing.",
			Price:          185.00,
			CompareAtPrice: f(230.00),
			IsInStock:      true,
			IsOnSale:       true,
			Tags:           []string{"opal", "signet", "rings", "unisex"},
			Materials:      []string{"Australian Opal", "Sterling Silver"},
			Categories:     []string{"Rings", "Signets"},
			Collections:    []string{"Best Sellers"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Ring Size", Value: "7", Stock: 4, SKU: "KB-007-7"},
				{ID: "v2", Name: "Ring Size", Value: "9", Stock: 7, SKU: "KB-007-9"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/opal-signet-1.jpg", Alt: "Opal Signet Ring"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/opal-signet-1.jpg",
			Rating:        f(4.7),
			ReviewCount:   n(33),
			CreatedAt:     ts("2024-12-14T17:40:00Z"),
			UpdatedAt:     ts("2025-03-19T10:10:00Z"),
		},
		{
			ID:          "8",
			SKU:         "KB-008",
			Name:        "Pearl Huggie Hoops",
			Slug:        "pearl-huggie-hoops",
			Description: "Freshwater pearl charms on snug gold huggie hoops. Pearls vary slightly, each pair is unique.",
			Price:       64.00,
			IsInStock:   true,
			IsFeatured:  true,
			IsNew:       true,
			Tags:        []string{"pearl", "hoops", "earrings", "huggies"},
			Materials:   []string{"Freshwater Pearl", "14k Gold Plated Brass"},
			Categories:  []string{"Earrings", "Hoops"},
			Collections: []string{"New Arrivals"},
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Size", Value: "12mm", Stock: 9, SKU: "KB-008-12"},
			},
			Images: []models.ProductImage{
				{ID: "img1", URL: "https://cdn.kirabloom.example/products/pearl-huggies-1.jpg", Alt: "Pearl Huggie Hoops"},
			},
			FeaturedImage: "https://cdn.kirabloom.example/products/pearl-huggies-1.jpg",
			Rating:        f(4.8),
			ReviewCount:   n(28),
			CreatedAt:     ts("2025-04-18T13:25:00Z"),
			UpdatedAt:     ts("2025-05-30T09:55:00Z"),
		},
	}
}

// NewSeededStore builds the in-memory catalog used in production and tests.
func NewSeededStore() *CatalogStore {
	return NewCatalogStore(SeedProducts())
}
