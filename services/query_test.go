package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront-service/models"
)

func fixtureCatalog() []models.Product {
	r45 := 4.5
	r48 := 4.8
	return []models.Product{
		{
			ID: "1", Slug: "gold-hoops", Name: "Gold Hoop Earrings",
			Description: "Classic gold hoops",
			Price:       80, Rating: &r45,
			Tags:        []string{"hoops", "gold"},
			Categories:  []string{"Earrings", "Hoops"},
			Collections: []string{"Gold Edit"},
			CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Slug: "silver-studs", Name: "Silver Stud Earrings",
			Description: "Minimal silver studs",
			Price:       40, Rating: &r48,
			Tags:        []string{"studs", "silver"},
			Categories:  []string{"Earrings", "Studs"},
			Collections: []string{"Best Sellers"},
			CreatedAt:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Slug: "pearl-necklace", Name: "Pearl Necklace",
			Description: "Freshwater pearls on a gold chain",
			Price:       120,
			Tags:        []string{"pearl", "necklaces"},
			Categories:  []string{"Necklaces"},
			Collections: []string{"Best Sellers", "Gold Edit"},
			CreatedAt:   time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "4", Slug: "gold-bangle", Name: "Gold Bangle",
			Description: "Slim stacking bangle",
			Price:       80, Rating: &r45,
			Tags:        []string{"bangle", "gold"},
			Categories:  []string{"Bracelets"},
			Collections: []string{"Gold Edit"},
			CreatedAt:   time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestQueryFilterConjunction(t *testing.T) {
	catalog := fixtureCatalog()
	items, total := Query(catalog, QuerySpec{
		Category:   "earrings",
		Collection: "gold",
		Search:     "hoop",
	})

	assert.Equal(t, 1, total)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "1", items[0].ID)
	}
}

func TestQueryCategoryMatchIsCaseInsensitiveSubstring(t *testing.T) {
	items, total := Query(fixtureCatalog(), QuerySpec{Category: "EARR"})
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)
}

func TestQuerySearchMatchesNameDescriptionOrTags(t *testing.T) {
	// "pearl" appears in name and tags of product 3 only.
	items, _ := Query(fixtureCatalog(), QuerySpec{Search: "PEARL"})
	if assert.Len(t, items, 1) {
		assert.Equal(t, "3", items[0].ID)
	}

	// "gold chain" matches via description.
	items, _ = Query(fixtureCatalog(), QuerySpec{Search: "gold chain"})
	if assert.Len(t, items, 1) {
		assert.Equal(t, "3", items[0].ID)
	}
}

func TestQueryTotalIndependentOfLimit(t *testing.T) {
	catalog := fixtureCatalog()
	_, totalUnlimited := Query(catalog, QuerySpec{Collection: "gold"})

	for _, limit := range []int{1, 2, 3, 100} {
		items, total := Query(catalog, QuerySpec{Collection: "gold", Limit: limit})
		assert.Equal(t, totalUnlimited, total, "limit=%d", limit)
		if limit < totalUnlimited {
			assert.Len(t, items, limit)
		} else {
			assert.Len(t, items, totalUnlimited)
		}
	}
}

func TestQuerySortByPrice(t *testing.T) {
	items, _ := Query(fixtureCatalog(), QuerySpec{SortField: "price", SortDir: SortAsc})
	prices := []float64{items[0].Price, items[1].Price, items[2].Price, items[3].Price}
	assert.Equal(t, []float64{40, 80, 80, 120}, prices)

	items, _ = Query(fixtureCatalog(), QuerySpec{SortField: "price", SortDir: SortDesc})
	assert.Equal(t, float64(120), items[0].Price)
}

func TestQuerySortStabilityForTies(t *testing.T) {
	// Products 1 and 4 share price 80; catalog order must survive the sort.
	items, _ := Query(fixtureCatalog(), QuerySpec{SortField: "price", SortDir: SortAsc})
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "4", items[2].ID)
}

func TestQuerySortMissingFieldComparesEqual(t *testing.T) {
	// Product 3 has no rating; it must keep its relative position against
	// rated products rather than sorting to either extreme.
	items, _ := Query(fixtureCatalog(), QuerySpec{SortField: "rating", SortDir: SortDesc})
	ids := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	// 2 (4.8) leads; 1 and 4 (4.5) keep order; 3 compares equal to its
	// neighbors and stays where the stable sort leaves it.
	assert.Equal(t, "2", ids[0])
	assert.Contains(t, ids, "3")
	assert.Less(t, indexOf(ids, "1"), indexOf(ids, "4"))
}

func TestQuerySortByCreatedAt(t *testing.T) {
	items, _ := Query(fixtureCatalog(), QuerySpec{SortField: "createdAt", SortDir: SortDesc})
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[3].ID)
}

func TestQueryUnsupportedSortKeepsCatalogOrder(t *testing.T) {
	items, total := Query(fixtureCatalog(), QuerySpec{SortField: "weight", SortDir: SortDesc})
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
}

func TestQueryEmptyResultIsNotAnError(t *testing.T) {
	items, total := Query(fixtureCatalog(), QuerySpec{Category: "watches"})
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
}

func TestQueryDoesNotMutateCatalog(t *testing.T) {
	catalog := fixtureCatalog()
	Query(catalog, QuerySpec{SortField: "price", SortDir: SortDesc, Limit: 1})
	assert.Equal(t, "1", catalog[0].ID)
	assert.Equal(t, "4", catalog[3].ID)
}

func TestParseSort(t *testing.T) {
	field, dir := ParseSort("price:asc")
	assert.Equal(t, "price", field)
	assert.Equal(t, SortAsc, dir)

	field, dir = ParseSort("rating:desc")
	assert.Equal(t, "rating", field)
	assert.Equal(t, SortDesc, dir)

	// Missing or unknown direction defaults to ascending.
	field, dir = ParseSort("price")
	assert.Equal(t, "price", field)
	assert.Equal(t, SortAsc, dir)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
