package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront-service/models"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// QuerySpec is the structured filter/sort/limit specification executed
// against a catalog snapshot. Zero values mean "no constraint".
type QuerySpec struct {
	Category   string
	Collection string
	Search     string
	SortField  string
	SortDir    SortDirection
	Limit      int
}

// ParseSort splits a "field:asc|desc" parameter. Direction defaults to asc
// when omitted or unrecognized.
func ParseSort(s string) (string, SortDirection) {
	field, dir, found := strings.Cut(s, ":")
	if !found || SortDirection(dir) != SortDesc {
		return field, SortAsc
	}
	return field, SortDesc
}

// Supported sort fields, each mapped to a typed accessor. Unknown fields are
// not an error: the filtered set is returned in catalog order.
var numericSortFields = map[string]func(*models.Product) (float64, bool){
	"price": func(p *models.Product) (float64, bool) {
		return p.Price, true
	},
	"rating": func(p *models.Product) (float64, bool) {
		if p.Rating == nil {
			return 0, false
		}
		return *p.Rating, true
	},
	"createdAt": func(p *models.Product) (float64, bool) {
		if p.CreatedAt.IsZero() {
			return 0, false
		}
		return float64(p.CreatedAt.UnixNano()), true
	},
}

var textSortFields = map[string]func(*models.Product) (string, bool){
	"name": func(p *models.Product) (string, bool) {
		return p.Name, p.Name != ""
	},
}

// Query filters, sorts and limits a catalog snapshot. Filtering is
// conjunctive. The returned total is the post-filter, pre-limit count so
// callers can derive pagination windows. The input slice is never mutated.
func Query(catalog []models.Product, spec QuerySpec) ([]models.Product, int) {
	filtered := make([]models.Product, 0, len(catalog))
	for i := range catalog {
		if matches(&catalog[i], spec) {
			filtered = append(filtered, catalog[i])
		}
	}

	sortProducts(filtered, spec.SortField, spec.SortDir)

	total := len(filtered)
	if spec.Limit > 0 && spec.Limit < total {
		filtered = filtered[:spec.Limit]
	}
	return filtered, total
}

func matches(p *models.Product, spec QuerySpec) bool {
	if spec.Category != "" && !anyContainsFold(p.Categories, spec.Category) {
		return false
	}
	if spec.Collection != "" && !anyContainsFold(p.Collections, spec.Collection) {
		return false
	}
	if spec.Search != "" {
		if !containsFold(p.Name, spec.Search) &&
			!containsFold(p.Description, spec.Search) &&
			!anyContainsFold(p.Tags, spec.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

// sortProducts orders items in place. Records missing the sort field compare
// as equal, and the stable sort keeps their relative catalog order. Text
// fields use locale-aware collation.
func sortProducts(items []models.Product, field string, dir SortDirection) {
	if field == "" {
		return
	}

	if accessor, ok := numericSortFields[field]; ok {
		sort.SliceStable(items, func(i, j int) bool {
			a, aok := accessor(&items[i])
			b, bok := accessor(&items[j])
			if !aok || !bok {
				return false
			}
			if dir == SortDesc {
				return b < a
			}
			return a < b
		})
		return
	}

	if accessor, ok := textSortFields[field]; ok {
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			a, aok := accessor(&items[i])
			b, bok := accessor(&items[j])
			if !aok || !bok {
				return false
			}
			cmp := col.CompareString(a, b)
			if dir == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	// Unsupported field: leave catalog order untouched.
}
