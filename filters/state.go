// Package filters models the collection page's persisted filter state as an
// explicit value type with pure transitions. Encoding to and from URL query
// parameters is kept separate from the transition logic, so the same state
// machine works against any storage medium.
package filters

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"storefront-service/services"
)

// Reserved parameter keys. Category, collection and search are "contextual":
// they describe where the user is and survive a clear-all. Sort and page
// describe how the results are viewed and do not.
const (
	KeyCategory   = "category"
	KeyCollection = "collection"
	KeySearch     = "search"
	KeySort       = "sort"
	KeyPage       = "page"
	KeyMinPrice   = "minPrice"
	KeyMaxPrice   = "maxPrice"
)

var reservedKeys = map[string]bool{
	KeyCategory:   true,
	KeyCollection: true,
	KeySearch:     true,
	KeySort:       true,
	KeyPage:       true,
}

// State is an immutable snapshot of the collection view. Transition methods
// return a new State and never mutate the receiver. Page 0 means "first
// page, not explicitly set" and encodes to no page parameter.
type State struct {
	Category   string
	Collection string
	Search     string
	Sort       string
	Page       int
	MinPrice   *float64
	MaxPrice   *float64
	Facets     map[string][]string
}

// Decode builds a State from persisted query parameters. Malformed values
// degrade to defaults: a non-numeric or non-positive page becomes unset, and
// unparseable price bounds are dropped.
func Decode(values url.Values) State {
	s := State{
		Category:   values.Get(KeyCategory),
		Collection: values.Get(KeyCollection),
		Search:     values.Get(KeySearch),
		Sort:       values.Get(KeySort),
	}
	if raw := values.Get(KeyPage); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 1 {
			s.Page = page
		}
	}
	if raw := values.Get(KeyMinPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			s.MinPrice = &v
		}
	}
	if raw := values.Get(KeyMaxPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			s.MaxPrice = &v
		}
	}
	if s.MinPrice != nil && s.MaxPrice != nil && *s.MinPrice > *s.MaxPrice {
		s.MinPrice, s.MaxPrice = nil, nil
	}
	for key, vals := range values {
		if reservedKeys[key] || key == KeyMinPrice || key == KeyMaxPrice || len(vals) == 0 {
			continue
		}
		if s.Facets == nil {
			s.Facets = make(map[string][]string)
		}
		s.Facets[key] = append([]string(nil), vals...)
	}
	return s
}

// Encode serializes the state back to query parameters. Unset fields are
// omitted, so an empty State encodes to an empty set.
func (s State) Encode() url.Values {
	values := url.Values{}
	if s.Category != "" {
		values.Set(KeyCategory, s.Category)
	}
	if s.Collection != "" {
		values.Set(KeyCollection, s.Collection)
	}
	if s.Search != "" {
		values.Set(KeySearch, s.Search)
	}
	if s.Sort != "" {
		values.Set(KeySort, s.Sort)
	}
	if s.Page > 1 {
		values.Set(KeyPage, strconv.Itoa(s.Page))
	}
	if s.MinPrice != nil {
		values.Set(KeyMinPrice, strconv.FormatFloat(*s.MinPrice, 'f', -1, 64))
	}
	if s.MaxPrice != nil {
		values.Set(KeyMaxPrice, strconv.FormatFloat(*s.MaxPrice, 'f', -1, 64))
	}
	for key, vals := range s.Facets {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	return values
}

func (s State) clone() State {
	out := s
	if s.Facets != nil {
		out.Facets = make(map[string][]string, len(s.Facets))
		for k, v := range s.Facets {
			out.Facets[k] = append([]string(nil), v...)
		}
	}
	if s.MinPrice != nil {
		v := *s.MinPrice
		out.MinPrice = &v
	}
	if s.MaxPrice != nil {
		v := *s.MaxPrice
		out.MaxPrice = &v
	}
	return out
}

// WithFacetToggled adds the facet value when absent and removes it when
// present. Any facet change drops the page cursor.
func (s State) WithFacetToggled(key, value string) State {
	out := s.clone()
	out.Page = 0
	if out.Facets == nil {
		out.Facets = make(map[string][]string)
	}
	vals := out.Facets[key]
	for i, v := range vals {
		if v == value {
			vals = append(vals[:i], vals[i+1:]...)
			if len(vals) == 0 {
				delete(out.Facets, key)
			} else {
				out.Facets[key] = vals
			}
			return out
		}
	}
	out.Facets[key] = append(vals, value)
	return out
}

// WithPriceRange applies a "min-max" or open-ended "min" range selection.
// Both bounds are replaced atomically so a previous selection never leaves a
// stale bound behind, and the page cursor is dropped. An inverted range is
// malformed and clears both bounds.
func (s State) WithPriceRange(rng string) State {
	out := s.clone()
	out.Page = 0
	out.MinPrice = nil
	out.MaxPrice = nil
	minRaw, maxRaw, _ := strings.Cut(rng, "-")
	if v, err := strconv.ParseFloat(minRaw, 64); err == nil && v >= 0 {
		out.MinPrice = &v
	}
	if maxRaw != "" {
		if v, err := strconv.ParseFloat(maxRaw, 64); err == nil && v >= 0 {
			out.MaxPrice = &v
		}
	}
	if out.MinPrice != nil && out.MaxPrice != nil && *out.MinPrice > *out.MaxPrice {
		out.MinPrice, out.MaxPrice = nil, nil
	}
	return out
}

// WithSort changes the sort specification and drops the page cursor.
func (s State) WithSort(sortSpec string) State {
	out := s.clone()
	out.Sort = sortSpec
	out.Page = 0
	return out
}

// WithSearch replaces the free-text search term and drops the page cursor.
func (s State) WithSearch(query string) State {
	out := s.clone()
	out.Search = query
	out.Page = 0
	return out
}

// WithCategory replaces the category context and drops the page cursor.
func (s State) WithCategory(category string) State {
	out := s.clone()
	out.Category = category
	out.Page = 0
	return out
}

// WithCollection replaces the collection context and drops the page cursor.
func (s State) WithCollection(collection string) State {
	out := s.clone()
	out.Collection = collection
	out.Page = 0
	return out
}

// WithPage moves the page cursor without touching any filter.
func (s State) WithPage(page int) State {
	out := s.clone()
	if page < 1 {
		page = 1
	}
	if page == 1 {
		page = 0
	}
	out.Page = page
	return out
}

// Cleared keeps only the contextual parameters (category, collection,
// search); sort, page, price bounds and every facet are dropped.
func (s State) Cleared() State {
	return State{
		Category:   s.Category,
		Collection: s.Collection,
		Search:     s.Search,
	}
}

// PageOrDefault resolves the 1-based page cursor.
func (s State) PageOrDefault() int {
	if s.Page < 1 {
		return 1
	}
	return s.Page
}

// ActiveFilterCount counts non-contextual selections: every facet entry plus
// each present price bound. Sort and page are view preferences and excluded.
func (s State) ActiveFilterCount() int {
	count := 0
	for _, vals := range s.Facets {
		count += len(vals)
	}
	if s.MinPrice != nil {
		count++
	}
	if s.MaxPrice != nil {
		count++
	}
	return count
}

func (s State) HasActiveFilters() bool {
	return s.ActiveFilterCount() > 0
}

// FacetKeys returns the active facet dimensions in stable order.
func (s State) FacetKeys() []string {
	keys := make([]string, 0, len(s.Facets))
	for k := range s.Facets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasFacet reports whether the given facet value is selected.
func (s State) HasFacet(key, value string) bool {
	for _, v := range s.Facets[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Spec translates the state into the query specification consumed by the
// query engine. Facets and price bounds are UI bookkeeping only and are not
// part of the engine contract.
func (s State) Spec(limit int) services.QuerySpec {
	field, dir := services.ParseSort(s.Sort)
	return services.QuerySpec{
		Category:   s.Category,
		Collection: s.Collection,
		Search:     s.Search,
		SortField:  field,
		SortDir:    dir,
		Limit:      limit,
	}
}
