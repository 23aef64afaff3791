// Package collection holds the server side of the storefront's interactive
// collection view: one Session per browsing surface, owning the filter state
// and the most recent query result. Queries run against a provider with real
// latency, so completions can arrive out of order; every query carries a
// monotonically increasing token and only the completion matching the latest
// issued token is ever applied to the visible state.
package collection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/filters"
	"storefront-service/models"
	"storefront-service/services"
)

// DefaultSort mirrors the collection page's "Most Popular" dropdown default.
const DefaultSort = "rating:desc"

const fetchTimeout = 5 * time.Second

// ProductLister is the slice of the product service a session needs.
type ProductLister interface {
	GetProducts(ctx context.Context, spec services.QuerySpec) ([]models.Product, int, error)
}

// View is the JSON snapshot handed to the presentation layer.
type View struct {
	SessionID    string           `json:"sessionId"`
	Query        string           `json:"query"`
	Products     []models.Product `json:"products"`
	Window       filters.Window   `json:"window"`
	HasPrev      bool             `json:"hasPrev"`
	HasNext      bool             `json:"hasNext"`
	Loading      bool             `json:"loading"`
	Error        string           `json:"error,omitempty"`
	ActiveCount  int              `json:"activeFilterCount"`
	OpenSections []string         `json:"openSections"`
}

// Session is safe for concurrent use.
type Session struct {
	id      string
	lister  ProductLister
	perPage int

	mu           sync.Mutex
	state        filters.State
	seq          uint64
	products     []models.Product
	total        int
	loading      bool
	lastErr      string
	openSections map[string]bool
}

// NewSession starts a session from an initial persisted state (usually the
// decoded address-bar parameters). The first query is issued immediately.
func NewSession(lister ProductLister, perPage int, initial filters.State) *Session {
	if perPage < 1 {
		perPage = filters.DefaultPageSize
	}
	s := &Session{
		id:           uuid.NewString(),
		lister:       lister,
		perPage:      perPage,
		state:        initial,
		openSections: make(map[string]bool),
	}
	s.Refresh()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// State returns the current filter state value.
func (s *Session) State() filters.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh issues a new query for the current state. The fetch runs in the
// background; a completion is applied only while its token is still the
// latest one issued.
func (s *Session) Refresh() {
	token, spec := s.begin()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		s.fetch(ctx, token, spec)
	}()
}

// begin registers a new query and returns its token plus the spec to run.
func (s *Session) begin() (uint64, services.QuerySpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.lastErr = ""
	spec := s.state.Spec(s.perPage)
	if spec.SortField == "" {
		spec.SortField, spec.SortDir = services.ParseSort(DefaultSort)
	}
	return s.seq, spec
}

func (s *Session) fetch(ctx context.Context, token uint64, spec services.QuerySpec) {
	products, total, err := s.lister.GetProducts(ctx, spec)
	if !s.apply(token, products, total, err) {
		zap.L().Debug("Discarded stale collection query",
			zap.String("session", s.id),
			zap.Uint64("token", token),
		)
	}
}

// apply installs a query result if, and only if, its token is still the
// latest issued. Superseded completions are discarded so a slow older query
// can never overwrite a fresher result.
func (s *Session) apply(token uint64, products []models.Product, total int, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.loading = false
	if err != nil {
		s.lastErr = "Failed to load products. Please try again later."
		return true
	}
	s.products = products
	s.total = total
	return true
}

// ToggleFacet flips a facet selection; the page cursor resets and a new
// query is issued.
func (s *Session) ToggleFacet(key, value string) {
	s.transition(func(st filters.State) filters.State {
		return st.WithFacetToggled(key, value)
	})
}

// SelectPriceRange applies a "min-max" or open-ended "min" range.
func (s *Session) SelectPriceRange(rng string) {
	s.transition(func(st filters.State) filters.State {
		return st.WithPriceRange(rng)
	})
}

func (s *Session) SetSort(sortSpec string) {
	s.transition(func(st filters.State) filters.State {
		return st.WithSort(sortSpec)
	})
}

func (s *Session) SetSearch(query string) {
	s.transition(func(st filters.State) filters.State {
		return st.WithSearch(query)
	})
}

// ClearFilters keeps only the contextual parameters.
func (s *Session) ClearFilters() {
	s.transition(func(st filters.State) filters.State {
		return st.Cleared()
	})
}

func (s *Session) SetPage(page int) {
	s.transition(func(st filters.State) filters.State {
		return st.WithPage(page)
	})
}

func (s *Session) NextPage() {
	s.mu.Lock()
	page := s.state.PageOrDefault() + 1
	s.mu.Unlock()
	s.SetPage(page)
}

func (s *Session) PrevPage() {
	s.mu.Lock()
	page := s.state.PageOrDefault() - 1
	s.mu.Unlock()
	s.SetPage(page)
}

func (s *Session) transition(fn func(filters.State) filters.State) {
	s.mu.Lock()
	s.state = fn(s.state)
	s.mu.Unlock()
	s.Refresh()
}

// ToggleSection flips a filter section between collapsed and expanded.
// Sections start collapsed and toggle indefinitely; this is UI state only
// and issues no query.
func (s *Session) ToggleSection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openSections[id] = !s.openSections[id]
	return s.openSections[id]
}

// View snapshots the current visible state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := filters.Paginate(s.state.PageOrDefault(), s.perPage, s.total)
	products := s.products
	if products == nil {
		products = []models.Product{}
	}
	var open []string
	for id, isOpen := range s.openSections {
		if isOpen {
			open = append(open, id)
		}
	}
	return View{
		SessionID:    s.id,
		Query:        s.state.Encode().Encode(),
		Products:     products,
		Window:       window,
		HasPrev:      window.HasPrev(),
		HasNext:      window.HasNext(),
		Loading:      s.loading,
		Error:        s.lastErr,
		ActiveCount:  s.state.ActiveFilterCount(),
		OpenSections: open,
	}
}
