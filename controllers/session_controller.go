package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/apperrors"
	"storefront-service/collection"
	"storefront-service/filters"
)

// SessionController exposes server-held collection browsing sessions. Every
// mutation rewrites the session's filter state through a pure transition and
// issues a fresh query; the response is the session's current view, which
// may still be loading.
type SessionController struct {
	lister    collection.ProductLister
	registry  *collection.Registry
	perPage   int
	validator *RequestValidator
}

func NewSessionController(lister collection.ProductLister, registry *collection.Registry, perPage int) *SessionController {
	if perPage < 1 {
		perPage = filters.DefaultPageSize
	}
	return &SessionController{
		lister:    lister,
		registry:  registry,
		perPage:   perPage,
		validator: NewRequestValidator(),
	}
}

// CreateSession starts a browsing session seeded from the request's query
// parameters (the persisted address-bar state).
func (sc *SessionController) CreateSession(c *gin.Context) {
	state := filters.Decode(c.Request.URL.Query())
	state.Sort = sc.validator.SanitizeSort(state.Sort)

	// Capacity is checked before the session exists; constructing one issues
	// its initial query.
	if !sc.registry.HasCapacity() {
		apperrors.Respond(c, apperrors.New(http.StatusServiceUnavailable, "Too many active sessions", nil))
		return
	}
	session := collection.NewSession(sc.lister, sc.perPage, state)
	if !sc.registry.Add(session) {
		apperrors.Respond(c, apperrors.New(http.StatusServiceUnavailable, "Too many active sessions", nil))
		return
	}
	c.JSON(http.StatusCreated, session.View())
}

func (sc *SessionController) GetSession(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.View())
}

type facetRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// ToggleFacet flips a facet selection; the page cursor resets.
func (sc *SessionController) ToggleFacet(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	var req facetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	if err := sc.validator.ValidateStruct(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	session.ToggleFacet(req.Key, req.Value)
	c.JSON(http.StatusOK, session.View())
}

type priceRangeRequest struct {
	Range string `json:"range" validate:"required"`
}

func (sc *SessionController) SelectPriceRange(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	var req priceRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	if err := sc.validator.ValidateStruct(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	session.SelectPriceRange(req.Range)
	c.JSON(http.StatusOK, session.View())
}

type sortRequest struct {
	Sort string `json:"sort" validate:"required"`
}

func (sc *SessionController) SetSort(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	session.SetSort(sc.validator.SanitizeSort(req.Sort))
	c.JSON(http.StatusOK, session.View())
}

type searchRequest struct {
	Query string `json:"query"`
}

func (sc *SessionController) SetSearch(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	session.SetSearch(req.Query)
	c.JSON(http.StatusOK, session.View())
}

// ClearFilters drops everything except the contextual parameters.
func (sc *SessionController) ClearFilters(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	session.ClearFilters()
	c.JSON(http.StatusOK, session.View())
}

type pageRequest struct {
	Page   int    `json:"page"`
	Action string `json:"action"` // "next" or "prev", alternative to Page
}

func (sc *SessionController) SetPage(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	switch {
	case req.Action == "next":
		session.NextPage()
	case req.Action == "prev":
		session.PrevPage()
	case req.Page >= 1:
		session.SetPage(req.Page)
	default:
		apperrors.Respond(c, apperrors.New(http.StatusBadRequest, "Expected a page number or action", nil))
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// ToggleSection flips a filter section between collapsed and expanded.
func (sc *SessionController) ToggleSection(c *gin.Context) {
	session, ok := sc.lookup(c)
	if !ok {
		return
	}
	open := session.ToggleSection(c.Param("section"))
	c.JSON(http.StatusOK, gin.H{"section": c.Param("section"), "open": open})
}

func (sc *SessionController) DeleteSession(c *gin.Context) {
	sc.registry.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (sc *SessionController) lookup(c *gin.Context) (*collection.Session, bool) {
	session := sc.registry.Get(c.Param("id"))
	if session == nil {
		apperrors.Respond(c, apperrors.New(http.StatusNotFound, "Session not found", nil))
		return nil, false
	}
	return session, true
}
