package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"storefront-service/filters"
)

const (
	DefaultPerPage = filters.DefaultPageSize
	MaxPerPage     = 48
	MaxListLimit   = 24
)

// RequestValidator handles input validation for the HTTP surface. Malformed
// query parameters never fail a request; they degrade to defaults.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ValidateStruct runs struct-tag validation on a bound request body.
func (rv *RequestValidator) ValidateStruct(req interface{}) error {
	return rv.validate.Struct(req)
}

// ParsePerPage reads the page size, clamped to [1, MaxPerPage].
func (rv *RequestValidator) ParsePerPage(c *gin.Context) int {
	raw := c.DefaultQuery("perPage", "")
	if raw == "" {
		return DefaultPerPage
	}
	perPage, err := strconv.Atoi(raw)
	if err != nil || perPage < 1 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return perPage
}

// ParseLimit reads a result limit with a caller-supplied default.
func (rv *RequestValidator) ParseLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return limit
}

// SanitizeSort keeps only whitelisted sort specifications; anything else
// falls back to catalog order.
func (rv *RequestValidator) SanitizeSort(sortSpec string) string {
	sortSpec = strings.TrimSpace(sortSpec)
	if SortOptions[sortSpec] {
		return sortSpec
	}
	return ""
}
