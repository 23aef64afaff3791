package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/apperrors"
	"storefront-service/filters"
	"storefront-service/models"
)

type ProductController struct {
	service   ProductAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewProductController(service ProductAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		service:   service,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

// GetProducts serves the collection listing. Filter state comes from the
// query string; malformed parameters degrade to defaults rather than
// failing the request. The engine returns the full filtered ordering and
// the page window is cut here, so meta, links and products always describe
// the same rows.
func (pc *ProductController) GetProducts(c *gin.Context) {
	state := filters.Decode(c.Request.URL.Query())
	if sanitized := pc.validator.SanitizeSort(state.Sort); sanitized != state.Sort {
		zap.L().Debug("Ignoring unsupported sort", zap.String("sort", state.Sort))
		state.Sort = sanitized
	}
	perPage := pc.validator.ParsePerPage(c)

	queryKey := cacheKey(state, perPage)
	if pc.cache != nil {
		if cached, ok := pc.cache.GetList(c.Request.Context(), queryKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, total, err := pc.service.GetProducts(c.Request.Context(), state.Spec(0))
	if err != nil {
		zap.L().Error("Product query failed", zap.Error(err))
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}

	window := filters.Paginate(state.PageOrDefault(), perPage, total)
	products = pageSlice(products, window)
	resp := &ListResponse{
		Products: products,
		Meta: ListMeta{
			Page:              window.Page,
			PerPage:           window.PerPage,
			Total:             window.Total,
			TotalPages:        window.TotalPages(),
			Start:             window.Start,
			End:               window.End,
			HasPrev:           window.HasPrev(),
			HasNext:           window.HasNext(),
			ActiveFilterCount: state.ActiveFilterCount(),
		},
		Links: listLinks(c.Request.URL.Path, state, window),
	}

	if pc.cache != nil {
		pc.cache.SetListAsync(queryKey, resp)
	}
	c.JSON(http.StatusOK, resp)
}

// GetProductBySlug serves the product detail payload. An unknown slug is a
// 404, not a server failure.
func (pc *ProductController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	product, err := pc.service.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		zap.L().Error("Product lookup failed", zap.String("slug", slug), zap.Error(err))
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	if product == nil {
		apperrors.Respond(c, apperrors.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"variantGroups": product.VariantGroups(),
	})
}

// GetProductDisplay derives pricing and stock display state for a product
// with an optionally selected variant.
func (pc *ProductController) GetProductDisplay(c *gin.Context) {
	slug := c.Param("slug")
	product, err := pc.service.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	if product == nil {
		apperrors.Respond(c, apperrors.ErrProductNotFound)
		return
	}

	var variant *models.ProductVariant
	if variantID := c.Query("variant"); variantID != "" {
		variant = product.FindVariant(variantID)
		if variant == nil {
			apperrors.Respond(c, apperrors.ErrVariantNotFound)
			return
		}
	}

	info := DisplayInfo{
		Price:         models.EffectivePrice(product, variant),
		IsPurchasable: models.IsPurchasable(product, variant),
		MaxQuantity:   models.MaxQuantity(variant),
	}
	if compareAt, ok := models.EffectiveCompareAt(product, info.Price); ok {
		info.CompareAtPrice = &compareAt
		if pct, ok := models.DiscountPercent(compareAt, info.Price); ok {
			info.DiscountPercent = &pct
		}
	}
	c.JSON(http.StatusOK, info)
}

func (pc *ProductController) GetFeaturedProducts(c *gin.Context) {
	limit := pc.validator.ParseLimit(c, 4)
	products, err := pc.service.GetFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(products)})
}

// GetRelatedProducts resolves the source product by slug, then returns
// catalog-ordered products sharing at least one category.
func (pc *ProductController) GetRelatedProducts(c *gin.Context) {
	slug := c.Param("slug")
	product, err := pc.service.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	if product == nil {
		apperrors.Respond(c, apperrors.ErrProductNotFound)
		return
	}
	limit := pc.validator.ParseLimit(c, 4)
	related, err := pc.service.GetRelatedProducts(c.Request.Context(), product.ID, limit)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(related)})
}

func (pc *ProductController) GetProductVariants(c *gin.Context) {
	slug := c.Param("slug")
	product, err := pc.service.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	if product == nil {
		apperrors.Respond(c, apperrors.ErrProductNotFound)
		return
	}
	variants, err := pc.service.GetProductVariants(c.Request.Context(), product.ID)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	if variants == nil {
		variants = []models.ProductVariant{}
	}
	c.JSON(http.StatusOK, gin.H{"variants": variants, "groups": product.VariantGroups()})
}

// SearchProducts requires a non-empty q parameter.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		apperrors.Respond(c, apperrors.New(http.StatusBadRequest, "Missing search query", nil))
		return
	}
	products, err := pc.service.SearchProducts(c.Request.Context(), query)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrQueryFailure, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": emptyIfNil(products), "query": query})
}

// GetFilterSections serves the filter rail metadata.
func (pc *ProductController) GetFilterSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": FilterSections})
}

// cacheKey canonicalizes the filter state; url.Values.Encode sorts keys so
// equivalent states share a cache entry.
func cacheKey(state filters.State, perPage int) string {
	return state.Encode().Encode() + "&perPage=" + strconv.Itoa(perPage)
}

func listLinks(path string, state filters.State, window filters.Window) ListLinks {
	links := ListLinks{Self: linkFor(path, state)}
	if window.HasPrev() {
		links.Prev = linkFor(path, state.WithPage(window.Page-1))
	}
	if window.HasNext() {
		links.Next = linkFor(path, state.WithPage(window.Page+1))
	}
	return links
}

func linkFor(path string, state filters.State) string {
	encoded := state.Encode().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// pageSlice cuts the display window out of the full ordered result set. A
// page cursor past the end yields an empty page.
func pageSlice(products []models.Product, w filters.Window) []models.Product {
	if w.Start < 1 || w.Start > len(products) {
		return []models.Product{}
	}
	return products[w.Start-1 : w.End]
}

func emptyIfNil(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
