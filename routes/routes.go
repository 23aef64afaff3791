package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
	"storefront-service/middleware"
)

// RegisterRoutes wires the public catalog surface, the collection session
// surface and the authenticated cart surface.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	sessions *controllers.SessionController,
	carts *controllers.CartController,
	jwtSecret string,
) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", products.GetProducts)
		productRoutes.GET("/featured", products.GetFeaturedProducts)
		productRoutes.GET("/search", products.SearchProducts)
		productRoutes.GET("/filters", products.GetFilterSections)
		productRoutes.GET("/:slug", products.GetProductBySlug)
		productRoutes.GET("/:slug/display", products.GetProductDisplay)
		productRoutes.GET("/:slug/variants", products.GetProductVariants)
		productRoutes.GET("/:slug/related", products.GetRelatedProducts)
	}

	sessionRoutes := r.Group("/collection/sessions")
	{
		sessionRoutes.POST("", sessions.CreateSession)
		sessionRoutes.GET("/:id", sessions.GetSession)
		sessionRoutes.DELETE("/:id", sessions.DeleteSession)
		sessionRoutes.POST("/:id/facets", sessions.ToggleFacet)
		sessionRoutes.POST("/:id/price-range", sessions.SelectPriceRange)
		sessionRoutes.POST("/:id/sort", sessions.SetSort)
		sessionRoutes.POST("/:id/search", sessions.SetSearch)
		sessionRoutes.POST("/:id/clear", sessions.ClearFilters)
		sessionRoutes.POST("/:id/page", sessions.SetPage)
		sessionRoutes.POST("/:id/sections/:section", sessions.ToggleSection)
	}

	cartRoutes := r.Group("/cart")
	cartRoutes.Use(middleware.Auth(jwtSecret))
	{
		cartRoutes.GET("", carts.GetCart)
		cartRoutes.POST("/items", carts.AddItem)
		cartRoutes.PUT("/items", carts.UpdateItem)
		cartRoutes.DELETE("/items/:productId", carts.RemoveItem)
		cartRoutes.DELETE("", carts.ClearCart)
	}
}
