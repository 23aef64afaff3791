package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/apperrors"
	"storefront-service/middleware"
)

type CartController struct {
	service   CartAPI
	validator *RequestValidator
}

func NewCartController(service CartAPI) *CartController {
	return &CartController{service: service, validator: NewRequestValidator()}
}

// GetCart returns the user's cart; users without one get an empty cart.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}
	cart, err := cc.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("Failed to load cart", zap.String("userId", userID), zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// AddItem adds a product (optionally a specific variant) to the cart. The
// variant's own stock decides purchasability, not the product-level flag.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	if err := cc.validator.ValidateStruct(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	cart, err := cc.service.AddItem(c.Request.Context(), userID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type updateItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

func (cc *CartController) UpdateItem(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}
	if err := cc.validator.ValidateStruct(&req); err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrBadRequest, err))
		return
	}

	cart, err := cc.service.UpdateQuantity(c.Request.Context(), userID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}
	cart, err := cc.service.RemoveItem(c.Request.Context(), userID, c.Param("productId"), c.Query("variantId"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		apperrors.Respond(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}
	if err := cc.service.ClearCart(c.Request.Context(), userID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
