package api

import (
	"errors"
	"net/http"

	reqdto "levelup-cart/internal/handler/dto/request"
	resdto "levelup-cart/internal/handler/dto/response"
	"levelup-cart/internal/handler/middleware"
	"levelup-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// @Summary Get cart
// @Description Get the cart for the current session (guest or authenticated)
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	view := h.cartUseCase.GetCart(sessionID, middleware.Identity(c))
	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Add product to cart
// @Description Add a product to the cart, clamped to available stock
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartUseCase.AddProduct(c.Request.Context(), sessionID, middleware.Identity(c), req.ProductID, req.GetQuantity())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Redeem reward
// @Description Add a reward redemption line to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemRewardRequest true "Redeem reward request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/redeem [post]
func (h *CartHandler) RedeemReward(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	var req reqdto.RedeemRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartUseCase.RedeemReward(c.Request.Context(), sessionID, middleware.Identity(c), req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		case errors.Is(err, usecase.ErrRewardInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reward is not active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Remove cart item
// @Description Remove an item from the cart; unknown ids are a no-op
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	view := h.cartUseCase.RemoveItem(sessionID, middleware.Identity(c), c.Param("productId"))
	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Increase item quantity
// @Description Increment an item's quantity, capped at its stock snapshot
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId}/increase [post]
func (h *CartHandler) IncreaseItem(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	view := h.cartUseCase.IncreaseItem(sessionID, middleware.Identity(c), c.Param("productId"))
	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Decrease item quantity
// @Description Decrement an item's quantity, removing the line at zero
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId}/decrease [post]
func (h *CartHandler) DecreaseItem(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	view := h.cartUseCase.DecreaseItem(sessionID, middleware.Identity(c), c.Param("productId"))
	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := middleware.RequireCartSession(c)
	if !ok {
		return
	}

	view := h.cartUseCase.ClearCart(sessionID, middleware.Identity(c))
	c.JSON(http.StatusOK, resdto.ToCartResponse(view))
}
