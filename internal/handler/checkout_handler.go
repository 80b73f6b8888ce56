package handler

import (
	"errors"
	"io"
	"net/http"

	"event-ticketing/internal/model"
	"event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service     service.CheckoutService
	cartService service.CartService
}

func NewCheckoutHandler(service service.CheckoutService, cartService service.CartService) *CheckoutHandler {
	return &CheckoutHandler{service: service, cartService: cartService}
}

func (h *CheckoutHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.POST("checkout", h.Checkout)
	}
}

// Checkout body 沒有 items 時改用 session cart
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondFailure(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := currentUserID(c)
	items := req.Items
	if len(items) == 0 {
		cart, err := h.cartService.GetCart(c, userID)
		if err != nil {
			handleError(c, err, "Checkout")
			return
		}
		items = cart
	}

	result, err := h.service.Checkout(c, model.CheckoutCommand{
		UserID:   userID,
		Items:    items,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		handleError(c, err, "Checkout")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Purchase completed",
		"order_id":    result.OrderID,
		"total_price": result.TotalPrice.StringFixed(2),
	})
}
