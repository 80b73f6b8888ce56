package handler

import (
	"net/http"

	"event-ticketing/internal/model"
	"event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(service service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1/cart", auth)
	{
		router.GET("", h.GetCart)
		router.POST("items", h.AddItem)
		router.DELETE("items/:ticket_id", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.service.GetCart(c, currentUserID(c))
	if err != nil {
		handleError(c, err, "GetCart")
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var item model.CartItem
	if err := BindJson(c, &item); err != nil {
		return
	}

	items, err := h.service.AddItem(c, currentUserID(c), item)
	if err != nil {
		handleError(c, err, "AddCartItem")
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	ticketID, ok := paramID(c, "ticket_id")
	if !ok {
		return
	}

	items, err := h.service.RemoveItem(c, currentUserID(c), ticketID)
	if err != nil {
		handleError(c, err, "RemoveCartItem")
		return
	}
	respondData(c, http.StatusOK, items)
}
