package handler

import (
	"net/http"

	"event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	me := r.Group("/api/v1/me", auth)
	{
		me.GET("orders", h.GetMyOrders)
	}

	admin := r.Group("/api/v1/admin", auth, RequireAdmin())
	{
		admin.GET("orders", h.GetOrders)
		admin.GET("orders/:id", h.GetOrder)
		admin.GET("stats", h.GetStats)
	}
}

func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.service.ListOrdersForUser(c, currentUserID(c))
	if err != nil {
		handleError(c, err, "GetMyOrders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.service.ListAllOrders(c)
	if err != nil {
		handleError(c, err, "GetOrders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(c, id)
	if err != nil {
		handleError(c, err, "GetOrder")
		return
	}
	respondData(c, http.StatusOK, order)
}

func (h *OrderHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handleError(c, err, "GetStats")
		return
	}
	respondData(c, http.StatusOK, stats)
}
