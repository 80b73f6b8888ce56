package handler

import (
	"net/http"
	"strconv"

	"event-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.ListEvents)
		router.GET("events/:id", h.GetEvent)
		router.GET("events/:id/tickets", h.GetEventTickets)
		router.GET("categories", h.ListCategories)
	}
}

type listEventsQuery struct {
	Category int `form:"category" binding:"omitempty,min=1"`
}

func (h *CatalogHandler) ListEvents(c *gin.Context) {
	var query listEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid category")
		return
	}

	events, err := h.service.ListEvents(c, query.Category)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	respondData(c, http.StatusOK, events)
}

func (h *CatalogHandler) GetEvent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	event, err := h.service.GetEvent(c, id)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	respondData(c, http.StatusOK, event)
}

func (h *CatalogHandler) GetEventTickets(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	tickets, err := h.service.GetTicketsForEvent(c, id)
	if err != nil {
		handleError(c, err, "GetEventTickets")
		return
	}
	respondData(c, http.StatusOK, tickets)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))

	categories, err := h.service.ListCategories(c, activeOnly)
	if err != nil {
		handleError(c, err, "ListCategories")
		return
	}
	respondData(c, http.StatusOK, categories)
}
