package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-ticketing/internal/handler"
	"event-ticketing/internal/mocks/services"
	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderTestRouter(orders *services.OrderServiceMock) http.Handler {
	router := newTestRouter()
	handler.NewOrderHandler(orders).RegisterRoutes(router, handler.Auth(testSecret))
	return router
}

func TestOrderHandler_GetMyOrders(t *testing.T) {
	orders := services.NewOrderServiceMock()
	router := setupOrderTestRouter(orders)

	history := []*model.OrderWithItems{{Order: model.Order{ID: 1, UserID: 8, TotalPrice: decimal.NewFromInt(20)}}}
	orders.On("ListOrdersForUser", mock.Anything, 8).Return(history, nil).Once()

	req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/me/orders", nil), 8, 0)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w.Body)["data"], 1)
	orders.AssertExpectations(t)
}

func TestOrderHandler_Admin(t *testing.T) {
	t.Run("List orders", func(t *testing.T) {
		orders := services.NewOrderServiceMock()
		router := setupOrderTestRouter(orders)

		orders.On("ListAllOrders", mock.Anything).Return([]*model.OrderWithItems{}, nil).Once()

		req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil), 1, model.RoleAdmin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		orders.AssertExpectations(t)
	})

	t.Run("Customer is forbidden", func(t *testing.T) {
		orders := services.NewOrderServiceMock()
		router := setupOrderTestRouter(orders)

		req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil), 2, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		orders.AssertNotCalled(t, "ListAllOrders", mock.Anything)
	})

	t.Run("Order not found", func(t *testing.T) {
		orders := services.NewOrderServiceMock()
		router := setupOrderTestRouter(orders)

		orders.On("GetOrderByID", mock.Anything, 42).Return(nil, apperrors.ErrOrderNotFound).Once()

		req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders/42", nil), 1, model.RoleAdmin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Stats", func(t *testing.T) {
		orders := services.NewOrderServiceMock()
		router := setupOrderTestRouter(orders)

		stats := &model.OrderStats{TotalEvents: 3, TotalUsers: 2, TotalOrders: 4, Revenue: decimal.RequireFromString("120.50")}
		orders.On("Stats", mock.Anything).Return(stats, nil).Once()

		req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil), 1, model.RoleAdmin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Stats failure", func(t *testing.T) {
		orders := services.NewOrderServiceMock()
		router := setupOrderTestRouter(orders)

		orders.On("Stats", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil), 1, model.RoleAdmin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, w.Body)["message"])
	})
}
