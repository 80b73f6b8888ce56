package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-ticketing/internal/handler"
	"event-ticketing/internal/mocks/services"
	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCartTestRouter(carts *services.CartServiceMock) http.Handler {
	router := newTestRouter()
	handler.NewCartHandler(carts).RegisterRoutes(router, handler.Auth(testSecret))
	return router
}

func TestCartHandler_GetCart(t *testing.T) {
	carts := services.NewCartServiceMock()
	router := setupCartTestRouter(carts)

	carts.On("GetCart", mock.Anything, 3).Return([]model.CartItem{{TicketID: 1, Quantity: 2}}, nil).Once()

	req := withToken(t, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), 3, 0)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w.Body)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
	carts.AssertExpectations(t)
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		item := model.CartItem{TicketID: 4, Quantity: 2}
		carts.On("AddItem", mock.Anything, 3, item).Return([]model.CartItem{item}, nil).Once()

		req := withToken(t, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/cart/items", item), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		carts.AssertExpectations(t)
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		item := model.CartItem{TicketID: 4, Quantity: 0}
		carts.On("AddItem", mock.Anything, 3, item).Return(nil, apperrors.ErrInvalidQuantity).Once()

		req := withToken(t, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/cart/items", item), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Quantity must be a positive integer", decodeBody(t, w.Body)["message"])
	})

	t.Run("Unknown ticket", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		item := model.CartItem{TicketID: 99, Quantity: 1}
		carts.On("AddItem", mock.Anything, 3, item).
			Return(nil, &apperrors.TicketNotFoundError{TicketID: 99}).Once()

		req := withToken(t, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/cart/items", item), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		req := withToken(t, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/cart/items", InvalidJSON), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		carts.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		carts.On("RemoveItem", mock.Anything, 3, 4).Return([]model.CartItem{}, nil).Once()

		req := withToken(t, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/4", nil), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		carts.AssertExpectations(t)
	})

	t.Run("Not in cart", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		carts.On("RemoveItem", mock.Anything, 3, 4).Return(nil, apperrors.ErrCartItemNotFound).Once()

		req := withToken(t, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/4", nil), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ticket id", func(t *testing.T) {
		carts := services.NewCartServiceMock()
		router := setupCartTestRouter(carts)

		req := withToken(t, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/abc", nil), 3, 0)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
