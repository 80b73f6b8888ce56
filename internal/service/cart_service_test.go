package service_test

import (
	"context"
	"testing"

	"event-ticketing/internal/mocks/infra"
	"event-ticketing/internal/mocks/repositories"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := infra.NewCartStoreMock()
		tickets := repositories.NewTicketRepositoryMock()
		svc := service.NewCartService(store, tickets)

		tickets.On("FindByID", mock.Anything, 4).Return(&model.Ticket{ID: 4}, nil)
		store.On("Add", mock.Anything, 1, 4, 2).Return(nil)
		store.On("Get", mock.Anything, 1).Return([]model.CartItem{{TicketID: 4, Quantity: 2}}, nil)

		items, err := svc.AddItem(ctx, 1, model.CartItem{TicketID: 4, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, []model.CartItem{{TicketID: 4, Quantity: 2}}, items)
	})

	t.Run("Failed - ErrInvalidQuantity", func(t *testing.T) {
		store := infra.NewCartStoreMock()
		tickets := repositories.NewTicketRepositoryMock()
		svc := service.NewCartService(store, tickets)

		_, err := svc.AddItem(ctx, 1, model.CartItem{TicketID: 4, Quantity: 0})

		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
		tickets.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrTicketNotFound", func(t *testing.T) {
		store := infra.NewCartStoreMock()
		tickets := repositories.NewTicketRepositoryMock()
		svc := service.NewCartService(store, tickets)
		tickets.On("FindByID", mock.Anything, 4).Return(nil, &apperrors.TicketNotFoundError{TicketID: 4})

		_, err := svc.AddItem(ctx, 1, model.CartItem{TicketID: 4, Quantity: 1})

		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
		store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	store := infra.NewCartStoreMock()
	svc := service.NewCartService(store, repositories.NewTicketRepositoryMock())
	store.On("Remove", mock.Anything, 1, 4).Return(apperrors.ErrCartItemNotFound)

	_, err := svc.RemoveItem(context.Background(), 1, 4)

	assert.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
}
