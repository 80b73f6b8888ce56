package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-ticketing/internal/mocks/repositories"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Terminates expired events before listing", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		svc := service.NewCatalogService(events, repositories.NewTicketRepositoryMock(), repositories.NewCategoryRepositoryMock())

		before := time.Now().Add(-model.TerminationGrace)
		events.On("TerminateExpired", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(before) && cutoff.Before(time.Now())
		})).Return(int64(2), nil).Once()
		events.On("ListActive", mock.Anything, 4).Return([]*model.EventWithTickets{{Event: model.Event{ID: 1}}}, nil).Once()

		list, err := svc.ListEvents(ctx, 4)

		require.NoError(t, err)
		assert.Len(t, list, 1)
		events.AssertExpectations(t)
	})

	t.Run("Termination failure still lists", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		svc := service.NewCatalogService(events, repositories.NewTicketRepositoryMock(), repositories.NewCategoryRepositoryMock())

		events.On("TerminateExpired", mock.Anything, mock.Anything).Return(int64(0), errors.New("db busy"))
		events.On("ListActive", mock.Anything, 0).Return([]*model.EventWithTickets{}, nil)

		list, err := svc.ListEvents(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestCatalogService_GetEvent_NoStatusMutation(t *testing.T) {
	events := repositories.NewEventRepositoryMock()
	svc := service.NewCatalogService(events, repositories.NewTicketRepositoryMock(), repositories.NewCategoryRepositoryMock())
	events.On("FindByID", mock.Anything, 3).Return(&model.EventWithTickets{Event: model.Event{ID: 3}}, nil)

	event, err := svc.GetEvent(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, event.ID)
	events.AssertNotCalled(t, "TerminateExpired", mock.Anything, mock.Anything)
}

func TestCatalogService_GetTicketsForEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		tickets := repositories.NewTicketRepositoryMock()
		svc := service.NewCatalogService(events, tickets, repositories.NewCategoryRepositoryMock())
		events.On("FindByID", mock.Anything, 3).Return(&model.EventWithTickets{}, nil)
		tickets.On("ListByEventID", mock.Anything, 3).Return([]*model.Ticket{{ID: 1}, {ID: 2}}, nil)

		list, err := svc.GetTicketsForEvent(ctx, 3)

		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		tickets := repositories.NewTicketRepositoryMock()
		svc := service.NewCatalogService(events, tickets, repositories.NewCategoryRepositoryMock())
		events.On("FindByID", mock.Anything, 3).Return(nil, apperrors.ErrEventNotFound)

		_, err := svc.GetTicketsForEvent(ctx, 3)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		tickets.AssertNotCalled(t, "ListByEventID", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_ListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("All", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		categories := repositories.NewCategoryRepositoryMock()
		svc := service.NewCatalogService(events, repositories.NewTicketRepositoryMock(), categories)
		categories.On("List", mock.Anything).Return([]*model.Category{{ID: 1, Name: "Música"}}, nil)

		list, err := svc.ListCategories(ctx, false)

		require.NoError(t, err)
		assert.Len(t, list, 1)
		events.AssertNotCalled(t, "TerminateExpired", mock.Anything, mock.Anything)
	})

	t.Run("Active only", func(t *testing.T) {
		events := repositories.NewEventRepositoryMock()
		categories := repositories.NewCategoryRepositoryMock()
		svc := service.NewCatalogService(events, repositories.NewTicketRepositoryMock(), categories)
		events.On("TerminateExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		categories.On("ListWithActiveEvents", mock.Anything).Return([]*model.Category{}, nil)

		_, err := svc.ListCategories(ctx, true)

		require.NoError(t, err)
		categories.AssertExpectations(t)
		events.AssertExpectations(t)
	})
}
