package service_test

import (
	"context"
	"testing"

	"event-ticketing/internal/mocks/repositories"
	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repositories.NewOrderRepositoryMock()
		svc := service.NewOrderService(repo)
		repo.On("FindByID", mock.Anything, 5).Return(&model.OrderWithItems{Order: model.Order{ID: 5}}, nil)

		order, err := svc.GetOrderByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, order.ID)
	})

	t.Run("Failed - ErrOrderNotFound", func(t *testing.T) {
		repo := repositories.NewOrderRepositoryMock()
		svc := service.NewOrderService(repo)
		repo.On("FindByID", mock.Anything, 5).Return(nil, nil)

		_, err := svc.GetOrderByID(ctx, 5)

		assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
	})
}

func TestOrderService_Lists(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewOrderRepositoryMock()
	svc := service.NewOrderService(repo)

	repo.On("ListWithItems", mock.Anything).Return([]*model.OrderWithItems{{}, {}}, nil)
	repo.On("ListByUserID", mock.Anything, 7).Return([]*model.OrderWithItems{{}}, nil)
	repo.On("Stats", mock.Anything).Return(&model.OrderStats{TotalOrders: 2, Revenue: decimal.NewFromInt(40)}, nil)

	all, err := svc.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListOrdersForUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)

	repo.AssertExpectations(t)
}
