package service

import (
	"context"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
)

// OrderService 訂單讀取模型，只讀不寫
type OrderService interface {
	ListAllOrders(ctx context.Context) ([]*model.OrderWithItems, error)
	ListOrdersForUser(ctx context.Context, userID int) ([]*model.OrderWithItems, error)
	GetOrderByID(ctx context.Context, id int) (*model.OrderWithItems, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
}

type OrderServiceImpl struct {
	repository repository.OrderRepository
}

func NewOrderService(orderRepository repository.OrderRepository) OrderService {
	return &OrderServiceImpl{
		repository: orderRepository,
	}
}

func (s *OrderServiceImpl) ListAllOrders(ctx context.Context) ([]*model.OrderWithItems, error) {
	return s.repository.ListWithItems(ctx)
}

func (s *OrderServiceImpl) ListOrdersForUser(ctx context.Context, userID int) ([]*model.OrderWithItems, error) {
	return s.repository.ListByUserID(ctx, userID)
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id int) (*model.OrderWithItems, error) {
	order, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderServiceImpl) Stats(ctx context.Context) (*model.OrderStats, error) {
	return s.repository.Stats(ctx)
}
