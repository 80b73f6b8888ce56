package services

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type CartServiceMock struct {
	mock.Mock
}

func NewCartServiceMock() *CartServiceMock {
	return &CartServiceMock{}
}

func (m *CartServiceMock) AddItem(ctx context.Context, userID int, item model.CartItem) ([]model.CartItem, error) {
	args := m.Called(ctx, userID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *CartServiceMock) RemoveItem(ctx context.Context, userID int, ticketID int) ([]model.CartItem, error) {
	args := m.Called(ctx, userID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *CartServiceMock) GetCart(ctx context.Context, userID int) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}
