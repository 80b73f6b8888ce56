package infra

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type CartStoreMock struct {
	mock.Mock
}

func NewCartStoreMock() *CartStoreMock {
	return &CartStoreMock{}
}

func (m *CartStoreMock) Add(ctx context.Context, userID int, ticketID int, quantity int) error {
	args := m.Called(ctx, userID, ticketID, quantity)
	return args.Error(0)
}

func (m *CartStoreMock) Remove(ctx context.Context, userID int, ticketID int) error {
	args := m.Called(ctx, userID, ticketID)
	return args.Error(0)
}

func (m *CartStoreMock) Get(ctx context.Context, userID int) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *CartStoreMock) Clear(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
