package services

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type CheckoutServiceMock struct {
	mock.Mock
}

func NewCheckoutServiceMock() *CheckoutServiceMock {
	return &CheckoutServiceMock{}
}

func (m *CheckoutServiceMock) Checkout(ctx context.Context, cmd model.CheckoutCommand) (*model.CheckoutResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResult), args.Error(1)
}
