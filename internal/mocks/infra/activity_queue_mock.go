package infra

import (
	"context"
	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"

	"github.com/stretchr/testify/mock"
)

type ActivityQueueMock struct {
	mock.Mock
}

func NewActivityQueueMock() *ActivityQueueMock {
	return &ActivityQueueMock{}
}

func (m *ActivityQueueMock) PublishActivity(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityQueueMock) SubscribeActivities(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
