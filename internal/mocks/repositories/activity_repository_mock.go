package repositories

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/stretchr/testify/mock"
)

type ActivityRepositoryMock struct {
	mock.Mock
}

func NewActivityRepositoryMock() *ActivityRepositoryMock {
	return &ActivityRepositoryMock{}
}

func (m *ActivityRepositoryMock) Create(ctx context.Context, entry *model.ActivityLog) (*model.ActivityLog, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivityLog), args.Error(1)
}

func (m *ActivityRepositoryMock) ListByUserID(ctx context.Context, userID int) ([]*model.ActivityLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityLog), args.Error(1)
}
